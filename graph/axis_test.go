package graph

import "testing"

func TestValueToYMonotonicOnInvertedBand(t *testing.T) {
	a := NewAxis[float64](Float{})
	r := Range[float64]{Min: -10, Max: 10}
	prev := a.ValueToY(-10, r, 41, 0)
	if prev != 41 {
		t.Fatalf("expected min at 41, got %d", prev)
	}
	for v := -9.5; v <= 10; v += 0.5 {
		y := a.ValueToY(v, r, 41, 0)
		if y > prev {
			t.Fatalf("y increased at v=%v: %d > %d", v, y, prev)
		}
		prev = y
	}
	if prev != 0 {
		t.Fatalf("expected max at 0, got %d", prev)
	}
}

func TestValueToYClamps(t *testing.T) {
	a := NewAxis[float64](Float{})
	r := Range[float64]{Min: 0, Max: 1}
	cases := []struct {
		v    float64
		want int16
	}{
		{v: -5, want: 41},
		{v: 99, want: 0},
		{v: 0.5, want: 20},
	}
	for _, c := range cases {
		if got := a.ValueToY(c.v, r, 41, 0); got != c.want {
			t.Fatalf("v=%v: expected %d, got %d", c.v, c.want, got)
		}
	}
}

func TestValueToYIntTruncates(t *testing.T) {
	a := NewAxis[int](Int{})
	if got := a.ValueToY(50, Range[int]{Min: 0, Max: 100}, 41, 0); got != 21 {
		t.Fatalf("expected 21, got %d", got)
	}
}

func TestScrollKeepsNewestAtRightEdge(t *testing.T) {
	const (
		toX  = 100
		step = 2
	)
	a := NewAxis[int](Int{})
	s := NewSeries[int](6, 0, 0)
	for i := 1; i <= 4; i++ {
		s.Push(i)
		a.Scroll(s, toX, step)
	}
	// Slot 1 was the first written, slot 4 the newest.
	for k, slot := range []int{4, 3, 2, 1} {
		x, _ := s.Pos(slot)
		want := int16(toX + 1 - (k+1)*step)
		if x != want {
			t.Fatalf("slot %d: expected x=%d, got %d", slot, want, x)
		}
	}
}

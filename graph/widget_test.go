package graph

import (
	"math"
	"testing"
	"time"
)

func newTestFloat(r Rect) (*Widget[float64], *recorder, *fakeClock) {
	rec := &recorder{}
	clk := &fakeClock{}
	w := NewFloat(rec, clk)
	w.SetGeometry(r)
	return w, rec, clk
}

var chart = Rect{FromX: 0, FromY: 0, ToX: 100, ToY: 50}

func TestWidgetAutoRange(t *testing.T) {
	w, _, _ := newTestFloat(chart)
	for _, v := range []float64{1, 2, 3, 2, 1} {
		w.Feed(v)
	}
	if w.DataMin() != 1 || w.DataMax() != 3 {
		t.Fatalf("expected data [1,3], got [%v,%v]", w.DataMin(), w.DataMax())
	}
	if w.Min() != 1 || w.Max() != 3 {
		t.Fatalf("expected active [1,3], got [%v,%v]", w.Min(), w.Max())
	}
	want := []int16{41, 20, 0, 20, 41}
	for i, y := range want {
		if _, got := w.Series().Pos(i + 1); got != y {
			t.Fatalf("slot %d: expected y=%d, got %d", i+1, y, got)
		}
	}
}

func TestWidgetConstantInput(t *testing.T) {
	w, _, _ := newTestFloat(chart)
	for i := 0; i < 10; i++ {
		w.Feed(5)
	}
	if w.DataMin() != 5 || w.DataMax() != 5 {
		t.Fatalf("expected data [5,5], got [%v,%v]", w.DataMin(), w.DataMax())
	}
	if math.Abs(w.Min()-4.99) > 1e-9 || math.Abs(w.Max()-5.01) > 1e-9 {
		t.Fatalf("expected active [4.99,5.01], got [%v,%v]", w.Min(), w.Max())
	}

	iw := NewInt(&recorder{}, &fakeClock{})
	iw.SetGeometry(chart)
	iw.Feed(5)
	if iw.Min() != 4 || iw.Max() != 6 {
		t.Fatalf("expected int active [4,6], got [%d,%d]", iw.Min(), iw.Max())
	}
}

func TestWidgetExtremeConstantInput(t *testing.T) {
	w, _, _ := newTestFloat(chart)
	for i := 0; i < 10; i++ {
		w.Feed(1e17)
	}
	if !(w.Max() > w.Min()) {
		t.Fatalf("expected a strict range, got [%v,%v]", w.Min(), w.Max())
	}
	if _, y := w.Series().Pos(1); y != 20 {
		t.Fatalf("expected y=20 mid band, got %d", y)
	}

	iw := NewInt(&recorder{}, &fakeClock{})
	iw.SetGeometry(chart)
	iw.Feed(math.MaxInt)
	if !(iw.Max() > iw.Min()) {
		t.Fatalf("expected a strict int range, got [%d,%d]", iw.Min(), iw.Max())
	}
	if _, y := iw.Series().Pos(1); y != 0 {
		t.Fatalf("expected MaxInt at the top, got y=%d", y)
	}
}

func TestWidgetManualRange(t *testing.T) {
	w := NewInt(&recorder{}, &fakeClock{})
	w.SetGeometry(chart)
	w.SetRange(true, 0, 100)
	w.Feed(150)

	if w.Min() != 0 || w.Max() != 100 {
		t.Fatalf("expected active [0,100], got [%d,%d]", w.Min(), w.Max())
	}
	if w.DataMax() != 150 {
		t.Fatalf("expected data max 150, got %d", w.DataMax())
	}
	if _, y := w.Series().Pos(w.Series().Cursor()); y != 0 {
		t.Fatalf("expected out of range sample clamped to top row, got y=%d", y)
	}

	w.SetRange(false, 0, 0)
	w.Feed(50)
	if w.Min() != 50 || w.Max() != 150 {
		t.Fatalf("expected auto range [50,150], got [%d,%d]", w.Min(), w.Max())
	}
}

func TestWidgetCapacityFixedAfterFirstGeometry(t *testing.T) {
	w, _, _ := newTestFloat(chart)
	if w.Capacity() != 80 {
		t.Fatalf("expected capacity 80, got %d", w.Capacity())
	}
	if w.DataLen() != w.Capacity()-ReservedSlots {
		t.Fatalf("expected data len %d, got %d", w.Capacity()-ReservedSlots, w.DataLen())
	}
	w.SetGeometry(Rect{FromX: 10, FromY: 5, ToX: 60, ToY: 30})
	if w.Capacity() != 80 {
		t.Fatalf("expected capacity to stay 80, got %d", w.Capacity())
	}
	if w.Geometry().ToX != 60 {
		t.Fatalf("expected new geometry, got %+v", w.Geometry())
	}
}

func TestWidgetWithoutGeometryIsInert(t *testing.T) {
	rec := &recorder{}
	w := NewFloat(rec, &fakeClock{})
	w.Feed(1)
	w.Clear()
	w.Render()
	if w.Capacity() != 0 || w.DataLen() != 0 {
		t.Fatalf("expected empty widget, got capacity %d", w.Capacity())
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no drawing, got %v", rec.calls)
	}
}

func TestWidgetStopStillRemaps(t *testing.T) {
	w := NewInt(&recorder{}, &fakeClock{})
	w.SetGeometry(chart)
	w.Feed(0)
	w.Feed(100)
	w.Stop()
	if w.Sampling() {
		t.Fatal("expected sampling off")
	}

	w.SetRange(true, 0, 200)
	w.Feed(999)
	if w.Series().Filled() != 2 {
		t.Fatalf("expected no new sample while stopped, filled=%d", w.Series().Filled())
	}
	if _, y := w.Series().Pos(w.Series().Cursor()); y != 21 {
		t.Fatalf("expected 100 of [0,200] remapped to y=21, got %d", y)
	}

	w.Start()
	w.Feed(7)
	if w.Series().Filled() != 3 {
		t.Fatalf("expected sample after restart, filled=%d", w.Series().Filled())
	}
}

func TestWidgetInterval(t *testing.T) {
	w, _, clk := newTestFloat(chart)
	w.SetInterval(10)
	for i := 0; i < 30; i++ {
		clk.advance(time.Millisecond)
		w.Feed(float64(i))
	}
	if got := w.Series().Filled(); got != 3 {
		t.Fatalf("expected 3 samples in 30ms at 10ms interval, got %d", got)
	}
	if got := w.Period(); got != 10*time.Millisecond {
		t.Fatalf("expected 10ms period, got %s", got)
	}
}

func TestWidgetSetPointer(t *testing.T) {
	w, _, _ := newTestFloat(chart)
	cases := map[uint16]uint16{0: 0, 500: 78, 250: 39, 900: 78}
	for pos, want := range cases {
		w.SetPointer(true, pos)
		if got := w.PointerIndex(); got != want {
			t.Fatalf("SetPointer(%d): expected index %d, got %d", pos, want, got)
		}
	}
	w.SetPointerIndex(true, 1000)
	if got := w.PointerIndex(); got != 78 {
		t.Fatalf("expected index clamped to 78, got %d", got)
	}
}

func TestWidgetFeedConversions(t *testing.T) {
	w := NewInt(&recorder{}, &fakeClock{})
	w.SetGeometry(chart)
	w.FeedFloat(3.9)
	w.FeedFloat(-2.7)
	if w.DataMax() != 3 || w.DataMin() != -2 {
		t.Fatalf("expected truncated [-2,3], got [%d,%d]", w.DataMin(), w.DataMax())
	}

	f, _, _ := newTestFloat(chart)
	f.FeedInt(4)
	if f.DataMax() != 4 {
		t.Fatalf("expected 4, got %v", f.DataMax())
	}
}

func TestWidgetClear(t *testing.T) {
	w, _, _ := newTestFloat(chart)
	for _, v := range []float64{1, 2, 3} {
		w.Feed(v)
	}
	w.Clear()
	s := w.Series()
	if s.Filled() != 0 || s.Len() != 80 {
		t.Fatalf("expected empty ring of 80, got filled=%d len=%d", s.Filled(), s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		if x, y := s.Pos(i); x != chart.FromX || y != chart.ToY {
			t.Fatalf("slot %d at (%d,%d), expected origin corner", i, x, y)
		}
	}
}

func TestWidgetCountsAdmittedSamples(t *testing.T) {
	w, _, clk := newTestFloat(chart)
	w.SetInterval(5)
	for i := 0; i < 20; i++ {
		clk.advance(time.Millisecond)
		w.Feed(1)
	}
	if got := w.Samples(); got != 4 {
		t.Fatalf("expected 4 admitted samples, got %d", got)
	}
}

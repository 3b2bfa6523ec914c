package graph

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func feedEvery(w *Widget[float64], clk *fakeClock, d time.Duration, vs ...float64) {
	for _, v := range vs {
		clk.advance(d)
		w.Feed(v)
	}
}

func TestRenderLegendAndAxisLabels(t *testing.T) {
	w, rec, clk := newTestFloat(chart)
	feedEvery(w, clk, 10*time.Millisecond, 1, 2, 3, 2, 1)
	w.Render()

	want := []string{"0", "790", "390", "3.0", "1.0"}
	if diff := cmp.Diff(want, rec.prints()); diff != "" {
		t.Fatalf("unexpected labels (-want +got):\n%s", diff)
	}
	if x, y, _ := rec.cursorBefore("790"); x != 16 || y != 50 {
		t.Fatalf("expected far label at (16,50), got (%d,%d)", x, y)
	}
	if x, y, _ := rec.cursorBefore("390"); x != 56 || y != 50 {
		t.Fatalf("expected mid label at (56,50), got (%d,%d)", x, y)
	}
	if x, y, _ := rec.cursorBefore("3.0"); x != 0 || y != 7 {
		t.Fatalf("expected max legend at (0,7), got (%d,%d)", x, y)
	}
	if x, y, _ := rec.cursorBefore("1.0"); x != 0 || y != 39 {
		t.Fatalf("expected min legend at (0,39), got (%d,%d)", x, y)
	}
}

func TestRenderNarrowChartOmitsMidLabel(t *testing.T) {
	w, rec, clk := newTestFloat(Rect{FromX: 0, FromY: 0, ToX: 50, ToY: 40})
	feedEvery(w, clk, 10*time.Millisecond, 1, 2)
	w.Render()

	if got := rec.prints(); len(got) != 4 {
		t.Fatalf("expected 4 labels without the mid one, got %q", got)
	}
}

func TestRenderNoAxis(t *testing.T) {
	w, rec, clk := newTestFloat(chart)
	w.SetDisplay(false, false)
	feedEvery(w, clk, 10*time.Millisecond, 1, 2)
	w.Render()

	if got := rec.prints(); len(got) != 2 {
		t.Fatalf("expected only legend labels, got %q", got)
	}
	want := call{Op: "clip", Args: [4]int16{21, 0, 100, 51}}
	if rec.calls[3] != want {
		t.Fatalf("expected %v, got %v", want, rec.calls[3])
	}
}

func TestRenderClearsAndClips(t *testing.T) {
	w, rec, _ := newTestFloat(chart)
	w.Feed(1)
	w.Render()

	want := []call{
		{Op: "color", Args: [4]int16{0}},
		{Op: "box", Args: [4]int16{0, 0, 101, 51}},
		{Op: "color", Args: [4]int16{1}},
		{Op: "clip", Args: [4]int16{21, 0, 100, 42}},
	}
	if diff := cmp.Diff(want, rec.calls[:4]); diff != "" {
		t.Fatalf("unexpected prologue (-want +got):\n%s", diff)
	}
	if rec.count("noclip") != 1 {
		t.Fatalf("expected the clip window restored once, got %d", rec.count("noclip"))
	}
}

func TestRenderDottedDrawsEverySlot(t *testing.T) {
	w, rec, _ := newTestFloat(chart)
	w.SetDisplay(true, true)
	w.Feed(1)
	w.Feed(2)
	w.Render()

	if got := rec.count("pixel"); got != w.Capacity() {
		t.Fatalf("expected %d pixels, got %d", w.Capacity(), got)
	}
	if rec.count("line") != 0 {
		t.Fatal("expected no lines in dotted mode")
	}
}

func TestRenderLineJoinsWrap(t *testing.T) {
	w, rec, _ := newTestFloat(chart)
	w.SetScrollStep(2)
	w.Feed(1)
	w.Feed(3)
	w.Render()

	if got := rec.count("line"); got != w.Capacity() {
		t.Fatalf("expected %d lines, got %d", w.Capacity(), got)
	}
	s := w.Series()
	x0, y0 := s.Pos(0)
	_, yLast := s.Pos(s.Len() - 1)
	want := call{Op: "line", Args: [4]int16{x0, y0, x0 - 2, yLast}}
	for _, c := range rec.calls {
		if c.Op == "line" {
			if c != want {
				t.Fatalf("expected first segment %v, got %v", want, c)
			}
			break
		}
	}
}

func TestRenderFloatTooltip(t *testing.T) {
	w, rec, _ := newTestFloat(chart)
	for _, v := range []float64{1, 2, 3, 2, 2.5} {
		w.Feed(v)
	}
	w.SetPointer(true, 0)
	w.Render()

	x, y, ok := rec.cursorBefore("2.50000")
	if !ok {
		t.Fatalf("tooltip not printed, labels %q", rec.prints())
	}
	if x != 73 || y != 24 {
		t.Fatalf("expected tooltip text at (73,24), got (%d,%d)", x, y)
	}
	box := call{Op: "box", Args: [4]int16{72, 18, floatLabelWidth, labelHeight}}
	found := false
	for i, c := range rec.calls {
		if c == box {
			found = true
		}
		if c.Op == "print" && c.Text == "2.50000" && c.Args[0] != 0 {
			t.Fatalf("expected tooltip text in colour 0, call %d", i)
		}
	}
	if !found {
		t.Fatalf("expected tooltip box %v", box)
	}
}

func TestRenderIntTooltipMeasured(t *testing.T) {
	rec := &recorder{}
	w := NewInt(rec, &fakeClock{})
	w.SetGeometry(chart)
	w.SetRange(true, 0, 100)
	w.Feed(150)
	w.SetPointerIndex(true, 0)
	w.Render()

	box := call{Op: "box", Args: [4]int16{86, 8, 14, labelHeight}}
	for _, c := range rec.calls {
		if c == box {
			return
		}
	}
	t.Fatalf("expected measured box %v in %v", box, rec.calls)
}

func TestRenderTooltipAboveLowPoint(t *testing.T) {
	w, rec, _ := newTestFloat(chart)
	w.SetRange(true, 0, 10)
	w.Feed(0)
	w.SetPointerIndex(true, 0)
	w.Render()

	// 0 maps to the band bottom at y=41, below ToY-25.
	if x, y, _ := rec.cursorBefore("0.00000"); x != 73 || y != 32 {
		t.Fatalf("expected tooltip text above point at (73,32), got (%d,%d)", x, y)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	w, rec, clk := newTestFloat(chart)
	feedEvery(w, clk, 3*time.Millisecond, 4, 8, 15, 16, 23, 42)
	w.SetPointer(true, 10)

	w.Render()
	first := rec.calls
	rec.reset()
	w.Render()

	if diff := cmp.Diff(first, rec.calls); diff != "" {
		t.Fatalf("render not repeatable (-first +second):\n%s", diff)
	}
}

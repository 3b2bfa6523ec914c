package graph

import "strconv"

// frame is the read-only state one render pass projects.
type frame[T Number] struct {
	geo    Rect
	series *Series[T]
	active Range[T]
	period uint32

	axis       bool
	dotted     bool
	pointer    bool
	pointerIdx uint16
	step       int16
}

// renderer draws frames. It keeps no state between calls.
type renderer[T Number] struct {
	dom Domain[T]
}

func (r renderer[T]) draw(s Surface, f *frame[T]) {
	g := f.geo

	s.SetDrawColor(0)
	s.DrawBox(g.FromX, g.FromY, g.width(), g.height())
	s.SetDrawColor(1)

	r.trace(s, f)
	if f.axis {
		r.timeAxis(s, f)
	}
	r.legend(s, f)
	if f.pointer {
		r.tooltip(s, f)
	}
}

func (r renderer[T]) trace(s Surface, f *frame[T]) {
	g := f.geo
	clipBottom := g.ToY + 1
	if f.axis {
		clipBottom = g.bandBottom(true) + 1
	}
	s.SetClipWindow(g.plotLeft(), g.FromY, g.ToX, clipBottom)

	n := f.series.Len()
	for i := 0; i < n; i++ {
		x, y := f.series.Pos(i)
		if f.dotted {
			s.DrawPixel(x, y)
			continue
		}
		// Slot 0 joins the last slot: the ring is drawn as one closed scroll.
		prev := i - 1
		if i == 0 {
			prev = n - 1
		}
		_, py := f.series.Pos(prev)
		s.DrawLine(x, y, x-f.step, py)
	}
	s.SetMaxClipWindow()
}

func (r renderer[T]) timeAxis(s Surface, f *frame[T]) {
	g := f.geo
	w := g.plotWidth()
	far, mid := axisTimes(f.period, w, f.step)
	base := g.bandBottom(true)

	s.SetDrawColor(0)
	s.DrawBox(g.FromX, base, g.width(), axisHeight)
	s.SetDrawColor(1)

	s.DrawHLine(g.plotLeft(), base, g.ToX-g.FromX-LeftMargin)

	s.DrawVLine(g.ToX, base, tickLen)
	s.SetCursor(g.ToX-2, g.ToY)
	s.Print("0")

	s.DrawVLine(g.plotLeft(), base, tickLen)
	s.SetCursor(g.FromX+farLabelOffset(far), g.ToY)
	s.Print(strconv.FormatUint(uint64(far), 10))

	if w > minMidWidth {
		mx := g.ToX - w/2
		s.DrawVLine(mx, base, tickLen)
		s.SetCursor(mx-midLabelOffset(mid), g.ToY)
		s.Print(strconv.FormatUint(uint64(mid), 10))
	}
}

func (r renderer[T]) legend(s Surface, f *frame[T]) {
	g := f.geo
	bottom := g.bandBottom(f.axis)

	s.SetDrawColor(0)
	s.DrawBox(g.FromX, g.FromY, legendWidth, bottom-g.FromY)
	s.SetDrawColor(1)

	midY := g.FromY + (g.ToY-g.FromY)/2
	if f.axis {
		midY = g.FromY + (g.ToY-g.FromY-axisHeight+1)/2
	}
	s.DrawVLine(g.plotLeft(), g.FromY, bottom-g.FromY+1)
	s.DrawHLine(g.FromX+15, g.FromY, legendTickLen)
	s.DrawHLine(g.FromX+15, bottom, legendTickLen)
	s.DrawHLine(g.FromX+17, midY, midTickLen)

	s.SetCursor(g.FromX, g.FromY+7)
	s.Print(r.dom.Legend(f.active.Max))
	s.SetCursor(g.FromX, bottom-2)
	s.Print(r.dom.Legend(f.active.Min))
}

func (r renderer[T]) tooltip(s Surface, f *frame[T]) {
	g := f.geo
	target := g.ToX - int16(f.pointerIdx)
	low := g.ToY - 16
	if f.axis {
		low = g.ToY - 25
	}

	for i := 0; i < f.series.Len(); i++ {
		x, y := f.series.Pos(i)
		if x != target {
			continue
		}

		l := r.dom.Tooltip(f.series.Value(i))
		if l.Measured {
			l.Width = s.StrWidth(l.Text) + 2
		}

		// Points low in the band get the label above them, others below.
		tickY, boxY, textY := y, y+pointerTick, y+14
		if y > low {
			tickY, boxY, textY = y-pointerTick, y-15, y-9
		}
		s.DrawVLine(x, tickY, pointerTick)

		boxX, textX := labelBox(g, x, l)
		s.DrawBox(boxX, boxY, l.Width, labelHeight)
		s.SetCursor(textX, textY)
		s.SetDrawColor(0)
		s.Print(l.Text)
		s.SetDrawColor(1)
	}
}

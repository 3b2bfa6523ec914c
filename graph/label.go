package graph

// Time labels on the axis band are plain integers in the period's unit, divided by
// 1000 once the raw period reaches 1000 (ms -> s, or us -> ms for fine periods).

// axisOffsets positions the far and mid time labels by digit count.
// far is added to the chart's left edge; mid is subtracted from the midpoint tick.
var axisOffsets = [...]struct {
	below uint32
	far   int16
	mid   int16
}{
	{below: 10, far: 20, mid: 1},
	{below: 100, far: 18, mid: 3},
	{below: 1000, far: 16, mid: 5},
	{below: 10000, far: 14, mid: 7},
	{below: 100000, far: 12, mid: 9},
}

const (
	wideFarOffset = 10
	wideMidOffset = 11
)

func farLabelOffset(v uint32) int16 {
	for _, o := range axisOffsets {
		if v < o.below {
			return o.far
		}
	}
	return wideFarOffset
}

func midLabelOffset(v uint32) int16 {
	for _, o := range axisOffsets {
		if v < o.below {
			return o.mid
		}
	}
	return wideMidOffset
}

// axisTimes returns the elapsed time spanned by the full plot width and by half of it.
// The arithmetic is uint32 and wraps like the counters it comes from.
func axisTimes(period uint32, plotWidth, step int16) (far, mid uint32) {
	if step < 1 {
		step = 1
	}
	w := uint32(plotWidth)
	far = period * w / uint32(step)
	mid = period * (w / 2) / uint32(step)
	if period >= 1000 {
		far /= 1000
		mid /= 1000
	}
	return far, mid
}

// labelBox returns where the tooltip box and its text start for a pointer at x.
func labelBox(g Rect, x int16, l Label) (boxX, textX int16) {
	if !l.Measured {
		switch {
		case x < g.FromX+35:
			return g.FromX + 22, g.FromX + 23
		case x > g.ToX-16:
			return g.ToX - 28, g.ToX - 27
		}
		return x - 13, x - 12
	}
	half := l.Width / 2
	switch {
	case x < g.FromX+half+legendWidth:
		return g.FromX + 22, g.FromX + 23
	case x > g.ToX-half:
		return g.ToX - l.Width, g.ToX - l.Width + 1
	}
	return x - half, x - half + 1
}

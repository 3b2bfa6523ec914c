package graph

const (
	// LeftMargin is the number of columns taken from the chart width before sizing the ring.
	LeftMargin = 20
	// ReservedSlots are ring slots not reported by DataLen.
	ReservedSlots = 2

	legendWidth   = LeftMargin + 1
	axisHeight    = 9
	tickLen       = 3
	legendTickLen = 6
	midTickLen    = 4
	pointerTick   = 8
	labelHeight   = 7

	floatLabelWidth = 29
	// The midpoint tick and label need more room than this.
	minMidWidth = 31
)

// Rect is a chart area with inclusive corners.
type Rect struct {
	FromX int16
	FromY int16
	ToX   int16
	ToY   int16
}

// Slots returns the ring capacity a chart of this size gets.
func (r Rect) Slots() int {
	n := int(r.ToX) - int(r.FromX) - LeftMargin
	if n < ReservedSlots {
		n = ReservedSlots
	}
	return n
}

func (r Rect) width() int16  { return r.ToX - r.FromX + 1 }
func (r Rect) height() int16 { return r.ToY - r.FromY + 1 }

// plotLeft is the first column right of the legend.
func (r Rect) plotLeft() int16 { return r.FromX + legendWidth }

func (r Rect) plotWidth() int16 {
	w := r.ToX - r.plotLeft()
	if w < 0 {
		return 0
	}
	return w
}

// bandBottom is the row the range minimum maps to.
func (r Rect) bandBottom(axis bool) int16 {
	if axis {
		return r.ToY - axisHeight
	}
	return r.ToY
}

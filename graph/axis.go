package graph

import "math"

// Axis maps values and sample counts to pixel coordinates.
type Axis[T Number] struct {
	dom Domain[T]
}

// NewAxis returns an Axis using the arithmetic of d.
func NewAxis[T Number](d Domain[T]) Axis[T] {
	return Axis[T]{dom: d}
}

// ValueToY maps v from r onto the band whose ends are yAtMin (where r.Min lands)
// and yAtMax (where r.Max lands). Pixel Y grows downward, so yAtMin is usually the
// larger of the two. The result is clamped to the band.
//
// r must have Max > Min; see widen.
func (a Axis[T]) ValueToY(v T, r Range[T], yAtMin, yAtMax int16) int16 {
	lo, hi := yAtMax, yAtMin
	if lo > hi {
		lo, hi = hi, lo
	}
	y := a.dom.MapY(v, r, yAtMin, yAtMax)
	switch {
	case math.IsNaN(y), y < float64(lo):
		return lo
	case y > float64(hi):
		return hi
	}
	return int16(y)
}

// Place recomputes the Y position of every slot.
func (a Axis[T]) Place(s *Series[T], r Range[T], yAtMin, yAtMax int16) {
	for i := range s.values {
		s.pos[i].y = a.ValueToY(s.values[i], r, yAtMin, yAtMax)
	}
}

// Scroll reseeds the newest slot at rightEdge+1 and shifts every slot left by step.
func (a Axis[T]) Scroll(s *Series[T], rightEdge, step int16) {
	s.pos[s.cursor].x = rightEdge + 1
	for i := range s.pos {
		s.pos[i].x -= step
	}
}

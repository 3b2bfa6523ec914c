package graph

type point struct {
	x int16
	y int16
}

// Series is a fixed-capacity ring of samples with the pixel position of every slot.
//
// The write cursor is advanced before each write, so the first sample after
// construction lands in slot 1. Unwritten slots hold zero at the origin corner.
type Series[T Number] struct {
	values []T
	pos    []point

	cursor int
	filled int
}

// NewSeries allocates a series of n slots (at least 2) with every position at (x, y).
func NewSeries[T Number](n int, x, y int16) *Series[T] {
	if n < 2 {
		n = 2
	}
	s := &Series[T]{
		values: make([]T, n),
		pos:    make([]point, n),
	}
	s.Clear(x, y)
	return s
}

// Len returns the number of slots.
func (s *Series[T]) Len() int { return len(s.values) }

// Filled returns how many slots hold a sample since the last Clear.
func (s *Series[T]) Filled() int { return s.filled }

// Cursor returns the slot of the most recent sample.
func (s *Series[T]) Cursor() int { return s.cursor }

// Value returns the sample in slot i.
func (s *Series[T]) Value(i int) T { return s.values[i] }

// Pos returns the pixel position of slot i.
func (s *Series[T]) Pos(i int) (x, y int16) {
	p := s.pos[i]
	return p.x, p.y
}

// Push stores v in the next slot, evicting the oldest sample once the ring is full.
func (s *Series[T]) Push(v T) {
	s.cursor++
	if s.cursor >= len(s.values) {
		s.cursor = 0
	}
	s.values[s.cursor] = v
	if s.filled < len(s.values) {
		s.filled++
	}
}

// ValueRange scans the written slots. An empty series reports {0, 0}.
func (s *Series[T]) ValueRange() Range[T] {
	if s.filled == 0 {
		return Range[T]{}
	}
	n := len(s.values)
	v := s.values[s.cursor]
	r := Range[T]{Min: v, Max: v}
	for k := 1; k < s.filled; k++ {
		v = s.values[(s.cursor-k+n)%n]
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r
}

// Clear zeroes every value and moves every slot to (x, y). Capacity is unchanged.
func (s *Series[T]) Clear(x, y int16) {
	var zero T
	for i := range s.values {
		s.values[i] = zero
		s.pos[i] = point{x: x, y: y}
	}
	s.filled = 0
}

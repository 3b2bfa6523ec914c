package graph

import "time"

// pointerScale is the full scale of the normalised pointer position.
const pointerScale = 500

// Widget is a scrolling chart of one series in a fixed numeric domain.
//
// The zero value is not usable; construct with NewFloat, NewInt or New.
// A Widget is not safe for concurrent use: Feed and Render belong to one loop.
type Widget[T Number] struct {
	surface Surface
	clock   Clock
	dom     Domain[T]
	axis    Axis[T]
	render  renderer[T]

	geo     Rect
	series  *Series[T]
	sampler SampleClock

	sampling   bool
	showAxis   bool
	dotted     bool
	pointer    bool
	pointerIdx uint16
	step       int16

	manual   bool
	manualLo T
	manualHi T
	active   Range[T]
	data     Range[T]

	admitted uint64
}

// New returns a widget drawing to s, timed by c, with the arithmetic of d.
func New[T Number](s Surface, c Clock, d Domain[T]) *Widget[T] {
	if c == nil {
		c = SystemClock()
	}
	return &Widget[T]{
		surface:  s,
		clock:    c,
		dom:      d,
		axis:     NewAxis(d),
		render:   renderer[T]{dom: d},
		sampling: true,
		showAxis: true,
		step:     1,
	}
}

// NewFloat returns a floating point chart.
func NewFloat(s Surface, c Clock) *Widget[float64] {
	return New[float64](s, c, Float{})
}

// NewInt returns an integer chart.
func NewInt(s Surface, c Clock) *Widget[int] {
	return New[int](s, c, Int{})
}

// SetGeometry places the chart. The ring is sized by the first call only; later
// calls move or resize the drawing area but keep the first capacity.
func (w *Widget[T]) SetGeometry(r Rect) {
	w.geo = r
	if w.series == nil {
		w.series = NewSeries[T](r.Slots(), r.FromX, r.ToY)
		w.active = widen(w.dom, w.active)
	}
}

// Geometry returns the current chart area.
func (w *Widget[T]) Geometry() Rect { return w.geo }

// Start enables sample admission.
func (w *Widget[T]) Start() { w.sampling = true }

// Stop disables sample admission. Feed still remaps the buffered samples.
func (w *Widget[T]) Stop() { w.sampling = false }

// SetSampling enables or disables sample admission.
func (w *Widget[T]) SetSampling(on bool) { w.sampling = on }

// Sampling reports whether samples are being admitted.
func (w *Widget[T]) Sampling() bool { return w.sampling }

// SetInterval sets the minimum time between admitted samples; 0 admits every Feed.
func (w *Widget[T]) SetInterval(ms uint32) { w.sampler.SetInterval(ms) }

// SetDisplay selects the time axis band and the dotted or line trace.
func (w *Widget[T]) SetDisplay(axis, dotted bool) {
	w.showAxis = axis
	w.dotted = dotted
}

// SetPointer shows the tooltip at a position normalised to 0 (newest) .. 500 (oldest).
func (w *Widget[T]) SetPointer(on bool, pos uint16) {
	w.pointer = on
	if pos > pointerScale {
		pos = pointerScale
	}
	w.pointerIdx = uint16(uint32(pos) * uint32(w.DataLen()) / pointerScale)
}

// SetPointerIndex shows the tooltip idx samples left of the newest one, clamped to DataLen.
func (w *Widget[T]) SetPointerIndex(on bool, idx uint16) {
	w.pointer = on
	if n := w.DataLen(); int(idx) > n {
		idx = uint16(n)
	}
	w.pointerIdx = idx
}

// PointerIndex returns the pointer position in samples from the newest one.
func (w *Widget[T]) PointerIndex() uint16 { return w.pointerIdx }

// SetRange fixes the value range when manual is set, otherwise restores auto-ranging.
func (w *Widget[T]) SetRange(manual bool, lo, hi T) {
	w.manual = manual
	w.manualLo = lo
	w.manualHi = hi
}

// SetScrollStep sets how many pixels the trace moves per admitted sample (minimum 1).
func (w *Widget[T]) SetScrollStep(px int16) {
	if px < 1 {
		px = 1
	}
	w.step = px
}

// Feed offers a sample. Admitted samples scroll the trace; every call remaps the
// whole buffer against the active range.
func (w *Widget[T]) Feed(v T) {
	if w.series == nil {
		return
	}
	if w.sampling && w.sampler.Admit(w.clock) {
		w.admitted++
		w.series.Push(v)
		w.axis.Scroll(w.series, w.geo.ToX, w.step)
		w.data = w.series.ValueRange()
		w.active = w.data
	}
	if w.manual {
		w.active = Range[T]{Min: w.manualLo, Max: w.manualHi}
	}
	w.active = widen(w.dom, w.active)
	w.axis.Place(w.series, w.active, w.geo.bandBottom(w.showAxis), w.geo.FromY)
}

// FeedFloat offers a sample converted to the chart's domain.
func (w *Widget[T]) FeedFloat(v float64) { w.Feed(w.dom.FromFloat(v)) }

// FeedInt offers a sample converted to the chart's domain.
func (w *Widget[T]) FeedInt(v int) { w.Feed(w.dom.FromInt(v)) }

// Clear drops the buffered samples without reallocating.
func (w *Widget[T]) Clear() {
	if w.series == nil {
		return
	}
	w.series.Clear(w.geo.FromX, w.geo.ToY)
}

// Render draws the chart onto the surface.
func (w *Widget[T]) Render() {
	if w.series == nil || w.surface == nil {
		return
	}
	w.render.draw(w.surface, &frame[T]{
		geo:        w.geo,
		series:     w.series,
		active:     w.active,
		period:     w.sampler.RawPeriod(),
		axis:       w.showAxis,
		dotted:     w.dotted,
		pointer:    w.pointer,
		pointerIdx: w.pointerIdx,
		step:       w.step,
	})
}

// Capacity returns the number of ring slots, 0 before SetGeometry.
func (w *Widget[T]) Capacity() int {
	if w.series == nil {
		return 0
	}
	return w.series.Len()
}

// DataLen returns the number of addressable samples.
func (w *Widget[T]) DataLen() int {
	if w.series == nil {
		return 0
	}
	return w.series.Len() - ReservedSlots
}

// Range returns the range the trace is mapped against, including manual overrides.
func (w *Widget[T]) Range() Range[T] { return w.active }

// DataRange returns the true extent of the buffered samples.
func (w *Widget[T]) DataRange() Range[T] { return w.data }

// Min is the lower bound the trace is mapped against.
func (w *Widget[T]) Min() T { return w.active.Min }

// Max is the upper bound the trace is mapped against.
func (w *Widget[T]) Max() T { return w.active.Max }

// DataMin is the smallest buffered sample as of the last admitted one.
func (w *Widget[T]) DataMin() T { return w.data.Min }

// DataMax is the largest buffered sample as of the last admitted one.
func (w *Widget[T]) DataMax() T { return w.data.Max }

// Samples returns the number of samples admitted since construction.
func (w *Widget[T]) Samples() uint64 { return w.admitted }

// Period returns the time between the last two admitted samples.
func (w *Widget[T]) Period() time.Duration { return w.sampler.Period() }

// Series exposes the ring for inspection. Callers must not keep it across Feed calls.
func (w *Widget[T]) Series() *Series[T] { return w.series }

package graph

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is the set of sample types a chart can hold.
type Number interface {
	constraints.Signed | constraints.Float
}

// Range is an inclusive value span.
type Range[T Number] struct {
	Min T
	Max T
}

// Domain is the per-type arithmetic and formatting policy of a chart.
type Domain[T Number] interface {
	// Epsilon is added on both sides of a degenerate range.
	Epsilon() T
	// Around widens the single value v by Epsilon into a range with Max > Min,
	// even where v±Epsilon is not representable.
	Around(v T) Range[T]
	// MapY maps v from r onto the pixel span yAtMin..yAtMax without clamping.
	MapY(v T, r Range[T], yAtMin, yAtMax int16) float64
	// Legend formats a range bound for the left legend strip.
	Legend(v T) string
	// Tooltip formats a pointer value. Measured labels size their box from the text width.
	Tooltip(v T) Label
	// FromFloat converts a sample fed through FeedFloat.
	FromFloat(v float64) T
	// FromInt converts a sample fed through FeedInt.
	FromInt(v int) T
}

// Label is the text of a pointer tooltip.
type Label struct {
	Text string
	// Width of the label box in pixels; ignored when Measured is set.
	Width    int16
	Measured bool
}

// Float is the floating point domain.
type Float struct{}

// Epsilon is 0.01.
func (Float) Epsilon() float64 { return 0.01 }

// Around steps to the neighbouring floats when v is too large for 0.01 to register.
func (f Float) Around(v float64) Range[float64] {
	r := Range[float64]{Min: v - f.Epsilon(), Max: v + f.Epsilon()}
	if !(r.Min < v) {
		r.Min = math.Nextafter(v, math.Inf(-1))
	}
	if !(r.Max > v) {
		r.Max = math.Nextafter(v, math.Inf(1))
	}
	return r
}

// MapY is the affine map in float arithmetic.
func (Float) MapY(v float64, r Range[float64], yAtMin, yAtMax int16) float64 {
	return (v-r.Min)*float64(yAtMax-yAtMin)/(r.Max-r.Min) + float64(yAtMin)
}

// Legend shows no decimals for v >= 1000 or v <= -100, one otherwise.
func (Float) Legend(v float64) string {
	if v >= 1000 || v <= -100 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// Tooltip fits the value into the fixed 29 px box.
func (Float) Tooltip(v float64) Label {
	return Label{
		Text:  strconv.FormatFloat(v, 'f', tooltipDigits(v), 64),
		Width: floatLabelWidth,
	}
}

// FromFloat returns v.
func (Float) FromFloat(v float64) float64 { return v }

// FromInt converts v exactly up to 2^53.
func (Float) FromInt(v int) float64 { return float64(v) }

// tooltipDigits picks fewer decimals as the magnitude grows so the text fits the
// fixed-width label box. The bands are asymmetric: the minus sign takes a column.
func tooltipDigits(v float64) int {
	switch {
	case v >= 0 && v < 10:
		return 5
	case v >= 10 && v < 100, v > -10 && v < 0:
		return 4
	case v >= 100 && v < 1000, v > -100 && v <= -10:
		return 3
	case v >= 1000 && v < 10000, v > -1000 && v <= -100:
		return 2
	case v >= 10000, v <= -1000:
		return 1
	}
	// NaN
	return 0
}

// Int is the signed integer domain.
type Int struct{}

// Epsilon is 1.
func (Int) Epsilon() int { return 1 }

// Around saturates at the ends of int and moves the other bound by 2*Epsilon instead.
func (d Int) Around(v int) Range[int] {
	eps := d.Epsilon()
	switch {
	case v > math.MaxInt-eps:
		return Range[int]{Min: math.MaxInt - 2*eps, Max: math.MaxInt}
	case v < math.MinInt+eps:
		return Range[int]{Min: math.MinInt, Max: math.MinInt + 2*eps}
	}
	return Range[int]{Min: v - eps, Max: v + eps}
}

// maxExactDelta bounds the offsets multiplied by a pixel span (at most 2^16) in int64.
const maxExactDelta = math.MaxInt64 >> 16

// MapY uses truncating integer division. Ranges too wide for int64 arithmetic fall
// back to float64, truncated the same way.
func (Int) MapY(v int, r Range[int], yAtMin, yAtMax int16) float64 {
	span := int64(yAtMax) - int64(yAtMin)
	dv, okv := sub64(int64(v), int64(r.Min))
	dr, okr := sub64(int64(r.Max), int64(r.Min))
	if okv && okr && dr != 0 && dv >= -maxExactDelta && dv <= maxExactDelta {
		return float64(dv*span/dr + int64(yAtMin))
	}
	y := (float64(v) - float64(r.Min)) * float64(span) / (float64(r.Max) - float64(r.Min))
	return math.Trunc(y) + float64(yAtMin)
}

// sub64 returns a-b and whether it did not overflow.
func sub64(a, b int64) (int64, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return d, false
	}
	return d, true
}

// Legend prints v in full.
func (Int) Legend(v int) string { return strconv.Itoa(v) }

// Tooltip prints v in full in a box sized to the text.
func (Int) Tooltip(v int) Label {
	return Label{Text: strconv.Itoa(v), Measured: true}
}

// FromFloat truncates toward zero.
func (Int) FromFloat(v float64) int { return int(v) }

// FromInt returns v.
func (Int) FromInt(v int) int { return v }

// widen returns r ordered and with a strictly positive width.
func widen[T Number](d Domain[T], r Range[T]) Range[T] {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	if r.Min == r.Max {
		return d.Around(r.Min)
	}
	return r
}

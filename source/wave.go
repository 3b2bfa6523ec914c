package source

import (
	"math"
	"math/rand"
	"time"
)

// Shape is a periodic function of phase in [0, 1) with values in [-1, 1].
type Shape int

const (
	Sine Shape = iota
	Triangle
	Square
	Ramp
)

func (s Shape) String() string {
	switch s {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Ramp:
		return "ramp"
	}
	return "unknown"
}

func (s Shape) at(p float64) float64 {
	switch s {
	case Triangle:
		if p < 0.5 {
			return 4*p - 1
		}
		return 3 - 4*p
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Ramp:
		return 2*p - 1
	}
	return math.Sin(2 * math.Pi * p)
}

// Wave is a periodic waveform.
type Wave struct {
	shape     Shape
	period    time.Duration
	amplitude float64
	offset    float64

	t0  time.Time
	now func() time.Time
}

// NewWave starts a waveform at phase 0 now.
func NewWave(shape Shape, opt Options) *Wave {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Period <= 0 {
		opt.Period = DefaultOptions().Period
	}
	return &Wave{
		shape:     shape,
		period:    opt.Period,
		amplitude: opt.Amplitude,
		offset:    opt.Offset,
		t0:        opt.Now(),
		now:       opt.Now,
	}
}

func (w *Wave) Name() string { return w.shape.String() }

// Phase returns the position within the current period, in [0, 1).
func (w *Wave) Phase() float64 {
	elapsed := w.now().Sub(w.t0)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return float64(elapsed%w.period) / float64(w.period)
}

func (w *Wave) Sample() float64 {
	return w.offset + w.amplitude*w.shape.at(w.Phase())
}

// Noise is uniform noise in [offset-amplitude, offset+amplitude), held for
// one period/64 so it reads as a signal rather than static.
type Noise struct {
	rnd       *rand.Rand
	hold      time.Duration
	amplitude float64
	offset    float64

	now   func() time.Time
	t0    time.Time
	slot  int64
	value float64
}

// NewNoise returns a seeded noise source.
func NewNoise(opt Options) *Noise {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Period <= 0 {
		opt.Period = DefaultOptions().Period
	}
	hold := opt.Period / 64
	if hold <= 0 {
		hold = 1
	}
	n := &Noise{
		rnd:       rand.New(rand.NewSource(opt.Seed)),
		hold:      hold,
		amplitude: opt.Amplitude,
		offset:    opt.Offset,
		now:       opt.Now,
		t0:        opt.Now(),
		slot:      -1,
	}
	return n
}

func (n *Noise) Name() string { return "noise" }

func (n *Noise) Sample() float64 {
	slot := int64(n.now().Sub(n.t0) / n.hold)
	if slot != n.slot {
		n.slot = slot
		n.value = n.offset + n.amplitude*(2*n.rnd.Float64()-1)
	}
	return n.value
}

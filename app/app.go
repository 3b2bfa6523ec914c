package app

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"tracegraph/graph"
	"tracegraph/hal"
	"tracegraph/internal/buildinfo"
	"tracegraph/mono"
	"tracegraph/source"
)

// Panel size used when the framebuffer is a colour one.
const (
	panelWidth  = 128
	panelHeight = 64
)

// System is the scope demo: one float chart and an optional integer chart
// sharing a monochrome panel, fed from sample sources each step.
type System struct {
	h      hal.HAL
	log    hal.Logger
	fb     hal.Framebuffer
	screen *mono.Buffer
	cfg    Config

	float    *graph.Widget[float64]
	floatSrc source.Source
	ints     *graph.Widget[int]
	intSrc   source.Source

	sampling   bool
	axis       bool
	dotted     bool
	pointer    bool
	pointerIdx uint16
	manual     bool

	lastLogged uint64
	presentErr error
	frames     uint64
}

// Status is a snapshot of the demo for status lines.
type Status struct {
	Samples  uint64
	Min      float64
	Max      float64
	DataMin  float64
	DataMax  float64
	IntMin   int
	IntMax   int
	Period   time.Duration
	Sampling bool
	Axis     bool
	Dotted   bool
	Manual   bool
	Pointer  bool
	// PointerIndex counts samples back from the newest one.
	PointerIndex uint16
	Frames       uint64
}

// New initializes the demo with default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig initializes the demo and returns its step function. A setup
// error is returned by the first step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := NewSystem(h, cfg)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("tracegraph: " + err.Error())
		}
		return func() error { return err }
	}
	return s.SafeStep
}

// Run starts the demo and blocks forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

// RunWithConfig steps the demo every frameTicks HAL ticks and blocks forever.
func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	const frameTicks = 16
	if t := h.Time(); t != nil {
		if ch := t.Ticks(); ch != nil {
			for seq := range ch {
				if seq%frameTicks != 0 {
					continue
				}
				if err := step(); err != nil {
					break
				}
			}
		}
	}
	select {}
}

// NewSystem builds the demo on h.
func NewSystem(h hal.HAL, cfg Config) (*System, error) {
	if h == nil {
		return nil, errors.New("app: nil HAL")
	}
	cfg = cfg.normalize()

	var clock graph.Clock
	if t := h.Time(); t != nil {
		clock = t
	}

	w, ht := panelWidth, panelHeight
	var fb hal.Framebuffer
	if d := h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if fb != nil && fb.Format() == hal.PixelFormatMonoVLSB {
		w, ht = fb.Width(), fb.Height()
	}
	screen := mono.New(int16(w), int16(ht))

	opt := source.DefaultOptions()
	opt.GPIO = h.GPIO()
	floatSrc, err := source.Parse(cfg.Source, opt)
	if err != nil {
		return nil, fmt.Errorf("app: float source: %w", err)
	}

	s := &System{
		h:        h,
		log:      h.Logger(),
		fb:       fb,
		screen:   screen,
		cfg:      cfg,
		floatSrc: floatSrc,
		sampling: true,
		axis:     !cfg.NoAxis,
		dotted:   cfg.Dotted,
		pointer:  cfg.Pointer,
		manual:   cfg.ManualRange,
	}

	top := graph.Rect{FromX: 0, FromY: 0, ToX: int16(w - 1), ToY: int16(ht - 1)}
	if cfg.IntSource != "" {
		intSrc, err := source.Parse(cfg.IntSource, opt)
		if err != nil {
			return nil, fmt.Errorf("app: int source: %w", err)
		}
		s.intSrc = intSrc
		top.ToY = int16(ht/2 - 1)
		s.ints = graph.NewInt(screen, clock)
		s.ints.SetGeometry(graph.Rect{FromX: 0, FromY: int16(ht / 2), ToX: int16(w - 1), ToY: int16(ht - 1)})
		s.ints.SetInterval(cfg.IntervalMs)
		s.ints.SetScrollStep(cfg.Step)
	}
	s.float = graph.NewFloat(screen, clock)
	s.float.SetGeometry(top)
	s.float.SetInterval(cfg.IntervalMs)
	s.float.SetScrollStep(cfg.Step)
	s.setPointer(cfg.PointerIndex)
	s.apply()

	if s.log != nil {
		intName := "-"
		if s.intSrc != nil {
			intName = s.intSrc.Name()
		}
		s.log.WriteLineString(fmt.Sprintf("tracegraph %s: panel=%dx%d float=%s int=%s interval=%dms step=%d",
			buildinfo.Short(), w, ht, floatSrc.Name(), intName, cfg.IntervalMs, cfg.Step))
	}
	if led := h.LED(); led != nil {
		led.High()
	}
	return s, nil
}

// apply pushes the display state into the widgets.
func (s *System) apply() {
	s.float.SetSampling(s.sampling)
	s.float.SetDisplay(s.axis, s.dotted)
	s.float.SetPointerIndex(s.pointer, s.pointerIdx)
	s.float.SetRange(s.manual, s.cfg.RangeMin, s.cfg.RangeMax)
	if s.ints != nil {
		s.ints.SetSampling(s.sampling)
		s.ints.SetDisplay(s.axis, s.dotted)
		s.ints.SetPointerIndex(s.pointer, s.pointerIdx)
		if !s.cfg.SyncRange {
			s.ints.SetRange(s.manual, int(math.Floor(s.cfg.RangeMin)), int(math.Ceil(s.cfg.RangeMax)))
		}
	}
}

// Step drains input, feeds one sample to each chart, redraws and presents.
func (s *System) Step() error {
	s.drainKeys()

	s.float.FeedFloat(s.floatSrc.Sample())
	if s.ints != nil {
		if s.cfg.SyncRange {
			s.ints.SetRange(true, int(math.Floor(s.float.Min())), int(math.Ceil(s.float.Max())))
		}
		s.ints.FeedFloat(s.intSrc.Sample())
	}

	s.float.Render()
	if s.ints != nil {
		s.ints.Render()
	}
	s.frames++
	s.present()
	s.logStatus()
	return nil
}

func (s *System) present() {
	if s.fb == nil {
		return
	}
	err := s.screen.Present(s.fb, mono.DefaultPalette)
	if err != nil && (s.presentErr == nil || err.Error() != s.presentErr.Error()) && s.log != nil {
		s.log.WriteLineString("tracegraph: present: " + err.Error())
	}
	s.presentErr = err
}

func (s *System) logStatus() {
	every := uint64(s.cfg.LogEvery)
	if every == 0 || s.log == nil {
		return
	}
	n := s.float.Samples()
	if n-s.lastLogged < every {
		return
	}
	s.lastLogged = n
	s.log.WriteLineString(fmt.Sprintf("graph: n=%d min=%s max=%s period=%s",
		n, formatValue(s.float.DataMin()), formatValue(s.float.DataMax()), s.float.Period()))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Screen returns the panel the charts draw into.
func (s *System) Screen() *mono.Buffer { return s.screen }

// Status returns a snapshot of the charts and display state.
func (s *System) Status() Status {
	st := Status{
		Samples:      s.float.Samples(),
		Min:          s.float.Min(),
		Max:          s.float.Max(),
		DataMin:      s.float.DataMin(),
		DataMax:      s.float.DataMax(),
		Period:       s.float.Period(),
		Sampling:     s.sampling,
		Axis:         s.axis,
		Dotted:       s.dotted,
		Manual:       s.manual,
		Pointer:      s.pointer,
		PointerIndex: s.float.PointerIndex(),
		Frames:       s.frames,
	}
	if s.ints != nil {
		st.IntMin = s.ints.Min()
		st.IntMax = s.ints.Max()
	}
	return st
}

package source

import (
	"errors"
	"math"
	"testing"
	"time"

	"tracegraph/hal"
)

type manualClock struct{ t time.Time }

func (c *manualClock) now() time.Time { return c.t }

func newManual() *manualClock { return &manualClock{t: time.Unix(1000, 0)} }

func TestWaveShapes(t *testing.T) {
	cases := []struct {
		shape Shape
		at    []time.Duration
		want  []float64
	}{
		{shape: Sine, at: []time.Duration{0, 250 * time.Millisecond, 750 * time.Millisecond}, want: []float64{0, 10, -10}},
		{shape: Triangle, at: []time.Duration{0, 250 * time.Millisecond, 500 * time.Millisecond}, want: []float64{-10, 0, 10}},
		{shape: Square, at: []time.Duration{0, 499 * time.Millisecond, 500 * time.Millisecond}, want: []float64{10, 10, -10}},
		{shape: Ramp, at: []time.Duration{0, 500 * time.Millisecond, 1250 * time.Millisecond}, want: []float64{-10, 0, -5}},
	}
	for _, c := range cases {
		clk := newManual()
		start := clk.t
		w := NewWave(c.shape, Options{Period: time.Second, Amplitude: 10, Now: clk.now})
		for i, d := range c.at {
			clk.t = start.Add(d)
			if got := w.Sample(); math.Abs(got-c.want[i]) > 1e-9 {
				t.Fatalf("%s at %s: expected %v, got %v", c.shape, d, c.want[i], got)
			}
		}
	}
}

func TestWaveOffset(t *testing.T) {
	clk := newManual()
	w := NewWave(Square, Options{Period: time.Second, Amplitude: 2, Offset: 100, Now: clk.now})
	if got := w.Sample(); got != 102 {
		t.Fatalf("expected 102, got %v", got)
	}
}

func TestNoiseIsSeededAndHeld(t *testing.T) {
	clk := newManual()
	opt := Options{Period: 640 * time.Millisecond, Amplitude: 5, Seed: 42, Now: clk.now}
	a := NewNoise(opt)
	b := NewNoise(opt)

	first := a.Sample()
	if first < -5 || first >= 5 {
		t.Fatalf("sample %v out of range", first)
	}
	clk.t = clk.t.Add(5 * time.Millisecond)
	if a.Sample() != first {
		t.Fatal("expected value held within one hold interval")
	}
	if b.Sample() != first {
		t.Fatal("expected equal seeds to give equal streams")
	}
	clk.t = clk.t.Add(50 * time.Millisecond)
	if a.Sample() == first {
		t.Fatal("expected a new value after the hold interval")
	}
}

func TestParse(t *testing.T) {
	clk := newManual()
	opt := DefaultOptions()
	opt.Now = clk.now

	s, err := Parse("Triangle:500ms", opt)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Name() != "triangle" {
		t.Fatalf("expected triangle, got %s", s.Name())
	}
	clk.t = clk.t.Add(250 * time.Millisecond)
	if got := s.Sample(); got != 50 {
		t.Fatalf("expected peak 50 at half of a 500ms period, got %v", got)
	}

	if _, err := Parse("sawtooth", opt); !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
	if _, err := Parse("sine:fast", opt); err == nil {
		t.Fatal("expected period parse error")
	}
	if _, err := Parse("sine:-1s", opt); err == nil {
		t.Fatal("expected non-positive period error")
	}
	if n, err := Parse("noise", opt); err != nil || n.Name() != "noise" {
		t.Fatalf("expected noise source, got %v, %v", n, err)
	}
}

type fakePin struct {
	name  string
	caps  hal.GPIOCaps
	level bool
	err   error
}

func (p *fakePin) Name() string                               { return p.name }
func (p *fakePin) Caps() hal.GPIOCaps                         { return p.caps }
func (p *fakePin) Configure(hal.GPIOMode, hal.GPIOPull) error { return nil }
func (p *fakePin) Read() (bool, error)                        { return p.level, p.err }
func (p *fakePin) Write(bool) error                           { return nil }

type fakeGPIO []hal.GPIOPin

func (g fakeGPIO) PinCount() int          { return len(g) }
func (g fakeGPIO) Pin(id int) hal.GPIOPin { return g[id] }

func TestPinSource(t *testing.T) {
	sig := &fakePin{name: "SIG5HZ", caps: hal.GPIOCapInput}
	g := fakeGPIO{&fakePin{name: "LED", caps: hal.GPIOCapOutput}, sig}
	opt := DefaultOptions()
	opt.GPIO = g

	s, err := Parse("gpio:sig5hz", opt)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Name() != "gpio:SIG5HZ" {
		t.Fatalf("unexpected name %s", s.Name())
	}
	if s.Sample() != 0 {
		t.Fatal("expected low")
	}
	sig.level = true
	if s.Sample() != 1 {
		t.Fatal("expected high")
	}
	sig.err = errors.New("bus")
	if s.Sample() != 0 || s.(*Pin).Err() == nil {
		t.Fatal("expected read error to sample 0 and be kept")
	}

	if _, err := Parse("gpio:LED", opt); err == nil {
		t.Fatal("expected output-only pin to be rejected")
	}
	if _, err := Parse("gpio:GP99", opt); !errors.Is(err, ErrNoPin) {
		t.Fatalf("expected ErrNoPin, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 6 || names[0] != "gpio:<pin>" {
		t.Fatalf("unexpected names %v", names)
	}
}

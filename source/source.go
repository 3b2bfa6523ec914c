// Package source provides sample streams for charts: periodic waveforms, noise
// and GPIO levels. Time is read from an injected clock so streams are
// reproducible in tests.
package source

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tracegraph/hal"
)

// Source produces one sample per call, at the time given by its clock.
type Source interface {
	Name() string
	Sample() float64
}

var (
	ErrUnknown = errors.New("source: unknown source")
	ErrNoPin   = errors.New("source: no such pin")
)

// Options shape the generated waveforms.
type Options struct {
	Period    time.Duration
	Amplitude float64
	Offset    float64
	Seed      int64
	// Now is the clock; nil means time.Now.
	Now func() time.Time
	// GPIO resolves "gpio:<pin>" sources.
	GPIO hal.GPIO
}

// DefaultOptions is a 2 s wave swinging +-50 around zero.
func DefaultOptions() Options {
	return Options{
		Period:    2 * time.Second,
		Amplitude: 50,
		Seed:      1,
	}
}

var shapes = map[string]Shape{
	"sine":     Sine,
	"triangle": Triangle,
	"square":   Square,
	"ramp":     Ramp,
}

// Names lists the accepted source names. GPIO sources are spelled gpio:<pin>.
func Names() []string {
	names := make([]string, 0, len(shapes)+2)
	for n := range shapes {
		names = append(names, n)
	}
	names = append(names, "noise", "gpio:<pin>")
	sort.Strings(names)
	return names
}

// Parse builds a source from desc, which is a name optionally followed by
// ":<arg>". Waveforms and noise take a period ("sine:500ms"); gpio takes a pin name.
func Parse(desc string, opt Options) (Source, error) {
	name, arg, _ := strings.Cut(strings.TrimSpace(desc), ":")
	name = strings.ToLower(name)
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if name == "gpio" {
		p, err := NewPin(opt.GPIO, arg)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	if arg != "" {
		d, err := time.ParseDuration(arg)
		if err != nil {
			return nil, fmt.Errorf("source: %s period: %w", name, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("source: %s period must be positive, got %s", name, d)
		}
		opt.Period = d
	}
	if name == "noise" {
		return NewNoise(opt), nil
	}
	shape, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknown, desc, strings.Join(Names(), ", "))
	}
	return NewWave(shape, opt), nil
}

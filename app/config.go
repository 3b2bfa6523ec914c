package app

// Config selects the sources and display options of the scope demo.
type Config struct {
	// Source feeds the float chart, see source.Parse.
	Source string
	// IntSource feeds the integer chart; empty shows the float chart alone.
	IntSource string

	IntervalMs   uint32
	Dotted       bool
	NoAxis       bool
	Pointer      bool
	PointerIndex uint16
	Step         int16

	ManualRange bool
	RangeMin    float64
	RangeMax    float64
	// SyncRange pins the integer chart to the float chart's active range.
	SyncRange bool

	// LogEvery logs a status line every N admitted samples; 0 disables it.
	LogEvery int
}

// DefaultConfig is a sine over a triangle, sampled every frame.
func DefaultConfig() Config {
	return Config{
		Source:    "sine",
		IntSource: "triangle:3s",
		Step:      1,
		LogEvery:  250,
	}
}

func (c Config) normalize() Config {
	if c.Source == "" {
		c.Source = "sine"
	}
	if c.Step < 1 {
		c.Step = 1
	}
	if c.LogEvery < 0 {
		c.LogEvery = 0
	}
	if c.ManualRange && c.RangeMin > c.RangeMax {
		c.RangeMin, c.RangeMax = c.RangeMax, c.RangeMin
	}
	return c
}

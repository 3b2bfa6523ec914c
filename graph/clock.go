package graph

import "time"

// Clock reads the two free-running counters used for sample timing.
// Both may wrap; all arithmetic on them is unsigned.
type Clock interface {
	Millis() uint32
	Micros() uint32
}

// fineThresholdMs is the coarse delta below which the period is taken from Micros.
const fineThresholdMs = 5

// SampleClock gates sample admission by interval and records the period between
// admitted samples.
type SampleClock struct {
	interval uint32

	lastMs uint32
	lastUs uint32

	period uint32
	fine   bool
}

// SetInterval sets the minimum time between admitted samples. Zero admits every call.
func (c *SampleClock) SetInterval(ms uint32) { c.interval = ms }

// Interval returns the configured interval in milliseconds.
func (c *SampleClock) Interval() uint32 { return c.interval }

// Admit reports whether a sample offered now is accepted, recording the period if so.
func (c *SampleClock) Admit(clk Clock) bool {
	ms := clk.Millis()
	delta := ms - c.lastMs
	if delta < c.interval {
		return false
	}
	us := clk.Micros()
	if delta < fineThresholdMs {
		c.period = us - c.lastUs
		c.fine = true
	} else {
		c.period = delta
		c.fine = false
	}
	c.lastMs = ms
	c.lastUs = us
	return true
}

// RawPeriod returns the last period in the unit it was measured in:
// microseconds when Fine is true, milliseconds otherwise.
func (c *SampleClock) RawPeriod() uint32 { return c.period }

// Fine reports whether the last period came from the microsecond counter.
func (c *SampleClock) Fine() bool { return c.fine }

// Period returns the last period between admitted samples.
func (c *SampleClock) Period() time.Duration {
	if c.fine {
		return time.Duration(c.period) * time.Microsecond
	}
	return time.Duration(c.period) * time.Millisecond
}

type systemClock struct {
	t0 time.Time
}

// SystemClock returns a Clock counting from the moment it is created.
func SystemClock() Clock {
	return systemClock{t0: time.Now()}
}

func (c systemClock) Millis() uint32 { return uint32(time.Since(c.t0) / time.Millisecond) }
func (c systemClock) Micros() uint32 { return uint32(time.Since(c.t0) / time.Microsecond) }

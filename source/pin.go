package source

import (
	"fmt"

	"tracegraph/hal"
)

// Pin samples a digital input as 0 or 1. Read errors sample as 0.
type Pin struct {
	pin hal.GPIOPin
	err error
}

// NewPin configures the named pin of g as an input.
func NewPin(g hal.GPIO, name string) (*Pin, error) {
	p := hal.FindPin(g, name)
	if p == nil {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrNoPin, name, hal.PinNames(g))
	}
	if p.Caps()&hal.GPIOCapInput == 0 {
		return nil, fmt.Errorf("source: pin %s is not an input", p.Name())
	}
	if err := p.Configure(hal.GPIOModeInput, hal.GPIOPullNone); err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	return &Pin{pin: p}, nil
}

func (p *Pin) Name() string { return "gpio:" + p.pin.Name() }

func (p *Pin) Sample() float64 {
	level, err := p.pin.Read()
	p.err = err
	if err != nil || !level {
		return 0
	}
	return 1
}

// Err returns the error of the last read, if any.
func (p *Pin) Err() error { return p.err }

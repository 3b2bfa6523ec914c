//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type tinyGoTime struct {
	ch    chan uint64
	seq   uint64
	start time.Time
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16), start: time.Now()}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }
func (t *tinyGoTime) Millis() uint32       { return uint32(time.Since(t.start) / time.Millisecond) }
func (t *tinyGoTime) Micros() uint32       { return uint32(time.Since(t.start) / time.Microsecond) }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// machinePin is a board pin exposed through the GPIO interface.
type machinePin struct {
	name string
	pin  machine.Pin
	mode GPIOMode
}

func newMachinePin(name string, pin machine.Pin) *machinePin {
	p := &machinePin{name: name, pin: pin}
	_ = p.Configure(GPIOModeInput, GPIOPullNone)
	return p
}

func (p *machinePin) Name() string { return p.name }
func (p *machinePin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	var m machine.PinMode
	switch {
	case mode == GPIOModeOutput:
		m = machine.PinOutput
	case pull == GPIOPullUp:
		m = machine.PinInputPullup
	case pull == GPIOPullDown:
		m = machine.PinInputPulldown
	default:
		m = machine.PinInput
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	p.mode = mode
	return nil
}

func (p *machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p *machinePin) Write(level bool) error {
	if p.mode != GPIOModeOutput {
		return ErrNotImplemented
	}
	p.pin.Set(level)
	return nil
}

// buttonKeyboard turns active-low push buttons into key events.
type buttonKeyboard struct {
	ch      chan KeyEvent
	buttons []button
}

type button struct {
	pin  machine.Pin
	code KeyCode
	r    rune
	down bool
}

func newButtonKeyboard(buttons ...button) *buttonKeyboard {
	k := &buttonKeyboard{ch: make(chan KeyEvent, 16), buttons: buttons}
	for i := range k.buttons {
		k.buttons[i].pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	go k.run()
	return k
}

func (k *buttonKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *buttonKeyboard) run() {
	for {
		for i := range k.buttons {
			b := &k.buttons[i]
			down := !b.pin.Get()
			if down == b.down {
				continue
			}
			b.down = down
			select {
			case k.ch <- KeyEvent{Code: b.code, Press: down, Rune: b.r}:
			default:
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
}

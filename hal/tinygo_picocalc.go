//go:build tinygo && baremetal && picocalc

package hal

import (
	"machine"
	"time"
)

type picoCalcHAL struct {
	logger *uartLogger
	led    *pinLED
	gpio   GPIO
	fb     Framebuffer
	kbd    Keyboard
	t      *tinyGoTime
}

// New returns a PicoCalc HAL (Pico/Pico2 on the PicoCalc carrier). The 320x320
// LCD shows the mono panel scaled up; the keyboard drives the pointer.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Probe input: GP28.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led := &pinLED{pin: ledPin}

	var fb Framebuffer
	if disp, err := newPicoCalcDisplay(); err == nil {
		fb = disp
	} else {
		logger.WriteLineString("hal: lcd: " + err.Error())
		fb = newPicoCalcDisplayStub()
	}

	var kbd Keyboard
	if kb, err := newPicoCalcKeyboard(); err == nil {
		kbd = kb
	} else {
		logger.WriteLineString("hal: " + err.Error())
	}

	return &picoCalcHAL{
		logger: logger,
		led:    led,
		gpio: newVirtualGPIO([]GPIOPin{
			newLEDPin("LED", led),
			newMachinePin("GP28", machine.GP28),
		}),
		fb:  fb,
		kbd: kbd,
		t:   newTinyGoTime(),
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) LED() LED         { return h.led }
func (h *picoCalcHAL) GPIO() GPIO       { return h.gpio }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *picoCalcHAL) Time() Time       { return h.t }

const picoCalcSide = 320

type picoCalcFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd *ili9488
	// rows holds a hash of every row as last sent; Present skips unchanged rows.
	rows []uint32
	sent bool
}

func (f *picoCalcFramebuffer) Width() int          { return f.w }
func (f *picoCalcFramebuffer) Height() int         { return f.h }
func (f *picoCalcFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *picoCalcFramebuffer) StrideBytes() int    { return f.stride }
func (f *picoCalcFramebuffer) Buffer() []byte      { return f.buf }

func (f *picoCalcFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// Present sends the runs of rows that changed since the previous frame. A
// scrolling chart only touches the band the panel is scaled into.
func (f *picoCalcFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	start := -1
	for y := 0; y <= f.h; y++ {
		changed := false
		if y < f.h {
			sum := rowHash(f.buf[y*f.stride : (y+1)*f.stride])
			changed = !f.sent || sum != f.rows[y]
			f.rows[y] = sum
		}
		switch {
		case changed && start < 0:
			start = y
		case !changed && start >= 0:
			if err := f.lcd.blitRows(f.buf, f.w, start, y); err != nil {
				return err
			}
			start = -1
		}
	}
	f.sent = true
	return nil
}

// rowHash is 32-bit FNV-1a.
func rowHash(b []byte) uint32 {
	h := uint32(2166136261)
	for _, c := range b {
		h ^= uint32(c)
		h *= 16777619
	}
	return h
}

func newPicoCalcDisplay() (*picoCalcFramebuffer, error) {
	lcd, err := initILI9488()
	if err != nil {
		return nil, err
	}
	f := newPicoCalcDisplayStub()
	f.lcd = lcd
	return f, nil
}

func newPicoCalcDisplayStub() *picoCalcFramebuffer {
	return &picoCalcFramebuffer{
		w:      picoCalcSide,
		h:      picoCalcSide,
		stride: picoCalcSide * 2,
		buf:    make([]byte, picoCalcSide*picoCalcSide*2),
		rows:   make([]uint32, picoCalcSide),
	}
}

type picoCalcKeyboard struct {
	ch chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	dev := &picoCalcKeyboard{ch: make(chan KeyEvent, 64)}
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}

	go func() {
		defer close(dev.ch)
		for {
			ev, ok := kbd.readEvent()
			if ok {
				select {
				case dev.ch <- ev:
				default:
				}
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()

	return dev, nil
}

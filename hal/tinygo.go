//go:build tinygo && baremetal && !picocalc

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	gpio   GPIO
	fb     Framebuffer
	kbd    Keyboard
	t      *tinyGoTime
}

// New returns a Pico (RP2040/RP2350) HAL with a 128x64 SSD1306 panel.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// OLED: I2C0 on GP4 (SDA) / GP5 (SCL), address 0x3C.
// Buttons to ground: GP2 left, GP3 right, GP6 pause, GP7 dotted.
// Probe input: GP15.
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
	if oled, err := newOLEDFramebuffer(machine.I2C0, machine.GP4, machine.GP5, 128, 64); err == nil {
		fb = oled
	} else {
		logger.WriteLineString("hal: oled: " + err.Error())
		fb = &stubFramebuffer{w: 128, h: 64, format: PixelFormatMonoVLSB}
	}

	return &tinyGoHAL{
		logger: logger,
		led:    led,
		gpio: newVirtualGPIO([]GPIOPin{
			newLEDPin("LED", led),
			newMachinePin("GP15", machine.GP15),
		}),
		fb: fb,
		kbd: newButtonKeyboard(
			button{pin: machine.GP2, code: KeyLeft},
			button{pin: machine.GP3, code: KeyRight},
			button{pin: machine.GP6, r: 'p'},
			button{pin: machine.GP7, r: 'd'},
		),
		t: newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) GPIO() GPIO       { return h.gpio }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHAL) Time() Time       { return h.t }

// oledFramebuffer exposes the SSD1306 GDDRAM shadow buffer directly.
type oledFramebuffer struct {
	dev *ssd1306.Device
	w   int
	h   int
}

func newOLEDFramebuffer(bus *machine.I2C, sda, scl machine.Pin, w, h int16) (*oledFramebuffer, error) {
	if err := bus.Configure(machine.I2CConfig{
		SDA:       sda,
		SCL:       scl,
		Frequency: 400 * machine.KHz,
	}); err != nil {
		return nil, err
	}
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Width:    w,
		Height:   h,
		Address:  0x3C,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()
	return &oledFramebuffer{dev: dev, w: int(w), h: int(h)}, nil
}

func (f *oledFramebuffer) Width() int          { return f.w }
func (f *oledFramebuffer) Height() int         { return f.h }
func (f *oledFramebuffer) Format() PixelFormat { return PixelFormatMonoVLSB }
func (f *oledFramebuffer) StrideBytes() int    { return f.w }
func (f *oledFramebuffer) Buffer() []byte      { return f.dev.GetBuffer() }
func (f *oledFramebuffer) Present() error      { return f.dev.Display() }

// ClearRGB lights every pixel for any non-black colour.
func (f *oledFramebuffer) ClearRGB(r, g, b uint8) {
	v := byte(0)
	if r|g|b != 0 {
		v = 0xFF
	}
	buf := f.dev.GetBuffer()
	for i := range buf {
		buf[i] = v
	}
}

package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatMonoVLSB is 1bpp in vertical pages: byte x+(y/8)*width, bit y%8.
	// This is the SSD1306 GDDRAM layout.
	PixelFormatMonoVLSB
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB565:
		return "rgb565"
	case PixelFormatMonoVLSB:
		return "mono-vlsb"
	}
	return "unknown"
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyHome
	KeyEnd
)

// KeyEvent is a keyboard event. Text input arrives with Code KeyUnknown and Rune set.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides a base tick stream and two free-running counters.
//
// Millis and Micros count from HAL creation and wrap at 2^32.
type Time interface {
	Ticks() <-chan uint64
	Millis() uint32
	Micros() uint32
}

// HAL provides the only contact point between the application and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	GPIO() GPIO
	Display() Display
	Input() Input
	Time() Time
}

//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Host display size: a 128x64 panel at 3x.
const (
	hostWidth  = 384
	hostHeight = 192
)

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	gpio   GPIO
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL implementation logging to stdout.
func New() HAL {
	return newHost(os.Stdout)
}

// NewWithLog returns a host HAL implementation logging to w.
func NewWithLog(w io.Writer) HAL {
	return newHost(w)
}

func newHost(w io.Writer) *hostHAL {
	logger := &hostLogger{w: w}
	led := &hostLED{logger: logger}
	// Dummy signal sources for the chart's GPIO source on host.
	gpio := newVirtualGPIO([]GPIOPin{
		newLEDPin("LED", led),
		newSignalPin("SIG1HZ", 1*time.Second, 500*time.Millisecond),
		newSignalPin("SIG5HZ", 200*time.Millisecond, 100*time.Millisecond),
		newSignalPin("SIGPULSE", 1*time.Second, 50*time.Millisecond),
		newSignalPin("SIGPWM25", 200*time.Millisecond, 50*time.Millisecond),
	})
	return &hostHAL{
		logger: logger,
		led:    led,
		gpio:   gpio,
		fb:     newHostFramebuffer(hostWidth, hostHeight),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) GPIO() GPIO       { return h.gpio }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		l.logger.WriteLineString("led: HIGH")
	}
	l.on = true
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		l.logger.WriteLineString("led: LOW")
	}
	l.on = false
}

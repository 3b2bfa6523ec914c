package graph

import (
	"fmt"
	"time"
)

type call struct {
	Op   string
	Args [4]int16
	Text string
}

func (c call) String() string {
	if c.Text != "" {
		return fmt.Sprintf("%s(%q)", c.Op, c.Text)
	}
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// recorder is a Surface that remembers every primitive call.
// Text is 4 px per character, like the tom thumb font.
type recorder struct {
	calls []call
	color uint8
}

func (r *recorder) add(op string, args ...int16) {
	c := call{Op: op}
	copy(c.Args[:], args)
	r.calls = append(r.calls, c)
}

func (r *recorder) SetDrawColor(c uint8) {
	r.color = c
	r.add("color", int16(c))
}

func (r *recorder) DrawPixel(x, y int16)          { r.add("pixel", x, y) }
func (r *recorder) DrawLine(x0, y0, x1, y1 int16) { r.add("line", x0, y0, x1, y1) }
func (r *recorder) DrawHLine(x, y, w int16)       { r.add("hline", x, y, w) }
func (r *recorder) DrawVLine(x, y, h int16)       { r.add("vline", x, y, h) }
func (r *recorder) DrawBox(x, y, w, h int16)      { r.add("box", x, y, w, h) }

func (r *recorder) SetClipWindow(x0, y0, x1, y1 int16) { r.add("clip", x0, y0, x1, y1) }
func (r *recorder) SetMaxClipWindow()                  { r.add("noclip") }

func (r *recorder) SetCursor(x, y int16) { r.add("cursor", x, y) }

func (r *recorder) Print(s string) {
	r.calls = append(r.calls, call{Op: "print", Args: [4]int16{int16(r.color)}, Text: s})
}

func (r *recorder) StrWidth(s string) int16 { return int16(4 * len(s)) }

func (r *recorder) reset() { r.calls = nil }

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (r *recorder) prints() []string {
	var out []string
	for _, c := range r.calls {
		if c.Op == "print" {
			out = append(out, c.Text)
		}
	}
	return out
}

// cursorBefore returns the cursor set for the print of text.
func (r *recorder) cursorBefore(text string) (x, y int16, ok bool) {
	for i, c := range r.calls {
		if c.Op != "print" || c.Text != text {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if r.calls[j].Op == "cursor" {
				return r.calls[j].Args[0], r.calls[j].Args[1], true
			}
		}
	}
	return 0, 0, false
}

type fakeClock struct {
	ms uint32
	us uint32
}

func (c *fakeClock) Millis() uint32 { return c.ms }
func (c *fakeClock) Micros() uint32 { return c.us }

func (c *fakeClock) advance(d time.Duration) {
	c.ms += uint32(d / time.Millisecond)
	c.us += uint32(d / time.Microsecond)
}

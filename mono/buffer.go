// Package mono is a 1 bit per pixel drawing surface in SSD1306 page layout.
//
// Byte x+(y/8)*width holds column x of the eight rows starting at y&^7, with
// row y in bit y%8. The layout is what SSD1306 and most u8g2 panels expect,
// so a Buffer can be copied to a panel as is.
package mono

import (
	"image/color"

	"tracegraph/fonts/tomthumb"

	"tinygo.org/x/tinyfont"
)

// Draw colours.
const (
	ColorClear uint8 = iota
	ColorSet
	ColorXOR
)

var (
	// On is the colour tinyfont glyphs are drawn with; SetPixel applies the draw colour for it.
	On  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Off = color.RGBA{A: 0xff}
)

type window struct {
	x0, y0 int16
	x1, y1 int16
}

// Buffer is a monochrome framebuffer with a draw colour, a clip window and a
// text cursor. It is not safe for concurrent use.
type Buffer struct {
	width  int16
	height int16
	buf    []byte

	color  uint8
	clip   window
	cx, cy int16
	font   tinyfont.Fonter
}

// New allocates a cleared w x h buffer. Height is rounded up to whole pages in storage.
func New(w, h int16) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	pages := (int(h) + 7) / 8
	b := &Buffer{
		width:  w,
		height: h,
		buf:    make([]byte, int(w)*pages),
		color:  ColorSet,
		font:   tomthumb.Font,
	}
	b.SetMaxClipWindow()
	return b
}

func (b *Buffer) Width() int16  { return b.width }
func (b *Buffer) Height() int16 { return b.height }

// Bytes returns the backing store. It aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.buf }

// Clear turns every pixel off, ignoring the clip window.
func (b *Buffer) Clear() {
	for i := range b.buf {
		b.buf[i] = 0
	}
}

// Pixel reports whether (x, y) is on. Out of range coordinates are off.
func (b *Buffer) Pixel(x, y int16) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	return b.buf[int(x)+int(y/8)*int(b.width)]&(1<<uint(y%8)) != 0
}

// Count returns the number of lit pixels.
func (b *Buffer) Count() int {
	n := 0
	for _, v := range b.buf {
		for ; v != 0; v &= v - 1 {
			n++
		}
	}
	return n
}

// SetFont selects the font used by Print and StrWidth.
func (b *Buffer) SetFont(f tinyfont.Fonter) {
	if f != nil {
		b.font = f
	}
}

func (b *Buffer) SetDrawColor(c uint8) { b.color = c }

// DrawColor returns the current draw colour.
func (b *Buffer) DrawColor() uint8 { return b.color }

// SetClipWindow limits drawing to x0 <= x < x1, y0 <= y < y1.
func (b *Buffer) SetClipWindow(x0, y0, x1, y1 int16) {
	b.clip = window{
		x0: clamp16(x0, 0, b.width),
		y0: clamp16(y0, 0, b.height),
		x1: clamp16(x1, 0, b.width),
		y1: clamp16(y1, 0, b.height),
	}
}

// SetMaxClipWindow makes the whole buffer drawable.
func (b *Buffer) SetMaxClipWindow() {
	b.clip = window{x1: b.width, y1: b.height}
}

func (b *Buffer) plot(x, y int16) {
	if x < b.clip.x0 || x >= b.clip.x1 || y < b.clip.y0 || y >= b.clip.y1 {
		return
	}
	i := int(x) + int(y/8)*int(b.width)
	bit := byte(1) << uint(y%8)
	switch b.color {
	case ColorClear:
		b.buf[i] &^= bit
	case ColorXOR:
		b.buf[i] ^= bit
	default:
		b.buf[i] |= bit
	}
}

func (b *Buffer) DrawPixel(x, y int16) { b.plot(x, y) }

func (b *Buffer) DrawHLine(x, y, w int16) {
	for i := int16(0); i < w; i++ {
		b.plot(x+i, y)
	}
}

func (b *Buffer) DrawVLine(x, y, h int16) {
	for i := int16(0); i < h; i++ {
		b.plot(x, y+i)
	}
}

// DrawBox fills a w x h rectangle.
func (b *Buffer) DrawBox(x, y, w, h int16) {
	for i := int16(0); i < h; i++ {
		b.DrawHLine(x, y+i, w)
	}
}

// DrawFrame outlines a w x h rectangle.
func (b *Buffer) DrawFrame(x, y, w, h int16) {
	if w <= 0 || h <= 0 {
		return
	}
	b.DrawHLine(x, y, w)
	if h > 1 {
		b.DrawHLine(x, y+h-1, w)
	}
	if h > 2 {
		b.DrawVLine(x, y+1, h-2)
		if w > 1 {
			b.DrawVLine(x+w-1, y+1, h-2)
		}
	}
}

// DrawLine draws from (x0, y0) to (x1, y1) inclusive.
func (b *Buffer) DrawLine(x0, y0, x1, y1 int16) {
	dx := abs16(x1 - x0)
	sx := int16(-1)
	if x0 < x1 {
		sx = 1
	}
	dy := -abs16(y1 - y0)
	sy := int16(-1)
	if y0 < y1 {
		sy = 1
	}
	err := int32(dx) + int32(dy)
	for {
		b.plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= int32(dy) {
			if x0 == x1 {
				return
			}
			err += int32(dy)
			x0 += sx
		}
		if e2 <= int32(dx) {
			if y0 == y1 {
				return
			}
			err += int32(dx)
			y0 += sy
		}
	}
}

// SetCursor sets the baseline origin of the next Print.
func (b *Buffer) SetCursor(x, y int16) {
	b.cx = x
	b.cy = y
}

// Print draws s at the cursor in the draw colour and advances the cursor.
func (b *Buffer) Print(s string) {
	tinyfont.WriteLine(b, b.font, b.cx, b.cy, s, On)
	b.cx += b.StrWidth(s)
}

// StrWidth returns the advance of s in the current font.
func (b *Buffer) StrWidth(s string) int16 {
	_, outbox := tinyfont.LineWidth(b.font, s)
	return int16(outbox)
}

// Size implements drivers.Displayer.
func (b *Buffer) Size() (x, y int16) { return b.width, b.height }

// SetPixel implements drivers.Displayer. Lit colours are drawn with the draw
// colour, black clears the pixel. The clip window applies to both.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	if c.R == 0 && c.G == 0 && c.B == 0 {
		saved := b.color
		b.color = ColorClear
		b.plot(x, y)
		b.color = saved
		return
	}
	b.plot(x, y)
}

// Display implements drivers.Displayer. Use Present to copy the buffer out.
func (b *Buffer) Display() error { return nil }

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp16(v, lo, hi int16) int16 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

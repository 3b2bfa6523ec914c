package mono

import (
	"fmt"
	"image/color"

	"tracegraph/hal"
)

// Palette colours lit and unlit pixels on colour framebuffers.
type Palette struct {
	FG color.RGBA
	BG color.RGBA
}

// DefaultPalette is green phosphor on black.
var DefaultPalette = Palette{
	FG: color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff},
	BG: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
}

// Present copies b to fb and presents it. Monochrome targets must match b in
// size. RGB565 targets get b scaled by the largest whole factor that fits, centred.
func (b *Buffer) Present(fb hal.Framebuffer, p Palette) error {
	if fb == nil {
		return nil
	}
	switch fb.Format() {
	case hal.PixelFormatMonoVLSB:
		dst := fb.Buffer()
		if fb.Width() != int(b.width) || fb.Height() != int(b.height) || len(dst) < len(b.buf) {
			return fmt.Errorf("mono: framebuffer %dx%d does not fit buffer %dx%d", fb.Width(), fb.Height(), b.width, b.height)
		}
		copy(dst, b.buf)
	case hal.PixelFormatRGB565:
		if err := b.blitRGB565(fb, p); err != nil {
			return err
		}
	default:
		return fmt.Errorf("mono: unsupported pixel format %d", fb.Format())
	}
	return fb.Present()
}

// Scale returns the whole factor b is drawn at on a w x h colour framebuffer.
func (b *Buffer) Scale(w, h int) int {
	if b.width <= 0 || b.height <= 0 {
		return 0
	}
	s := w / int(b.width)
	if sy := h / int(b.height); sy < s {
		s = sy
	}
	return s
}

func (b *Buffer) blitRGB565(fb hal.Framebuffer, p Palette) error {
	buf := fb.Buffer()
	if buf == nil {
		return hal.ErrNotImplemented
	}
	w, h := fb.Width(), fb.Height()
	s := b.Scale(w, h)
	if s < 1 {
		return fmt.Errorf("mono: framebuffer %dx%d smaller than buffer %dx%d", w, h, b.width, b.height)
	}

	bg := hal.RGB565(p.BG.R, p.BG.G, p.BG.B)
	fg := hal.RGB565(p.FG.R, p.FG.G, p.FG.B)
	fb.ClearRGB(p.BG.R, p.BG.G, p.BG.B)

	stride := fb.StrideBytes()
	ox := (w - int(b.width)*s) / 2
	oy := (h - int(b.height)*s) / 2
	for y := 0; y < int(b.height); y++ {
		for x := 0; x < int(b.width); x++ {
			px := bg
			if b.Pixel(int16(x), int16(y)) {
				px = fg
			}
			if px == bg {
				continue
			}
			for dy := 0; dy < s; dy++ {
				row := (oy+y*s+dy)*stride + (ox+x*s)*2
				for dx := 0; dx < s; dx++ {
					off := row + dx*2
					if off < 0 || off+1 >= len(buf) {
						continue
					}
					buf[off] = byte(px)
					buf[off+1] = byte(px >> 8)
				}
			}
		}
	}
	return nil
}

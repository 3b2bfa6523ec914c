//go:build tinygo && !baremetal

package hal

// tinyGoHostFramebuffer is an in-memory panel in the SSD1306 layout.
type tinyGoHostFramebuffer struct {
	w   int
	h   int
	buf []byte
}

func newTinyGoHostFramebuffer(w, h int) *tinyGoHostFramebuffer {
	return &tinyGoHostFramebuffer{
		w:   w,
		h:   h,
		buf: make([]byte, w*((h+7)/8)),
	}
}

func (f *tinyGoHostFramebuffer) Width() int          { return f.w }
func (f *tinyGoHostFramebuffer) Height() int         { return f.h }
func (f *tinyGoHostFramebuffer) Format() PixelFormat { return PixelFormatMonoVLSB }
func (f *tinyGoHostFramebuffer) StrideBytes() int    { return f.w }
func (f *tinyGoHostFramebuffer) Buffer() []byte      { return f.buf }

func (f *tinyGoHostFramebuffer) ClearRGB(r, g, b uint8) {
	v := byte(0)
	if r|g|b != 0 {
		v = 0xFF
	}
	for i := range f.buf {
		f.buf[i] = v
	}
}

func (f *tinyGoHostFramebuffer) Present() error {
	// No-op by default for tinygo host targets.
	return nil
}

package tomthumb

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is a 3x5 bitmap font with a 4 px advance, sized for chart legends on
// 128x64 monochrome panels. Lower case letters render as upper case and
// unknown runes as '?'.
//
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font3x5{}

const (
	width    = 3
	height   = 5
	advance  = 4
	ascent   = 5
	fallback = '?'
)

type font3x5 struct {
	g glyph
}

type glyph struct {
	r    rune
	rows [height]uint8
}

// Draw puts the glyph above the baseline y, rows y-5 through y-1.
func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	for row, b := range g.rows {
		// bit2 is the leftmost column.
		for col := 0; col < width; col++ {
			if b&(0x4>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-ascent+int16(row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    width,
		Height:   height,
		XAdvance: advance,
		XOffset:  0,
		YOffset:  -ascent,
	}
}

func (f *font3x5) GetYAdvance() uint8 { return height + 1 }

func (f *font3x5) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	f.g.rows = Rows(r)
	return &f.g
}

// Rows returns the bitmap of r, one byte per row with bit2 as the leftmost pixel.
func Rows(r rune) [height]uint8 {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if rows, ok := glyphs[r]; ok {
		return rows
	}
	return glyphs[fallback]
}

// Has reports whether r has its own glyph.
func Has(r rune) bool {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	_, ok := glyphs[r]
	return ok
}

var glyphs = map[rune][height]uint8{
	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
	'%': {0b101, 0b001, 0b010, 0b100, 0b101},
	'(': {0b010, 0b100, 0b100, 0b100, 0b010},
	')': {0b010, 0b001, 0b001, 0b001, 0b010},
	'+': {0b000, 0b010, 0b111, 0b010, 0b000},
	',': {0b000, 0b000, 0b000, 0b010, 0b100},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	'/': {0b001, 0b001, 0b010, 0b100, 0b100},
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b011, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b010, 0b010},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	':': {0b000, 0b010, 0b000, 0b010, 0b000},
	'=': {0b000, 0b111, 0b000, 0b111, 0b000},
	'?': {0b111, 0b001, 0b011, 0b000, 0b010},
	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b111, 0b100, 0b111},
	'F': {0b111, 0b100, 0b111, 0b100, 0b100},
	'G': {0b011, 0b100, 0b111, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b101, 0b110, 0b101, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b111, 0b101, 0b101},
	'N': {0b101, 0b111, 0b111, 0b111, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b111, 0b011},
	'R': {0b110, 0b101, 0b111, 0b110, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b011},
	'V': {0b101, 0b101, 0b101, 0b010, 0b010},
	'W': {0b101, 0b101, 0b111, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
	'_': {0b000, 0b000, 0b000, 0b000, 0b111},
}

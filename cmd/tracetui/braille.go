package main

import (
	"strings"

	"tracegraph/mono"
)

// brailleDots maps a pixel in a 2x4 cell to its braille dot bit.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// braille renders b as rows of braille characters, one per 2x4 pixels.
func braille(b *mono.Buffer) string {
	w, h := int(b.Width()), int(b.Height())
	var sb strings.Builder
	sb.Grow((w/2 + 1) * ((h + 3) / 4) * 3)
	for cy := 0; cy < h; cy += 4 {
		if cy > 0 {
			sb.WriteByte('\n')
		}
		for cx := 0; cx < w; cx += 2 {
			var bits rune
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if b.Pixel(int16(cx+dx), int16(cy+dy)) {
						bits |= brailleDots[dy][dx]
					}
				}
			}
			sb.WriteRune(brailleBlank + bits)
		}
	}
	return sb.String()
}

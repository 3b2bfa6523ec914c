package main

import (
	"testing"

	"tracegraph/mono"
)

func TestBrailleBlank(t *testing.T) {
	b := mono.New(4, 8)
	want := "⠀⠀\n⠀⠀"
	if got := braille(b); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBrailleDots(t *testing.T) {
	cases := []struct {
		x, y int16
		want rune
	}{
		{x: 0, y: 0, want: '⠁'},
		{x: 0, y: 2, want: '⠄'},
		{x: 1, y: 0, want: '⠈'},
		{x: 0, y: 3, want: '⡀'},
		{x: 1, y: 3, want: '⢀'},
	}
	for _, c := range cases {
		b := mono.New(2, 4)
		b.DrawPixel(c.x, c.y)
		if got := braille(b); got != string(c.want) {
			t.Fatalf("pixel (%d,%d): expected %q, got %q", c.x, c.y, c.want, got)
		}
	}
}

func TestBrailleFullAndPartialCells(t *testing.T) {
	b := mono.New(3, 6)
	b.DrawBox(0, 0, 3, 6)
	// The right column and the bottom row only fill part of their cells.
	want := "⣿⡇\n⠛⠃"
	if got := braille(b); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

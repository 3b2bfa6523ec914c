package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tracegraph/mono"
)

// ErrFault is returned by SafeStep after a step panicked.
var ErrFault = errors.New("app: fault")

// SafeStep runs Step, turning a panic into a fault screen, log lines and ErrFault.
func (s *System) SafeStep() (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		s.fault(v, debug.Stack())
		err = fmt.Errorf("%w: %v", ErrFault, v)
	}()
	return s.Step()
}

func (s *System) fault(v any, stack []byte) {
	var lines []string
	if len(stack) > 0 {
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	if s.log != nil {
		s.log.WriteLineString(fmt.Sprintf("tracegraph panic: %v", v))
		for _, line := range lines {
			s.log.WriteLineString(line)
		}
	}

	b := s.screen
	b.SetMaxClipWindow()
	b.SetDrawColor(mono.ColorClear)
	b.DrawBox(0, 0, b.Width(), b.Height())
	b.SetDrawColor(mono.ColorSet)

	lineH := int16(7)
	cols := b.Width() / b.StrWidth("0")
	if cols <= 0 {
		cols = 1
	}
	text := append([]string{"FAULT", fmt.Sprint(v)}, lines...)

	y := lineH - 1
	for _, line := range text {
		for len(line) > 0 {
			if y > b.Height() {
				s.present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			b.SetCursor(0, y)
			b.Print(chunk)
			y += lineH
			line = strings.TrimLeft(rest, " \t")
		}
	}
	s.present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}

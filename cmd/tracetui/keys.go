package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tracegraph/hal"
)

type keyMap struct {
	Older  key.Binding
	Newer  key.Binding
	Newest key.Binding
	Oldest key.Binding
	Hide   key.Binding
	Pause  key.Binding
	Dotted key.Binding
	Axis   key.Binding
	Range  key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Older:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "older")),
		Newer:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "newer")),
		Newest: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "newest")),
		Oldest: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "oldest")),
		Hide:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hide pointer")),
		Pause:  key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
		Dotted: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dots")),
		Axis:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "axis")),
		Range:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "manual range")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Older, k.Newer, k.Pause, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Older, k.Newer, k.Newest, k.Oldest, k.Hide},
		{k.Pause, k.Dotted, k.Axis, k.Range, k.Clear},
		{k.Help, k.Quit},
	}
}

// event translates a terminal key into the panel key the scope understands.
func (k keyMap) event(msg tea.KeyMsg) (hal.KeyEvent, bool) {
	press := func(code hal.KeyCode) (hal.KeyEvent, bool) {
		return hal.KeyEvent{Code: code, Press: true}, true
	}
	text := func(r rune) (hal.KeyEvent, bool) {
		return hal.KeyEvent{Press: true, Rune: r}, true
	}
	switch {
	case key.Matches(msg, k.Older):
		return press(hal.KeyLeft)
	case key.Matches(msg, k.Newer):
		return press(hal.KeyRight)
	case key.Matches(msg, k.Newest):
		return press(hal.KeyHome)
	case key.Matches(msg, k.Oldest):
		return press(hal.KeyEnd)
	case key.Matches(msg, k.Hide):
		return press(hal.KeyEscape)
	case key.Matches(msg, k.Pause):
		return text('p')
	case key.Matches(msg, k.Dotted):
		return text('d')
	case key.Matches(msg, k.Axis):
		return text('a')
	case key.Matches(msg, k.Range):
		return text('r')
	case key.Matches(msg, k.Clear):
		return text('c')
	}
	return hal.KeyEvent{}, false
}

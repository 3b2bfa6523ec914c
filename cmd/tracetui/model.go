package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tracegraph/app"
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#4adf6a")).
	Foreground(lipgloss.Color("#4adf6a"))

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	faultStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// tickMsg steps the scope once.
type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	sys   *app.System
	frame time.Duration
	keys  keyMap
	help  help.Model
	err   error
}

func newModel(sys *app.System, frame time.Duration) model {
	return model{
		sys:   sys,
		frame: frame,
		keys:  newKeyMap(),
		help:  help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return tick(m.frame)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.err != nil {
			return m, nil
		}
		// A fault leaves its screen up; ticking stops.
		if err := m.sys.SafeStep(); err != nil {
			m.err = err
			return m, nil
		}
		return m, tick(m.frame)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if ev, ok := m.keys.event(msg); ok {
			m.sys.HandleKey(ev)
		}
	}
	return m, nil
}

func (m model) View() string {
	panel := panelStyle.Render(braille(m.sys.Screen()))
	return lipgloss.JoinVertical(lipgloss.Left, panel, m.statusLine(), m.help.View(m.keys))
}

func (m model) statusLine() string {
	if m.err != nil {
		return faultStyle.Render(m.err.Error())
	}
	st := m.sys.Status()
	line := statusStyle.Render(statusText(st))
	if !st.Sampling {
		line = pausedStyle.Render("PAUSED") + " " + line
	}
	return line
}

func statusText(st app.Status) string {
	s := fmt.Sprintf("n=%d  range=[%s, %s]  data=[%s, %s]  period=%s",
		st.Samples, fmtFloat(st.Min), fmtFloat(st.Max), fmtFloat(st.DataMin), fmtFloat(st.DataMax), st.Period)
	if st.Pointer {
		s += "  pointer=-" + strconv.Itoa(int(st.PointerIndex))
	}
	if st.Manual {
		s += "  manual"
	}
	return s
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

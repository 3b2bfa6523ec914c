// Command tracetui runs the tracegraph scope in a terminal, drawing the
// monochrome panel with braille cells.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tracegraph/app"
	"tracegraph/hal"
	"tracegraph/internal/buildinfo"
	"tracegraph/source"
)

var (
	cfg     = app.DefaultConfig()
	fps     int
	logPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tracetui",
		Short:   "Scrolling sample charts in the terminal",
		Version: buildinfo.String(),
		Long: `tracetui feeds one or two sample sources into scrolling charts and
renders the 128x64 panel as braille. Sources: ` + strings.Join(source.Names(), ", ") + `.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	f := rootCmd.Flags()
	f.StringVarP(&cfg.Source, "source", "s", cfg.Source, "Float chart source")
	f.StringVar(&cfg.IntSource, "int-source", cfg.IntSource, "Integer chart source; empty hides the chart")
	f.Uint32VarP(&cfg.IntervalMs, "interval", "i", cfg.IntervalMs, "Minimum milliseconds between samples (0 = every frame)")
	f.Int16Var(&cfg.Step, "step", cfg.Step, "Pixels the trace scrolls per sample")
	f.BoolVarP(&cfg.Dotted, "dotted", "d", cfg.Dotted, "Draw samples as dots")
	f.BoolVar(&cfg.NoAxis, "no-axis", cfg.NoAxis, "Hide the time axis")
	f.BoolVar(&cfg.Pointer, "pointer", cfg.Pointer, "Show the value tooltip")
	f.Uint16Var(&cfg.PointerIndex, "pointer-index", cfg.PointerIndex, "Tooltip position in samples back from the newest")
	f.BoolVar(&cfg.ManualRange, "manual", cfg.ManualRange, "Use --min/--max instead of auto-ranging")
	f.Float64Var(&cfg.RangeMin, "min", cfg.RangeMin, "Manual range minimum")
	f.Float64Var(&cfg.RangeMax, "max", cfg.RangeMax, "Manual range maximum")
	f.BoolVar(&cfg.SyncRange, "sync", cfg.SyncRange, "Pin the integer chart to the float chart's range")
	f.IntVar(&cfg.LogEvery, "log-every", cfg.LogEvery, "Log a status line every N samples (0 = never)")
	f.IntVar(&fps, "fps", 30, "Frames per second")
	f.StringVar(&logPath, "log", "", "Log file (default: a temp file)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if fps <= 0 || fps > 1000 {
		return fmt.Errorf("invalid fps: %d", fps)
	}

	// Log lines go to a file so they do not tear the TUI.
	var logw io.Writer = io.Discard
	var logFile *os.File
	var err error
	if logPath != "" {
		logFile, err = os.Create(logPath)
	} else {
		logFile, err = os.CreateTemp("", "tracetui-*.log")
	}
	if err == nil {
		logw = logFile
		defer logFile.Close()
	}

	sys, err := app.NewSystem(terminalHAL{hal.NewWithLog(logw)}, cfg)
	if err != nil {
		return err
	}

	prog := tea.NewProgram(newModel(sys, time.Second/time.Duration(fps)), tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}

// terminalHAL is the host HAL without its window: the model draws the panel
// and delivers keys itself.
type terminalHAL struct{ hal.HAL }

func (terminalHAL) Display() hal.Display { return nil }
func (terminalHAL) Input() hal.Input     { return nil }

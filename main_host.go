//go:build !tinygo

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	flag "github.com/spf13/pflag"

	"tracegraph/app"
	"tracegraph/hal"
	"tracegraph/internal/buildinfo"
	"tracegraph/source"
)

func main() {
	var hcfg hal.HeadlessConfig
	cfg := app.DefaultConfig()
	var version bool

	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")

	flag.StringVarP(&cfg.Source, "source", "s", cfg.Source, "Float chart source: "+strings.Join(source.Names(), ", ")+".")
	flag.StringVar(&cfg.IntSource, "int-source", cfg.IntSource, "Integer chart source; empty hides the chart.")
	flag.Uint32VarP(&cfg.IntervalMs, "interval", "i", cfg.IntervalMs, "Minimum milliseconds between samples (0 = every frame).")
	flag.Int16Var(&cfg.Step, "step", cfg.Step, "Pixels the trace scrolls per sample.")
	flag.BoolVarP(&cfg.Dotted, "dotted", "d", cfg.Dotted, "Draw samples as dots instead of lines.")
	flag.BoolVar(&cfg.NoAxis, "no-axis", cfg.NoAxis, "Hide the time axis.")
	flag.BoolVar(&cfg.Pointer, "pointer", cfg.Pointer, "Show the value tooltip.")
	flag.Uint16Var(&cfg.PointerIndex, "pointer-index", cfg.PointerIndex, "Tooltip position in samples back from the newest.")
	flag.BoolVar(&cfg.ManualRange, "manual", cfg.ManualRange, "Use --min/--max instead of auto-ranging.")
	flag.Float64Var(&cfg.RangeMin, "min", cfg.RangeMin, "Manual range minimum.")
	flag.Float64Var(&cfg.RangeMax, "max", cfg.RangeMax, "Manual range maximum.")
	flag.BoolVar(&cfg.SyncRange, "sync", cfg.SyncRange, "Pin the integer chart to the float chart's range.")
	flag.IntVar(&cfg.LogEvery, "log-every", cfg.LogEvery, "Log a status line every N samples (0 = never).")
	flag.BoolVar(&version, "version", false, "Print the build stamp and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var log bytes.Buffer
	steps := 0
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		h.Logger().WriteLineString("hello")
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 5, Log: &log})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("expected 5 steps, got %d", steps)
	}
	if !strings.Contains(log.String(), "hello") {
		t.Fatalf("expected log output, got %q", log.String())
	}
}

func TestRunHeadlessPropagatesStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000, Log: &bytes.Buffer{}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{Log: &bytes.Buffer{}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

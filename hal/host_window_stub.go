//go:build !tinygo && !cgo

package hal

import "errors"

// RunWindow reports that the desktop window is unavailable in this build.
func RunWindow(_ func(h HAL) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), or use --headless")
}

//go:build !tinygo && !cgo

package hal

// hostKeyboard has no key source without the window backend: Events is nil.
type hostKeyboard struct{}

func newHostKeyboard() *hostKeyboard { return &hostKeyboard{} }

func (k *hostKeyboard) Events() <-chan KeyEvent { return nil }

func (k *hostKeyboard) poll() {}

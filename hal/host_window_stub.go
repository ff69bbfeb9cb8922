//go:build !tinygo && !cgo

package hal

// RunWindow needs ebiten, which needs cgo. Callers can fall back to
// RunTerminal or RunHeadless.
func RunWindow(newApp func(HAL) func() error) error {
	return ErrNoWindow
}

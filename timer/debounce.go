package timer

import "time"

// DefaultDebounce is the minimum gap between two accepted button presses.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer is one clock shared by every button: an accepted press of any
// button suppresses presses of all buttons for the window.
type Debouncer struct {
	window time.Duration
	last   time.Time
	seen   bool
}

// NewDebouncer returns a debouncer. A non-positive window uses DefaultDebounce.
func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Accept reports whether a press seen at now is accepted, and if so restarts
// the window.
func (d *Debouncer) Accept(pressed bool, now time.Time) bool {
	if !pressed {
		return false
	}
	if d.seen && now.Sub(d.last) <= d.window {
		return false
	}
	d.last = now
	d.seen = true
	return true
}

//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// hostTime is either the wall clock or a virtual clock that only moves when
// the runner advances it.
type hostTime struct {
	mu      sync.Mutex
	virtual bool
	now     time.Time
}

func newHostTime() *hostTime {
	return &hostTime{}
}

func newVirtualTime(start time.Time) *hostTime {
	return &hostTime{virtual: true, now: start}
}

func (t *hostTime) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.virtual {
		return time.Now()
	}
	return t.now
}

// advance moves a virtual clock forward. It is a no-op on the wall clock.
func (t *hostTime) advance(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.virtual {
		t.now = t.now.Add(d)
	}
}

// elapsed reports how far a virtual clock has moved since start.
func (t *hostTime) elapsed(start time.Time) time.Duration {
	return t.Now().Sub(start)
}

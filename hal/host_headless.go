//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64

	// Script replays inputs against the virtual clock.
	Script *Script

	// Fast runs ticks back to back instead of pacing them in real time.
	// The virtual clock advances by the same amount either way.
	Fast bool

	// Out receives log lines and LCD frames. Defaults to stdout.
	Out io.Writer
}

// RunHeadless runs the timer without opening a window. Each tick advances a
// virtual clock by 1/Hz, fires due script events, steps the app and logs the
// LCD whenever it changed.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 100
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newHostHAL(cfg.Out, newVirtualTime(start))
	step := newApp(h)

	var pace <-chan time.Time
	if !cfg.Fast {
		t := time.NewTicker(d)
		defer t.Stop()
		pace = t.C
	}

	var (
		tick   uint64
		last   lcdFrame
		logged bool
	)
	for {
		if pace != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-pace:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		h.t.advance(d)
		elapsed := h.t.elapsed(start)
		cfg.Script.apply(elapsed, h.encoder, h.buttons)

		if step != nil {
			if err := step(); err != nil {
				return err
			}
		}

		if frame := h.lcd.snapshot(); !logged || frame != last {
			last, logged = frame, true
			h.logger.WriteLineString(fmt.Sprintf("[%8.3fs] |%s|%s|",
				elapsed.Seconds(), frame.printable(0), frame.printable(1)))
		}

		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}

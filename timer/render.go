package timer

import (
	"fmt"
	"math"
	"strings"
)

//go:generate mockgen -source=render.go -destination=mock_display_test.go -package=timer

// Display is a cursor-addressed character display.
type Display interface {
	Clear()
	SetCursor(col, row int)
	Write(text string)
	SetBacklight(r, g, b uint8)
}

const (
	Cols = 16
	Rows = 2

	// BlockChar is the full-cell glyph in the HD44780 character ROM.
	BlockChar byte = 0xFF

	valueCol   = 10
	valueWidth = Cols - valueCol
)

// Renderer draws the state onto the display, touching only what changed
// since the previous render.
type Renderer struct {
	snap  State
	valid bool
}

// NewRenderer returns a renderer whose first Render draws everything.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Invalidate forces the next Render to redraw the whole screen.
func (r *Renderer) Invalidate() {
	r.valid = false
}

// Render updates lcd and reports whether anything was written.
func (r *Renderer) Render(s *State, lcd Display) bool {
	full := !r.valid || r.snap.Mode != s.Mode
	var wrote bool
	switch s.Mode {
	case ModeExpose:
		wrote = r.renderExpose(s, lcd, full)
	case ModeBurn:
		wrote = r.renderBurn(s, lcd, full)
	case ModeTest:
		wrote = r.renderTest(s, lcd, full)
	case ModeFocus:
		if full {
			lcd.Clear()
			writeAt(lcd, 0, 0, "    In focus    ")
			wrote = true
		}
	case ModeRun:
		if full || r.snap.RunRemainingSec != s.RunRemainingSec {
			lcd.Clear()
			writeHeader(lcd, s.Mode, seconds(s.RunRemainingSec))
			writeAt(lcd, 0, 1, progressBar(s.RunRemaining, s.RunDuration))
			wrote = true
		}
	case ModePaused:
		if full || r.snap.RunRemainingSec != s.RunRemainingSec {
			lcd.Clear()
			writeHeader(lcd, s.Mode, seconds(s.RunRemainingSec))
			wrote = true
		}
	}
	if wrote {
		r.snap = *s
		r.valid = true
	}
	return wrote
}

func (r *Renderer) renderExpose(s *State, lcd Display, full bool) bool {
	p := &r.snap
	baseChanged := full || p.Base != s.Base
	stopsChanged := full || p.Stops != s.Stops
	if !baseChanged && !stopsChanged {
		return false
	}
	if full {
		lcd.Clear()
	}
	writeHeader(lcd, s.Mode, seconds(ExposureDuration(s.Base, s.Stops)))
	if baseChanged {
		writeBase(lcd, s.Base)
	}
	if stopsChanged {
		writeRight(lcd, 1, signed(s.Stops))
	}
	return true
}

func (r *Renderer) renderBurn(s *State, lcd Display, full bool) bool {
	p := &r.snap
	baseChanged := full || p.Base != s.Base
	burnChanged := full || p.Burn != s.Burn
	if !baseChanged && !burnChanged {
		return false
	}
	if full {
		lcd.Clear()
	}
	writeHeader(lcd, s.Mode, seconds(BurnDuration(s.Base, s.Burn)))
	if baseChanged {
		writeBase(lcd, s.Base)
	}
	if burnChanged {
		writeRight(lcd, 1, fmt.Sprintf("+%.1f", s.Burn))
	}
	return true
}

func (r *Renderer) renderTest(s *State, lcd Display, full bool) bool {
	p := &r.snap
	durChanged := full || p.Base != s.Base || p.Steps != s.Steps || p.Interval != s.Interval || p.Step != s.Step
	stepChanged := full || p.Step != s.Step || p.Steps != s.Steps || p.StepsMod != s.StepsMod
	intervalChanged := full || p.Interval != s.Interval || p.StepsMod != s.StepsMod || p.Step != s.Step
	if !durChanged && !stepChanged && !intervalChanged {
		return false
	}
	if full {
		lcd.Clear()
	}
	idle := s.Step == 0
	if durChanged {
		writeHeader(lcd, s.Mode, seconds(TestStepDuration(s.Base, s.Steps, s.Interval, s.Step)))
	}
	if stepChanged {
		text := fmt.Sprintf("%d/%d", s.Step, s.Steps)
		if s.StepsMod && idle {
			text += "<-"
		}
		writeAt(lcd, 0, 1, pad(text, valueCol))
	}
	if intervalChanged {
		text := fmt.Sprintf("%.1f", s.Interval)
		if !s.StepsMod && idle {
			text = "->" + text
		}
		writeRight(lcd, 1, text)
	}
	return true
}

// writeHeader rewrites the whole top row: the mode name on the left and the
// value right-aligned. A value too wide for both hides the name.
func writeHeader(lcd Display, m Mode, value string) {
	title := m.String()
	if len(title)+1+len(value) > Cols {
		title = ""
	}
	writeAt(lcd, 0, 0, title+fmt.Sprintf("%*s", Cols-len(title), value))
}

func writeBase(lcd Display, base float64) {
	writeAt(lcd, 0, 1, pad(seconds(base), valueCol))
}

func writeAt(lcd Display, col, row int, text string) {
	if len(text) > Cols-col {
		text = text[:Cols-col]
	}
	lcd.SetCursor(col, row)
	lcd.Write(text)
}

// writeRight right-aligns text in the value column; longer values grow to the left.
func writeRight(lcd Display, row int, text string) {
	col := valueCol
	if len(text) > valueWidth {
		col = Cols - len(text)
		if col < 0 {
			col = 0
		}
	}
	writeAt(lcd, col, row, fmt.Sprintf("%*s", Cols-col, text))
}

func pad(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}
	return text + strings.Repeat(" ", width-len(text))
}

func seconds(v float64) string {
	return fmt.Sprintf("%.1fs", round1(v))
}

func signed(v float64) string {
	v = round1(v)
	if v >= 0 {
		return fmt.Sprintf("+%.1f", math.Abs(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func progressBar(remaining, duration int64) string {
	if duration <= 0 || remaining <= 0 {
		return ""
	}
	n := int(math.Round(float64(Cols) * float64(remaining) / float64(duration)))
	if n > Cols {
		n = Cols
	}
	return strings.Repeat(string([]byte{BlockChar}), n)
}

package hal

import "time"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction. The enlarger lamp relay is driven
// through it.
type LED interface {
	High()
	Low()
}

// CharDisplay is a 16x2 character LCD with an RGB backlight.
//
// Columns are 0..15 and rows 0..1. Text is written as raw character ROM bytes
// starting at the cursor. Failures are not reported.
type CharDisplay interface {
	Clear()
	SetCursor(col, row int)
	Write(text string)
	SetBacklight(r, g, b uint8)
}

// Encoder is a rotary encoder with a bounded position.
type Encoder interface {
	Position() int
	Reset()
}

// Encoder bounds.
const (
	EncoderMin = -99
	EncoderMax = 99
)

// ButtonID names one of the front panel buttons.
type ButtonID uint8

const (
	ButtonMode ButtonID = iota
	ButtonSet
	ButtonFocus
	ButtonRun
	buttonCount
)

func (id ButtonID) String() string {
	switch id {
	case ButtonMode:
		return "mode"
	case ButtonSet:
		return "set"
	case ButtonFocus:
		return "focus"
	case ButtonRun:
		return "run"
	default:
		return "unknown"
	}
}

// Button reports the raw (not debounced) level of a push button.
type Button interface {
	Pressed() bool
}

// Buttons provides the front panel buttons.
type Buttons interface {
	Button(id ButtonID) Button
}

// LightSensor samples the light falling on the easel, 0..1.
type LightSensor interface {
	Sample() float64
}

// Time provides the wall clock used for countdowns.
type Time interface {
	Now() time.Time
}

// HAL provides the only contact point between the timer and the outside world.
type HAL interface {
	Logger() Logger
	Lamp() LED
	Display() CharDisplay
	Encoder() Encoder
	Buttons() Buttons
	LightSensor() LightSensor
	Time() Time
}

type nullButton struct{}

func (nullButton) Pressed() bool { return false }

func clampPosition(p int) int {
	if p < EncoderMin {
		return EncoderMin
	}
	if p > EncoderMax {
		return EncoderMax
	}
	return p
}

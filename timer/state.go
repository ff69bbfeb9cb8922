// Package timer holds the enlarger timer core: the mode state machine, the
// exposure calculators, the encoder-to-field mapping, the countdown and the
// 16x2 display renderer. It has no hardware dependencies; the caller feeds it
// one Input sample per poll cycle.
package timer

import "time"

// Mode is the operating mode of the timer.
type Mode uint8

const (
	ModeExpose Mode = iota
	ModeBurn
	ModeTest
	ModeFocus
	ModeRun
	ModePaused
)

func (m Mode) String() string {
	switch m {
	case ModeExpose:
		return "Expose"
	case ModeBurn:
		return "Burn"
	case ModeTest:
		return "Test"
	case ModeFocus:
		return "Focus"
	case ModeRun:
		return "Run"
	case ModePaused:
		return "Paused"
	default:
		return "unknown"
	}
}

// Field limits.
const (
	MinBurn     = 0.1
	MinInterval = 0.1
	MinSteps    = 3
	MaxSteps    = 21
)

// State is the single mutable aggregate of the timer.
type State struct {
	Mode     Mode
	ModePrev Mode
	HasPrev  bool

	Base     float64 // seconds
	Stops    float64
	Burn     float64
	Steps    int
	Interval float64
	StepsMod bool
	Step     int

	RunDuration     int64 // milliseconds
	RunRemaining    int64 // milliseconds
	RunRemainingSec float64
	RunStart        time.Time

	Sample float64
}

// Defaults seeds a new State.
type Defaults struct {
	Base     float64
	Burn     float64
	Steps    int
	Interval float64
}

// DefaultDefaults returns the power-on values.
func DefaultDefaults() Defaults {
	return Defaults{
		Base:     16.0,
		Burn:     MinBurn,
		Steps:    7,
		Interval: 0.5,
	}
}

// Normalize pulls out-of-range values back into range the same way the
// editor does.
func (d Defaults) Normalize() Defaults {
	if d.Base < 0 {
		d.Base = 0
	}
	d.Burn = clampMin(round1(d.Burn), MinBurn)
	d.Steps = ClampSteps(d.Steps)
	d.Interval = clampMin(round1(d.Interval), MinInterval)
	return d
}

// NewState returns the initial state in Expose mode with normalized defaults.
func NewState(d Defaults) *State {
	d = d.Normalize()
	return &State{
		Mode:     ModeExpose,
		Base:     d.Base,
		Burn:     d.Burn,
		Steps:    d.Steps,
		Interval: d.Interval,
	}
}

// ClampSteps returns the nearest valid strip count: odd and within [3,21].
func ClampSteps(n int) int {
	if n < MinSteps {
		return MinSteps
	}
	if n > MaxSteps {
		return MaxSteps
	}
	if n%2 == 0 {
		n--
	}
	return n
}

func (s *State) enter(m Mode) {
	s.ModePrev = s.Mode
	s.HasPrev = true
	s.Mode = m
}

// restore returns to the saved mode. With nothing saved it falls back to Expose.
func (s *State) restore() {
	if s.HasPrev {
		s.Mode = s.ModePrev
	} else {
		s.Mode = ModeExpose
	}
	s.ModePrev = ModeExpose
	s.HasPrev = false
}

package timer

import (
	"math"
	"time"
)

// OnModeButton cycles Expose -> Burn -> Test -> Expose.
func OnModeButton(s *State) {
	switch s.Mode {
	case ModeExpose:
		s.Mode = ModeBurn
	case ModeBurn:
		s.Mode = ModeTest
	case ModeTest:
		s.Mode = ModeExpose
	}
}

// OnSetButton commits or resets the field of the current mode.
func OnSetButton(s *State) {
	switch s.Mode {
	case ModeExpose:
		s.Base = ExposureDuration(s.Base, s.Stops)
		s.Stops = 0
	case ModeBurn:
		s.Burn = MinBurn
	case ModeTest:
		if s.Step == 0 {
			s.StepsMod = !s.StepsMod
		} else {
			s.Step = 0
		}
	}
}

// OnFocusButton toggles focus mode. From Run or Paused it aborts the exposure
// and any test sequence.
func OnFocusButton(s *State) {
	switch s.Mode {
	case ModeFocus:
		s.restore()
	case ModeRun, ModePaused:
		s.restore()
		s.Step = 0
	case ModeTest:
		if s.Step > 0 {
			s.Step = 0
			return
		}
		s.enter(ModeFocus)
	default:
		s.enter(ModeFocus)
	}
}

// OnRunButton starts, pauses or resumes an exposure.
func OnRunButton(s *State, now time.Time) {
	switch s.Mode {
	case ModeRun:
		s.Mode = ModePaused
	case ModePaused:
		s.Mode = ModeRun
		s.RunStart = now
	case ModeExpose, ModeBurn, ModeTest:
		var secs float64
		switch s.Mode {
		case ModeExpose:
			secs = ExposureDuration(s.Base, s.Stops)
		case ModeBurn:
			secs = BurnDuration(s.Base, s.Burn)
		case ModeTest:
			secs = TestStepDuration(s.Base, s.Steps, s.Interval, s.Step)
			s.Step++
		}
		s.enter(ModeRun)
		s.RunStart = now
		s.RunDuration = millis(secs)
		s.RunRemaining = s.RunDuration
		s.RunRemainingSec = round1(float64(s.RunRemaining) / 1000)
	}
}

func millis(secs float64) int64 {
	ms := math.Round(secs * 1000)
	if ms < 0 {
		return 0
	}
	return int64(ms)
}

package timer

import "time"

// Tick advances the countdown while in Run mode. It reports whether the
// exposure finished on this tick.
//
// Each call counts the whole milliseconds since the previous one and moves
// RunStart forward by exactly that much, so sub-millisecond remainders carry
// over to the next tick instead of being dropped.
func Tick(s *State, now time.Time) bool {
	if s.Mode != ModeRun {
		return false
	}
	ms := now.Sub(s.RunStart).Milliseconds()
	remaining := s.RunRemaining - ms
	if remaining <= 0 {
		s.restore()
		s.RunRemaining = 0
		s.RunRemainingSec = 0
		if s.Mode == ModeTest && s.Step == s.Steps {
			s.Step = 0
		}
		return true
	}
	s.RunRemaining = remaining
	s.RunRemainingSec = round1(float64(remaining) / 1000)
	s.RunStart = s.RunStart.Add(time.Duration(ms) * time.Millisecond)
	return false
}

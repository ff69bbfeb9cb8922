package timer

const (
	encoderStep   = 0.1
	stepsJumpFrom = 15
)

// Editor maps rotary encoder movement onto the field that is editable in the
// current mode.
type Editor struct {
	last int
}

// NewEditor returns an editor whose reference point is position.
func NewEditor(position int) *Editor {
	return &Editor{last: position}
}

// Poll applies the movement since the previous poll. It reports whether the
// position changed.
func (e *Editor) Poll(s *State, position int) bool {
	delta := position - e.last
	if delta == 0 {
		return false
	}
	ApplyDelta(s, position, delta)
	e.last = position
	return true
}

// Reset moves the reference point without touching the state.
func (e *Editor) Reset(position int) {
	e.last = position
}

// ApplyDelta mutates the active field. Burn and Test accumulate delta; every
// other case sets Stops from the absolute position.
func ApplyDelta(s *State, position, delta int) {
	if delta == 0 {
		return
	}
	switch {
	case s.Mode == ModeBurn:
		s.Burn = clampMin(round1(s.Burn+float64(delta)*encoderStep), MinBurn)
	case s.Mode == ModeTest && s.Step == 0:
		if s.StepsMod {
			s.Steps = turnSteps(s.Steps, delta)
		} else {
			s.Interval = clampMin(round1(s.Interval+float64(delta)*encoderStep), MinInterval)
		}
	default:
		s.Stops = round1(float64(position) * encoderStep)
	}
}

func turnSteps(steps, delta int) int {
	for ; delta > 0; delta-- {
		next := steps + 2
		if steps <= stepsJumpFrom && next > stepsJumpFrom {
			next = MaxSteps
		}
		if next > MaxSteps {
			next = MaxSteps
		}
		steps = next
	}
	for ; delta < 0; delta++ {
		steps -= 2
		if steps < MinSteps {
			steps = MinSteps
		}
	}
	return steps
}

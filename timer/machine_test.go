package timer

import (
	"testing"
	"time"
)

func TestOnModeButtonCycle(t *testing.T) {
	s := NewState(DefaultDefaults())
	want := []Mode{ModeBurn, ModeTest, ModeExpose}
	for i, w := range want {
		OnModeButton(s)
		if s.Mode != w {
			t.Fatalf("press %d: Mode = %v, want %v", i+1, s.Mode, w)
		}
	}

	for _, m := range []Mode{ModeFocus, ModeRun, ModePaused} {
		s.Mode = m
		OnModeButton(s)
		if s.Mode != m {
			t.Fatalf("OnModeButton in %v moved to %v", m, s.Mode)
		}
	}
}

func TestOnSetButtonCommitsExposure(t *testing.T) {
	s := NewState(DefaultDefaults())
	s.Stops = -1

	OnSetButton(s)
	if s.Base != 8 {
		t.Fatalf("Base = %v, want 8", s.Base)
	}
	if s.Stops != 0 {
		t.Fatalf("Stops = %v, want 0", s.Stops)
	}
}

func TestOnSetButtonBurnAndTest(t *testing.T) {
	s := NewState(DefaultDefaults())
	s.Mode = ModeBurn
	s.Burn = 2.3
	OnSetButton(s)
	if s.Burn != MinBurn {
		t.Fatalf("Burn = %v, want %v", s.Burn, MinBurn)
	}

	s.Mode = ModeTest
	OnSetButton(s)
	if !s.StepsMod {
		t.Fatal("StepsMod = false, want true")
	}
	OnSetButton(s)
	if s.StepsMod {
		t.Fatal("StepsMod = true, want false")
	}

	s.Step = 3
	OnSetButton(s)
	if s.Step != 0 || s.StepsMod {
		t.Fatalf("Step = %d StepsMod = %v, want 0 false", s.Step, s.StepsMod)
	}
}

func TestOnSetButtonIgnoredWhileBusy(t *testing.T) {
	for _, m := range []Mode{ModeFocus, ModeRun, ModePaused} {
		s := NewState(DefaultDefaults())
		s.Mode = m
		s.Stops = 1
		before := *s
		OnSetButton(s)
		if *s != before {
			t.Fatalf("OnSetButton in %v changed state", m)
		}
	}
}

func TestFocusRoundTripRestoresState(t *testing.T) {
	for _, m := range []Mode{ModeExpose, ModeBurn, ModeTest} {
		s := NewState(DefaultDefaults())
		s.Mode = m
		s.Stops = -0.7
		s.Burn = 1.4
		s.Interval = 0.3
		s.Steps = 11
		before := *s

		OnFocusButton(s)
		if s.Mode != ModeFocus {
			t.Fatalf("from %v: Mode = %v, want Focus", m, s.Mode)
		}
		if !s.HasPrev || s.ModePrev != m {
			t.Fatalf("from %v: ModePrev = %v (set %v)", m, s.ModePrev, s.HasPrev)
		}

		OnFocusButton(s)
		if *s != before {
			t.Fatalf("from %v: state after focus round trip = %+v, want %+v", m, *s, before)
		}
	}
}

func TestOnFocusButtonCancelsTestSequence(t *testing.T) {
	s := NewState(DefaultDefaults())
	s.Mode = ModeTest
	s.Step = 2

	OnFocusButton(s)
	if s.Mode != ModeTest {
		t.Fatalf("Mode = %v, want Test", s.Mode)
	}
	if s.Step != 0 {
		t.Fatalf("Step = %d, want 0", s.Step)
	}
	if s.HasPrev {
		t.Fatal("ModePrev set without entering Focus")
	}
}

func TestOnFocusButtonAbortsRun(t *testing.T) {
	now := time.Unix(100, 0)
	s := NewState(DefaultDefaults())
	s.Mode = ModeTest
	OnRunButton(s, now)
	if s.Step != 1 {
		t.Fatalf("Step = %d, want 1", s.Step)
	}
	OnRunButton(s, now.Add(time.Second))
	if s.Mode != ModePaused {
		t.Fatalf("Mode = %v, want Paused", s.Mode)
	}

	OnFocusButton(s)
	if s.Mode != ModeTest {
		t.Fatalf("Mode = %v, want Test", s.Mode)
	}
	if s.Step != 0 {
		t.Fatalf("Step = %d, want 0", s.Step)
	}
	if s.HasPrev {
		t.Fatal("ModePrev still set after restore")
	}
}

func TestOnRunButtonDurations(t *testing.T) {
	now := time.Unix(100, 0)

	s := NewState(DefaultDefaults())
	OnRunButton(s, now)
	if s.Mode != ModeRun || s.ModePrev != ModeExpose {
		t.Fatalf("Mode = %v prev %v, want Run prev Expose", s.Mode, s.ModePrev)
	}
	if s.RunDuration != 16000 || s.RunRemaining != 16000 {
		t.Fatalf("RunDuration = %d RunRemaining = %d, want 16000", s.RunDuration, s.RunRemaining)
	}
	if !s.RunStart.Equal(now) {
		t.Fatalf("RunStart = %v, want %v", s.RunStart, now)
	}

	s = NewState(DefaultDefaults())
	s.Mode = ModeBurn
	s.Burn = 1
	OnRunButton(s, now)
	if s.RunDuration != 16000 {
		t.Fatalf("burn RunDuration = %d, want 16000", s.RunDuration)
	}

	s = NewState(DefaultDefaults())
	s.Mode = ModeTest
	s.Steps = 5
	s.Interval = 1
	OnRunButton(s, now)
	if s.RunDuration != 4000 {
		t.Fatalf("test RunDuration = %d, want 4000", s.RunDuration)
	}
	if s.Step != 1 {
		t.Fatalf("Step = %d, want 1", s.Step)
	}
}

func TestOnRunButtonPauseResume(t *testing.T) {
	start := time.Unix(100, 0)
	s := NewState(DefaultDefaults())
	OnRunButton(s, start)

	Tick(s, start.Add(2*time.Second))
	OnRunButton(s, start.Add(2*time.Second))
	if s.Mode != ModePaused {
		t.Fatalf("Mode = %v, want Paused", s.Mode)
	}
	if !s.RunStart.Equal(start.Add(2 * time.Second)) {
		t.Fatalf("pause moved RunStart to %v", s.RunStart)
	}

	// Time spent paused must not count.
	Tick(s, start.Add(60*time.Second))
	resume := start.Add(60 * time.Second)
	OnRunButton(s, resume)
	if s.Mode != ModeRun {
		t.Fatalf("Mode = %v, want Run", s.Mode)
	}
	if !s.RunStart.Equal(resume) {
		t.Fatalf("RunStart = %v, want %v", s.RunStart, resume)
	}
	Tick(s, resume.Add(time.Second))
	if s.RunRemaining != 13000 {
		t.Fatalf("RunRemaining = %d, want 13000", s.RunRemaining)
	}
	if s.ModePrev != ModeExpose {
		t.Fatalf("ModePrev = %v, want Expose", s.ModePrev)
	}
}

func TestOnRunButtonIgnoredInFocus(t *testing.T) {
	s := NewState(DefaultDefaults())
	OnFocusButton(s)
	OnRunButton(s, time.Unix(1, 0))
	if s.Mode != ModeFocus {
		t.Fatalf("Mode = %v, want Focus", s.Mode)
	}
	if s.RunDuration != 0 {
		t.Fatalf("RunDuration = %d, want 0", s.RunDuration)
	}
}

package timer

import "testing"

func TestDefaultsNormalize(t *testing.T) {
	got := Defaults{Base: -4, Burn: 0.04, Steps: 8, Interval: 0}.Normalize()
	want := Defaults{Base: 0, Burn: MinBurn, Steps: 7, Interval: MinInterval}
	if got != want {
		t.Fatalf("Normalize() = %+v, want %+v", got, want)
	}

	if got := (Defaults{Steps: 40}).Normalize().Steps; got != MaxSteps {
		t.Fatalf("Normalize().Steps = %d, want %d", got, MaxSteps)
	}
	if d := DefaultDefaults(); d.Normalize() != d {
		t.Fatalf("DefaultDefaults() not normalized: %+v", d)
	}
}

func TestNewStateStartsInExpose(t *testing.T) {
	s := NewState(Defaults{Base: 8, Burn: 0.26, Steps: 2, Interval: 0.33})
	if s.Mode != ModeExpose || s.HasPrev {
		t.Fatalf("Mode = %v, HasPrev = %v, want Expose without a saved mode", s.Mode, s.HasPrev)
	}
	if s.Base != 8 || s.Burn != 0.3 || s.Steps != MinSteps || s.Interval != 0.3 {
		t.Fatalf("NewState() = %+v", s)
	}
}

func TestModeString(t *testing.T) {
	names := map[Mode]string{
		ModeExpose: "Expose",
		ModeBurn:   "Burn",
		ModeTest:   "Test",
		ModeFocus:  "Focus",
		ModeRun:    "Run",
		ModePaused: "Paused",
	}
	for m, want := range names {
		if got := m.String(); got != want {
			t.Fatalf("Mode(%d).String() = %q, want %q", m, got, want)
		}
	}
}

func TestRestoreWithoutSavedModeFallsBackToExpose(t *testing.T) {
	s := NewState(DefaultDefaults())
	s.Mode = ModeRun
	s.restore()
	if s.Mode != ModeExpose {
		t.Fatalf("Mode = %v, want Expose", s.Mode)
	}
}

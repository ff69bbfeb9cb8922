package app

import (
	"strings"
	"testing"
	"time"

	"enlarger/hal"
	"enlarger/timer"
)

type fakeLCD struct {
	cells     [timer.Rows][timer.Cols]byte
	col, row  int
	backlight RGB
}

func newFakeLCD() *fakeLCD {
	l := &fakeLCD{}
	l.Clear()
	return l
}

func (l *fakeLCD) Clear() {
	for r := range l.cells {
		for c := range l.cells[r] {
			l.cells[r][c] = ' '
		}
	}
	l.col, l.row = 0, 0
}

func (l *fakeLCD) SetCursor(col, row int) { l.col, l.row = col, row }

func (l *fakeLCD) Write(text string) {
	for i := 0; i < len(text) && l.col < timer.Cols; i++ {
		l.cells[l.row][l.col] = text[i]
		l.col++
	}
}

func (l *fakeLCD) SetBacklight(r, g, b uint8) { l.backlight = RGB{r, g, b} }

func (l *fakeLCD) line(row int) string { return string(l.cells[row][:]) }

type fakeButton struct {
	pressed bool
	panics  bool
}

func (b *fakeButton) Pressed() bool {
	if b.panics {
		panic("button wiring")
	}
	p := b.pressed
	b.pressed = false
	return p
}

type fakeButtons map[hal.ButtonID]*fakeButton

func (bs fakeButtons) Button(id hal.ButtonID) hal.Button { return bs[id] }

type fakeEncoder struct{ pos int }

func (e *fakeEncoder) Position() int { return e.pos }
func (e *fakeEncoder) Reset()        { e.pos = 0 }

type fakeLamp struct{ on bool }

func (l *fakeLamp) High() { l.on = true }
func (l *fakeLamp) Low()  { l.on = false }

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type constSensor float64

func (s constSensor) Sample() float64 { return float64(s) }

type fakeHAL struct {
	lcd     *fakeLCD
	lamp    *fakeLamp
	enc     *fakeEncoder
	buttons fakeButtons
	clock   *fakeClock
	log     *lineLog
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		lcd:  newFakeLCD(),
		lamp: &fakeLamp{},
		enc:  &fakeEncoder{},
		buttons: fakeButtons{
			hal.ButtonMode:  {},
			hal.ButtonSet:   {},
			hal.ButtonFocus: {},
			hal.ButtonRun:   {},
		},
		clock: &fakeClock{now: time.Unix(1000, 0)},
		log:   &lineLog{},
	}
}

func (h *fakeHAL) Logger() hal.Logger           { return h.log }
func (h *fakeHAL) Lamp() hal.LED                { return h.lamp }
func (h *fakeHAL) Display() hal.CharDisplay     { return h.lcd }
func (h *fakeHAL) Encoder() hal.Encoder         { return h.enc }
func (h *fakeHAL) Buttons() hal.Buttons         { return h.buttons }
func (h *fakeHAL) LightSensor() hal.LightSensor { return constSensor(0.25) }
func (h *fakeHAL) Time() hal.Time               { return h.clock }

func (h *fakeHAL) advance(d time.Duration) { h.clock.now = h.clock.now.Add(d) }

func TestSplashThenExpose(t *testing.T) {
	h := newFakeHAL()
	step := New(h, DefaultConfig())

	if err := step(); err != nil {
		t.Fatalf("step() error = %v", err)
	}
	if got, want := h.lcd.line(0), "  V21 Enlarger  "; got != want {
		t.Fatalf("splash line 0 = %q, want %q", got, want)
	}
	if h.lcd.backlight != (RGB{R: 255}) {
		t.Fatalf("backlight = %+v, want red", h.lcd.backlight)
	}

	// Turns and presses during the splash are ignored.
	h.enc.pos = 3
	h.advance(500 * time.Millisecond)
	step()
	if got := h.lcd.line(1); got != "     Timer      " {
		t.Fatalf("splash line 1 = %q", got)
	}

	h.advance(500 * time.Millisecond)
	step()
	if got, want := h.lcd.line(0), "Expose     16.0s"; got != want {
		t.Fatalf("line 0 = %q, want %q", got, want)
	}
	if got, want := h.lcd.line(1), "16.0s       +0.0"; got != want {
		t.Fatalf("line 1 = %q, want %q", got, want)
	}
	if len(h.log.lines) == 0 || !strings.HasPrefix(h.log.lines[0], "enlarger timer ") {
		t.Fatalf("log = %q, want startup line", h.log.lines)
	}
}

func TestSplashZeroesLeftoverEncoderCount(t *testing.T) {
	h := newFakeHAL()
	h.enc.pos = 42
	cfg := DefaultConfig()
	cfg.Splash = 0
	a := NewApp(h, cfg)

	a.Step()
	if h.enc.pos != 0 {
		t.Fatalf("encoder position = %d after the splash, want 0", h.enc.pos)
	}

	h.enc.pos = 1
	h.advance(10 * time.Millisecond)
	a.Step()
	if got := a.Controller().State().Stops; got != 0.1 {
		t.Fatalf("Stops = %v after one detent, want 0.1", got)
	}
}

func TestRunDrivesLampAndCompletes(t *testing.T) {
	h := newFakeHAL()
	cfg := DefaultConfig()
	cfg.Splash = 0
	a := NewApp(h, cfg)

	a.Step()
	h.buttons[hal.ButtonRun].pressed = true
	h.advance(10 * time.Millisecond)
	a.Step()
	if !h.lamp.on {
		t.Fatal("lamp off while running")
	}
	if got := a.Controller().State().Mode; got != timer.ModeRun {
		t.Fatalf("Mode = %v, want Run", got)
	}
	if got := a.Controller().State().Sample; got != 0.25 {
		t.Fatalf("Sample = %v, want 0.25", got)
	}

	h.advance(16 * time.Second)
	a.Step()
	if h.lamp.on {
		t.Fatal("lamp on after completion")
	}
	if got := a.Controller().State().Mode; got != timer.ModeExpose {
		t.Fatalf("Mode = %v, want Expose", got)
	}
}

func TestPanicSwitchesLampOff(t *testing.T) {
	h := newFakeHAL()
	cfg := DefaultConfig()
	cfg.Splash = 0
	a := NewApp(h, cfg)

	h.buttons[hal.ButtonFocus].pressed = true
	a.Step()
	if !h.lamp.on {
		t.Fatal("focus did not light the lamp")
	}

	h.buttons[hal.ButtonMode].panics = true
	h.advance(time.Second)
	if err := a.Step(); err == nil || !strings.Contains(err.Error(), "button wiring") {
		t.Fatalf("Step() error = %v, want fault", err)
	}
	if h.lamp.on {
		t.Fatal("lamp left on after a fault")
	}
	if got := h.lcd.line(0); got != "Timer fault     " {
		t.Fatalf("line 0 = %q", got)
	}
	if got := h.lcd.line(1); got != "button wiring   " {
		t.Fatalf("line 1 = %q", got)
	}
	if err := a.Step(); err != nil {
		t.Fatalf("Step() after fault = %v, want nil", err)
	}
}

func TestFitText(t *testing.T) {
	if got := fitText("0123456789abcdefXYZ", 16); got != "0123456789abcdef" {
		t.Fatalf("fitText() = %q", got)
	}
	if got := fitText("abc", 0); got != "" {
		t.Fatalf("fitText(_, 0) = %q", got)
	}
}

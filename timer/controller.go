package timer

import (
	"fmt"
	"time"
)

// Lamp switches the enlarger lamp.
type Lamp interface {
	High()
	Low()
}

// Logger receives one line per notable event.
type Logger interface {
	WriteLineString(s string)
}

// Input is one poll of the controls.
type Input struct {
	Position int
	Mode     bool
	Set      bool
	Focus    bool
	Run      bool
	Light    float64
}

// Config configures a Controller.
type Config struct {
	Defaults Defaults
	Debounce time.Duration
}

// Controller runs one poll cycle at a time: encoder, buttons, sensor,
// countdown, lamp, display. It owns the State and is not safe for concurrent
// use.
type Controller struct {
	state    *State
	editor   *Editor
	debounce *Debouncer
	renderer *Renderer

	lcd  Display
	lamp Lamp
	log  Logger

	lampOn    bool
	lampKnown bool
}

// NewController creates a controller. lamp and log may be nil.
func NewController(cfg Config, lcd Display, lamp Lamp, log Logger) *Controller {
	return &Controller{
		state:    NewState(cfg.Defaults),
		editor:   NewEditor(0),
		debounce: NewDebouncer(cfg.Debounce),
		renderer: NewRenderer(),
		lcd:      lcd,
		lamp:     lamp,
		log:      log,
	}
}

// State returns the live state. Callers must not mutate it.
func (c *Controller) State() *State { return c.state }

// SyncEncoder sets the encoder reference point, e.g. after the encoder was reset.
func (c *Controller) SyncEncoder(position int) {
	c.editor.Reset(position)
}

// Redraw forces a full repaint on the next Step.
func (c *Controller) Redraw() {
	c.renderer.Invalidate()
}

// Step runs one poll cycle.
func (c *Controller) Step(in Input, now time.Time) {
	s := c.state
	c.editor.Poll(s, in.Position)

	before := s.Mode
	switch {
	case c.debounce.Accept(in.Mode, now):
		OnModeButton(s)
	case c.debounce.Accept(in.Set, now):
		OnSetButton(s)
	case c.debounce.Accept(in.Focus, now):
		OnFocusButton(s)
	case c.debounce.Accept(in.Run, now):
		OnRunButton(s, now)
	}
	if s.Mode != before {
		c.logTransition(before, s.Mode)
	}

	s.Sample = in.Light

	if Tick(s, now) {
		c.logf("run: complete, back to %s", s.Mode)
	}

	c.updateLamp()

	if c.lcd != nil {
		c.renderer.Render(s, c.lcd)
	}
}

func (c *Controller) updateLamp() {
	if c.lamp == nil {
		return
	}
	on := c.state.Mode == ModeFocus || c.state.Mode == ModeRun
	if c.lampKnown && on == c.lampOn {
		return
	}
	if on {
		c.lamp.High()
	} else {
		c.lamp.Low()
	}
	c.lampOn = on
	c.lampKnown = true
}

func (c *Controller) logTransition(from, to Mode) {
	if to == ModeRun && from != ModePaused {
		c.logf("mode: %s -> %s (%dms)", from, to, c.state.RunDuration)
		return
	}
	c.logf("mode: %s -> %s", from, to)
}

func (c *Controller) logf(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Package app wires the timer core to a HAL: it polls the controls, feeds the
// controller and owns the startup splash.
package app

import (
	"fmt"
	"time"

	"enlarger/hal"
	"enlarger/internal/buildinfo"
	"enlarger/timer"
)

// RGB is a backlight colour.
type RGB struct {
	R, G, B uint8
}

// Config holds the startup values and timings of one App.
type Config struct {
	Timer     timer.Defaults
	Debounce  time.Duration
	Splash    time.Duration
	Backlight RGB

	// Poll is the device loop period.
	Poll time.Duration
}

// DefaultConfig matches the stock firmware: red backlight, one second splash
// and a 300ms debounce.
func DefaultConfig() Config {
	return Config{
		Timer:     timer.DefaultDefaults(),
		Debounce:  timer.DefaultDebounce,
		Splash:    time.Second,
		Backlight: RGB{R: 255},
		Poll:      10 * time.Millisecond,
	}
}

var splashLines = [timer.Rows]string{
	"  V21 Enlarger  ",
	"     Timer      ",
}

// App is one running timer.
type App struct {
	h   hal.HAL
	cfg Config
	ctl *timer.Controller

	lcd     hal.CharDisplay
	enc     hal.Encoder
	buttons [4]hal.Button
	sensor  hal.LightSensor
	log     hal.Logger

	started     bool
	splashUntil time.Time
	ready       bool
	faulted     bool
}

// New initializes the timer with cfg and returns its step function. Each call
// runs one poll cycle.
func New(h hal.HAL, cfg Config) func() error {
	return NewApp(h, cfg).Step
}

// NewApp is New returning the App itself.
func NewApp(h hal.HAL, cfg Config) *App {
	a := &App{
		h:      h,
		cfg:    cfg,
		lcd:    h.Display(),
		enc:    h.Encoder(),
		sensor: h.LightSensor(),
		log:    h.Logger(),
	}
	if bs := h.Buttons(); bs != nil {
		a.buttons = [4]hal.Button{
			bs.Button(hal.ButtonMode),
			bs.Button(hal.ButtonSet),
			bs.Button(hal.ButtonFocus),
			bs.Button(hal.ButtonRun),
		}
	}

	var lamp timer.Lamp
	if l := h.Lamp(); l != nil {
		lamp = l
	}
	var log timer.Logger
	if a.log != nil {
		log = a.log
	}
	var lcd timer.Display
	if a.lcd != nil {
		lcd = a.lcd
	}
	a.ctl = timer.NewController(timer.Config{Defaults: cfg.Timer, Debounce: cfg.Debounce}, lcd, lamp, log)
	return a
}

// Controller exposes the timer controller.
func (a *App) Controller() *timer.Controller { return a.ctl }

// Step runs one poll cycle. A panic inside the cycle switches the lamp off,
// shows a fault screen and is returned as an error; later calls do nothing.
func (a *App) Step() (err error) {
	if a.faulted {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			a.faulted = true
			a.fault(r)
			err = fmt.Errorf("timer fault: %v", r)
		}
	}()

	now := a.h.Time().Now()
	if !a.started {
		a.start(now)
	}
	if !a.ready {
		if now.Before(a.splashUntil) {
			return nil
		}
		a.finishSplash()
	}

	a.ctl.Step(a.poll(), now)
	return nil
}

func (a *App) start(now time.Time) {
	a.started = true
	a.splashUntil = now.Add(a.cfg.Splash)
	if a.log != nil {
		a.log.WriteLineString("enlarger timer " + buildinfo.Short())
	}
	if a.lcd == nil {
		return
	}
	a.lcd.SetBacklight(a.cfg.Backlight.R, a.cfg.Backlight.G, a.cfg.Backlight.B)
	a.lcd.Clear()
	for row, line := range splashLines {
		a.lcd.SetCursor(0, row)
		a.lcd.Write(line)
	}
}

// finishSplash clears the splash and zeroes the encoder so Stops starts from
// position 0 and turns made during the splash are not applied.
func (a *App) finishSplash() {
	a.ready = true
	if a.lcd != nil {
		a.lcd.Clear()
	}
	a.ctl.Redraw()
	if a.enc != nil {
		a.enc.Reset()
		a.ctl.SyncEncoder(a.enc.Position())
	}
}

func (a *App) poll() timer.Input {
	var in timer.Input
	if a.enc != nil {
		in.Position = a.enc.Position()
	}
	in.Mode = pressed(a.buttons[0])
	in.Set = pressed(a.buttons[1])
	in.Focus = pressed(a.buttons[2])
	in.Run = pressed(a.buttons[3])
	if a.sensor != nil {
		in.Light = a.sensor.Sample()
	}
	return in
}

func pressed(b hal.Button) bool {
	return b != nil && b.Pressed()
}

// Run starts the timer and polls it forever (TinyGo entrypoint).
func Run(h hal.HAL, cfg Config) {
	if cfg.Poll <= 0 {
		cfg.Poll = DefaultConfig().Poll
	}
	step := New(h, cfg)
	t := time.NewTicker(cfg.Poll)
	defer t.Stop()
	for range t.C {
		if err := step(); err != nil {
			break
		}
	}
	select {}
}

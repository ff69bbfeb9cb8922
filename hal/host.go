//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

// ErrNoWindow is returned by RunWindow in builds without cgo.
var ErrNoWindow = errors.New("window simulator not built (needs cgo)")

type hostHAL struct {
	logger  *hostLogger
	lamp    *hostLamp
	lcd     *hostLCD
	encoder *VirtualEncoder
	buttons *virtualButtons
	sensor  *lampSensor
	t       *hostTime
}

// New returns a host HAL implementation logging to stdout.
func New() HAL {
	return newHostHAL(os.Stdout, newHostTime())
}

func newHostHAL(w io.Writer, t *hostTime) *hostHAL {
	logger := &hostLogger{w: w}
	lamp := &hostLamp{logger: logger}
	return &hostHAL{
		logger:  logger,
		lamp:    lamp,
		lcd:     newHostLCD(),
		encoder: &VirtualEncoder{},
		buttons: newVirtualButtons(),
		sensor:  newLampSensor(lamp),
		t:       t,
	}
}

func (h *hostHAL) Logger() Logger           { return h.logger }
func (h *hostHAL) Lamp() LED                { return h.lamp }
func (h *hostHAL) Display() CharDisplay     { return h.lcd }
func (h *hostHAL) Encoder() Encoder         { return h.encoder }
func (h *hostHAL) Buttons() Buttons         { return h.buttons }
func (h *hostHAL) LightSensor() LightSensor { return h.sensor }
func (h *hostHAL) Time() Time               { return h.t }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLamp struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLamp) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.WriteLineString("lamp: ON")
}

func (l *hostLamp) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.WriteLineString("lamp: OFF")
}

func (l *hostLamp) On() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

// lampSensor reads bright while the lamp is on, dark otherwise.
type lampSensor struct {
	lamp   *hostLamp
	bright float64
	dark   float64
}

func newLampSensor(lamp *hostLamp) *lampSensor {
	return &lampSensor{lamp: lamp, bright: 0.8, dark: 0.02}
}

func (s *lampSensor) Sample() float64 {
	if s.lamp != nil && s.lamp.On() {
		return s.bright
	}
	return s.dark
}

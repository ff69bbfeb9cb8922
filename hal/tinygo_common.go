//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/encoders"
)

type serialLogger struct {
	out machine.Serialer
}

func (l *serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.out.WriteByte(s[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

func (l *serialLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.out.WriteByte(b[i])
	}
	l.out.WriteByte('\r')
	l.out.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// pinButton is a pull-up, active-low push button.
type pinButton struct {
	pin machine.Pin
}

func (b pinButton) Pressed() bool { return !b.pin.Get() }

type pinButtons struct {
	buttons [buttonCount]pinButton
}

// newPinButtons takes pins in ButtonID order.
func newPinButtons(pins ...machine.Pin) *pinButtons {
	var bs pinButtons
	for i, p := range pins {
		if i >= int(buttonCount) {
			break
		}
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		bs.buttons[i] = pinButton{pin: p}
	}
	return &bs
}

func (bs *pinButtons) Button(id ButtonID) Button {
	if id >= buttonCount {
		return nullButton{}
	}
	return bs.buttons[id]
}

// quadEncoder reverses the raw count to match the knob wiring and keeps it
// within [EncoderMin, EncoderMax].
type quadEncoder struct {
	dev *encoders.QuadratureDevice
}

func (e *quadEncoder) Position() int {
	raw := e.dev.Position()
	pos := clampPosition(-raw)
	if pos != -raw {
		e.dev.SetPosition(-pos)
	}
	return pos
}

func (e *quadEncoder) Reset() { e.dev.SetPosition(0) }

type adcSensor struct {
	adc machine.ADC
}

func (s *adcSensor) Sample() float64 {
	return float64(s.adc.Get()) / 65535
}

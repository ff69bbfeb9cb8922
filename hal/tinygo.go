//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"

	"enlarger/internal/rgb1602"

	"tinygo.org/x/drivers/encoders"
)

// Pin map.
const (
	pinEncoderCLK = machine.GP8
	pinEncoderDT  = machine.GP9
	pinMode       = machine.GP10
	pinSet        = machine.GP1
	pinFocus      = machine.GP17
	pinRun        = machine.GP16
	pinLCDSDA     = machine.GP4
	pinLCDSCL     = machine.GP5
	pinLamp       = machine.GP15
	pinLight      = machine.ADC0
)

type tinyGoHAL struct {
	logger  *serialLogger
	lamp    *pinLED
	lcd     *lcdDisplay
	encoder *quadEncoder
	buttons *pinButtons
	sensor  *adcSensor
	t       tinyGoTime
}

// New returns the Raspberry Pi Pico HAL. Logs go to USB serial.
func New() HAL {
	logger := &serialLogger{out: machine.Serial}

	lampPin := pinLamp
	lampPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lampPin.Low()

	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		SDA:       pinLCDSDA,
		SCL:       pinLCDSCL,
		Frequency: 400 * machine.KHz,
	}); err != nil {
		logger.WriteLineString("i2c: " + err.Error())
	}
	lcd := newLCDDisplay(i2c, logger)

	enc := encoders.NewQuadratureViaInterrupt(pinEncoderCLK, pinEncoderDT)
	enc.Configure(encoders.QuadratureConfig{Precision: 4})

	machine.InitADC()
	adc := machine.ADC{Pin: pinLight}
	adc.Configure(machine.ADCConfig{})

	return &tinyGoHAL{
		logger:  logger,
		lamp:    &pinLED{pin: lampPin},
		lcd:     lcd,
		encoder: &quadEncoder{dev: enc},
		buttons: newPinButtons(pinMode, pinSet, pinFocus, pinRun),
		sensor:  &adcSensor{adc: adc},
	}
}

func (h *tinyGoHAL) Logger() Logger           { return h.logger }
func (h *tinyGoHAL) Lamp() LED                { return h.lamp }
func (h *tinyGoHAL) Display() CharDisplay     { return h.lcd }
func (h *tinyGoHAL) Encoder() Encoder         { return h.encoder }
func (h *tinyGoHAL) Buttons() Buttons         { return h.buttons }
func (h *tinyGoHAL) LightSensor() LightSensor { return h.sensor }
func (h *tinyGoHAL) Time() Time               { return h.t }

type tinyGoTime struct{}

func (tinyGoTime) Now() time.Time { return time.Now() }

// lcdDisplay adapts the RGB1602 driver to CharDisplay. Bus errors are logged
// once and otherwise ignored so a loose cable never stops the timer.
type lcdDisplay struct {
	dev    rgb1602.Device
	logger Logger
	failed bool
}

func newLCDDisplay(bus *machine.I2C, logger Logger) *lcdDisplay {
	d := &lcdDisplay{dev: rgb1602.New(bus), logger: logger}
	d.check(d.dev.Configure(rgb1602.Config{Cols: 16, Rows: 2}))
	return d
}

func (d *lcdDisplay) check(err error) {
	if err == nil || d.failed {
		return
	}
	d.failed = true
	d.logger.WriteLineString("lcd: " + err.Error())
}

func (d *lcdDisplay) Clear()                     { d.check(d.dev.Clear()) }
func (d *lcdDisplay) SetCursor(col, row int)     { d.check(d.dev.SetCursor(col, row)) }
func (d *lcdDisplay) SetBacklight(r, g, b uint8) { d.check(d.dev.SetRGB(r, g, b)) }

func (d *lcdDisplay) Write(text string) {
	_, err := d.dev.WriteString(text)
	d.check(err)
}

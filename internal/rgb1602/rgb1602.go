// Package rgb1602 drives the Waveshare LCD1602 RGB module: an AIP31068
// character controller (HD44780 command set) and a PCA9633 backlight
// controller sharing one I2C bus.
package rgb1602

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// Default bus addresses.
const (
	LCDAddress = 0x3E
	RGBAddress = 0x60
)

// Control bytes prefixed to every LCD transfer.
const (
	controlCommand = 0x80
	controlData    = 0x40
)

// HD44780 commands and flags.
const (
	cmdClear       = 0x01
	cmdHome        = 0x02
	cmdEntryMode   = 0x04
	cmdDisplay     = 0x08
	cmdFunctionSet = 0x20
	cmdSetDDRAM    = 0x80

	entryLeft   = 0x02
	displayOn   = 0x04
	twoLine     = 0x08
	row1Address = 0x40
)

// PCA9633 registers.
const (
	regMode1  = 0x00
	regMode2  = 0x01
	regBlue   = 0x02
	regGreen  = 0x03
	regRed    = 0x04
	regOutput = 0x08
)

var ErrOutOfRange = errors.New("rgb1602: cursor out of range")

// Device is a 16x2 (or other geometry) RGB backlit character LCD.
type Device struct {
	bus        drivers.I2C
	lcdAddress uint16
	rgbAddress uint16
	cols, rows int
	buf        [2]byte

	// Sleep waits out controller execution times. Tests replace it.
	Sleep func(time.Duration)
}

// Config describes the panel geometry. Zero values select 16x2.
type Config struct {
	Cols int
	Rows int
}

// New returns a device on the bus at the default addresses. Call Configure
// before use.
func New(bus drivers.I2C) Device {
	return Device{
		bus:        bus,
		lcdAddress: LCDAddress,
		rgbAddress: RGBAddress,
		Sleep:      time.Sleep,
	}
}

// Configure runs the power-on sequence: function set three times, display
// on, clear, left-to-right entry, then enables the backlight outputs.
func (d *Device) Configure(cfg Config) error {
	d.cols, d.rows = cfg.Cols, cfg.Rows
	if d.cols <= 0 {
		d.cols = 16
	}
	if d.rows <= 0 {
		d.rows = 2
	}
	if d.Sleep == nil {
		d.Sleep = time.Sleep
	}

	d.Sleep(50 * time.Millisecond)
	function := byte(cmdFunctionSet)
	if d.rows > 1 {
		function |= twoLine
	}
	for i := 0; i < 3; i++ {
		if err := d.command(function); err != nil {
			return err
		}
		d.Sleep(5 * time.Millisecond)
	}
	if err := d.command(cmdDisplay | displayOn); err != nil {
		return err
	}
	if err := d.Clear(); err != nil {
		return err
	}
	if err := d.command(cmdEntryMode | entryLeft); err != nil {
		return err
	}

	if err := d.writeRGB(regMode1, 0x00); err != nil {
		return err
	}
	// All four LED outputs under individual PWM control.
	if err := d.writeRGB(regOutput, 0xFF); err != nil {
		return err
	}
	return d.writeRGB(regMode2, 0x20)
}

// Clear blanks the display and homes the cursor.
func (d *Device) Clear() error {
	if err := d.command(cmdClear); err != nil {
		return err
	}
	d.Sleep(2 * time.Millisecond)
	return nil
}

// Home moves the cursor to 0,0 without clearing.
func (d *Device) Home() error {
	if err := d.command(cmdHome); err != nil {
		return err
	}
	d.Sleep(2 * time.Millisecond)
	return nil
}

// SetCursor moves the cursor to col, row.
func (d *Device) SetCursor(col, row int) error {
	if col < 0 || row < 0 || (d.cols > 0 && col >= d.cols) || (d.rows > 0 && row >= d.rows) {
		return ErrOutOfRange
	}
	addr := byte(col)
	if row == 1 {
		addr |= row1Address
	}
	return d.command(cmdSetDDRAM | addr)
}

// Write sends raw character ROM bytes starting at the cursor.
func (d *Device) Write(text []byte) (int, error) {
	for i, c := range text {
		if err := d.data(c); err != nil {
			return i, err
		}
	}
	return len(text), nil
}

// WriteString is Write for a string.
func (d *Device) WriteString(text string) (int, error) {
	for i := 0; i < len(text); i++ {
		if err := d.data(text[i]); err != nil {
			return i, err
		}
	}
	return len(text), nil
}

// SetRGB sets the backlight colour.
func (d *Device) SetRGB(r, g, b uint8) error {
	if err := d.writeRGB(regRed, r); err != nil {
		return err
	}
	if err := d.writeRGB(regGreen, g); err != nil {
		return err
	}
	return d.writeRGB(regBlue, b)
}

func (d *Device) command(c byte) error {
	d.buf[0], d.buf[1] = controlCommand, c
	return d.bus.Tx(d.lcdAddress, d.buf[:], nil)
}

func (d *Device) data(c byte) error {
	d.buf[0], d.buf[1] = controlData, c
	return d.bus.Tx(d.lcdAddress, d.buf[:], nil)
}

func (d *Device) writeRGB(reg, value byte) error {
	d.buf[0], d.buf[1] = reg, value
	return d.bus.Tx(d.rgbAddress, d.buf[:], nil)
}

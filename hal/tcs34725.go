package hal

import (
	"encoding/binary"
	"fmt"

	"colorpicky/internal/colors"

	"tinygo.org/x/drivers"
)

// TCS34725 register map (datasheet names).
const (
	tcsAddress    = 0x29
	tcsCommandBit = 0x80

	tcsRegEnable  = 0x00
	tcsRegATime   = 0x01
	tcsRegControl = 0x0F
	tcsRegID      = 0x12
	tcsRegCDataL  = 0x14

	tcsEnablePON = 0x01
	tcsEnableAEN = 0x02
)

// TCS34725Integration50ms is the ATIME value for roughly 50 ms of integration.
const TCS34725Integration50ms = 0xEB

var _ SensorTuner = (*TCS34725)(nil)

// TCS34725 drives an AMS TCS34725 RGBC sensor over I2C.
type TCS34725 struct {
	bus  drivers.I2C
	addr uint16

	rx [8]byte
}

// NewTCS34725 returns a driver for the sensor at its fixed address.
func NewTCS34725(bus drivers.I2C) *TCS34725 {
	return &TCS34725{bus: bus, addr: tcsAddress}
}

// Init powers the oscillator and starts RGBC integration with the power-on
// integration time and gain.
func (d *TCS34725) Init() error {
	if d.bus == nil {
		return ErrSensorAbsent
	}
	if err := d.bus.Tx(d.addr, []byte{tcsCommandBit | tcsRegEnable, tcsEnablePON | tcsEnableAEN}, nil); err != nil {
		return fmt.Errorf("tcs34725: init: %w", err)
	}
	return nil
}

// Enable re-asserts PON and AEN.
func (d *TCS34725) Enable() error {
	return d.writeReg(tcsRegEnable, tcsEnablePON|tcsEnableAEN)
}

// SetIntegration writes ATIME; integration time is 2.4ms * (256 - atime).
func (d *TCS34725) SetIntegration(atime uint8) error {
	return d.writeReg(tcsRegATime, atime)
}

// SetGain writes the analog gain selector (0..3 for 1x, 4x, 16x, 60x).
func (d *TCS34725) SetGain(gain uint8) error {
	return d.writeReg(tcsRegControl, gain&0x03)
}

// ReadID returns the part ID register (0x44 for TCS34725, 0x4D for TCS34727).
func (d *TCS34725) ReadID() (uint8, error) {
	return d.readReg(tcsRegID)
}

// ReadAll burst-reads the clear, red, green and blue data registers.
func (d *TCS34725) ReadAll() (colors.Sample, error) {
	if d.bus == nil {
		return colors.Sample{}, ErrSensorAbsent
	}
	buf := d.rx[:]
	if err := d.bus.Tx(d.addr, []byte{tcsCommandBit | tcsRegCDataL}, buf); err != nil {
		return colors.Sample{}, fmt.Errorf("tcs34725: read: %w", err)
	}
	return colors.Sample{
		C: binary.LittleEndian.Uint16(buf[0:2]),
		R: binary.LittleEndian.Uint16(buf[2:4]),
		G: binary.LittleEndian.Uint16(buf[4:6]),
		B: binary.LittleEndian.Uint16(buf[6:8]),
	}, nil
}

func (d *TCS34725) writeReg(reg, value uint8) error {
	if d.bus == nil {
		return ErrSensorAbsent
	}
	if err := d.bus.Tx(d.addr, []byte{tcsCommandBit | reg, value}, nil); err != nil {
		return fmt.Errorf("tcs34725: write reg 0x%02x: %w", reg, err)
	}
	return nil
}

func (d *TCS34725) readReg(reg uint8) (uint8, error) {
	if d.bus == nil {
		return 0, ErrSensorAbsent
	}
	var b [1]byte
	if err := d.bus.Tx(d.addr, []byte{tcsCommandBit | reg}, b[:]); err != nil {
		return 0, fmt.Errorf("tcs34725: read reg 0x%02x: %w", reg, err)
	}
	return b[0], nil
}

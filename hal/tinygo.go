//go:build tinygo && baremetal

package hal

import (
	"machine"
)

// Board wiring (Raspberry Pi Pico / Pico 2).
const (
	pinBTN = machine.GP15

	pinSensorSDA = machine.GP6
	pinSensorSCL = machine.GP7

	pinLCDSCK = machine.GP18
	pinLCDSDO = machine.GP19
	pinLCDCS  = machine.GP17
	pinLCDRST = machine.GP16
	pinLCDDC  = machine.GP20
)

type tinyGoHAL struct {
	logger *uartLogger
	button Button
	fb     Framebuffer
	sensor *TCS34725
}

// New returns the RP2040/RP2350 HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Button: GP15 to ground, internal pull-up.
// Sensor: I2C1 on GP6 (SDA) / GP7 (SCL), 400 kHz.
// Display: SSD1283A on SPI0, GP18 (SCK) / GP19 (SDO), CS GP17, RST GP16, DC GP20.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	var btn Button = releasedButton{}
	if b, err := NewButton(&machinePin{name: "GP15", pin: pinBTN}, true); err == nil {
		btn = b
	} else {
		logger.WriteLineString("hal: button: " + err.Error())
	}

	i2c := machine.I2C1
	var sensor *TCS34725
	if err := i2c.Configure(machine.I2CConfig{
		SDA:       pinSensorSDA,
		SCL:       pinSensorSCL,
		Frequency: 400 * machine.KHz,
	}); err != nil {
		logger.WriteLineString("hal: i2c1: " + err.Error())
		sensor = NewTCS34725(nil)
	} else {
		sensor = NewTCS34725(i2c)
	}

	var fb Framebuffer
	if lcd, err := initSSD1283A(); err == nil {
		fb = newPanelFramebuffer(lcd)
	} else {
		logger.WriteLineString("hal: display: " + err.Error())
		fb = newPanelFramebuffer(nil)
	}

	return &tinyGoHAL{
		logger: logger,
		button: btn,
		fb:     fb,
		sensor: sensor,
	}
}

func (h *tinyGoHAL) Logger() Logger      { return h.logger }
func (h *tinyGoHAL) Display() Display    { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Button() Button      { return h.button }
func (h *tinyGoHAL) Sensor() ColorSensor { return h.sensor }

type releasedButton struct{}

func (releasedButton) Pressed() bool { return false }

package hal

import (
	"fmt"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

// pinButton maps a pin level to "pressed". Active-low buttons close to ground
// against a pull-up.
type pinButton struct {
	pin       GPIOPin
	activeLow bool
}

// NewButton configures pin as an input and wraps it as a Button. The pull-up is
// enabled for active-low wiring when the pin supports it.
func NewButton(pin GPIOPin, activeLow bool) (Button, error) {
	if pin == nil {
		return nil, fmt.Errorf("gpio: button: no pin")
	}
	pull := GPIOPullNone
	if activeLow && pin.Caps()&GPIOCapPullUp != 0 {
		pull = GPIOPullUp
	}
	if err := pin.Configure(GPIOModeInput, pull); err != nil {
		return nil, err
	}
	return &pinButton{pin: pin, activeLow: activeLow}, nil
}

// Pressed treats a failed read as released.
func (b *pinButton) Pressed() bool {
	level, err := b.pin.Read()
	if err != nil {
		return false
	}
	return level != b.activeLow
}

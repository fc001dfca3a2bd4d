package hal

import (
	"errors"

	"colorpicky/internal/colors"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// DebugLogger is implemented by loggers that keep low-priority lines apart.
// Callers fall back to WriteLineString when it is missing.
type DebugLogger interface {
	DebugLineString(s string)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrSensorAbsent   = errors.New("color sensor not present")
)

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Button is the single user button, already mapped to "pressed" polarity.
//
// Implementations report false when the level cannot be read.
type Button interface {
	Pressed() bool
}

// ColorSensor is an RGBC light sensor.
//
// Init and Enable are called once at startup; ReadAll once per sensor interval.
type ColorSensor interface {
	Init() error
	Enable() error
	ReadID() (uint8, error)
	ReadAll() (colors.Sample, error)
}

// SensorTuner is implemented by sensors with a programmable integration time
// and analog gain.
type SensorTuner interface {
	SetIntegration(atime uint8) error
	SetGain(gain uint8) error
}

// HAL provides the only contact point between the device loop and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Button() Button
	Sensor() ColorSensor
}

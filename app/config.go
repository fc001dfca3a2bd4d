package app

import (
	"errors"
	"fmt"
	"time"

	"colorpicky/hal"
	"colorpicky/internal/gesture"
	"colorpicky/internal/ui"
)

// Config is the device configuration. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// Tick is the loop period on the device.
	Tick time.Duration `toml:"tick" yaml:"tick" env:"COLORPICKY_TICK"`
	// SensorInterval throttles sensor reads; zero reads on every tick.
	SensorInterval time.Duration `toml:"sensor_interval" yaml:"sensor_interval" env:"COLORPICKY_SENSOR_INTERVAL"`
	// Splash keeps the boot screen up before the first frame.
	Splash time.Duration `toml:"splash" yaml:"splash" env:"COLORPICKY_SPLASH"`

	// Integration is the sensor ATIME register; integration lasts 2.4ms * (256 - Integration).
	Integration int `toml:"integration" yaml:"integration" env:"COLORPICKY_INTEGRATION"`
	// Gain selects 1x, 4x, 16x or 60x (0..3).
	Gain int `toml:"gain" yaml:"gain" env:"COLORPICKY_GAIN"`

	Title    string `toml:"title" yaml:"title" env:"COLORPICKY_TITLE"`
	LogLevel string `toml:"log_level" yaml:"log_level" env:"COLORPICKY_LOG_LEVEL"`

	Gesture gesture.Config `toml:"gesture" yaml:"gesture"`
}

func DefaultConfig() Config {
	return Config{
		Tick:           10 * time.Millisecond,
		SensorInterval: 50 * time.Millisecond,
		Splash:         time.Second,
		Integration:    hal.TCS34725Integration50ms,
		Gain:           0,
		Title:          ui.DefaultTitle,
		LogLevel:       "info",
		Gesture:        gesture.DefaultConfig(),
	}
}

var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first setting that the loop cannot run with.
func (c Config) Validate() error {
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalidConfig, c.Tick)
	}
	if c.SensorInterval < 0 {
		return fmt.Errorf("%w: sensor_interval must not be negative, got %s", ErrInvalidConfig, c.SensorInterval)
	}
	if c.Splash < 0 {
		return fmt.Errorf("%w: splash must not be negative, got %s", ErrInvalidConfig, c.Splash)
	}

	if c.Integration < 0 || c.Integration > 0xFF {
		return fmt.Errorf("%w: integration must be 0..255, got %d", ErrInvalidConfig, c.Integration)
	}
	if c.Gain < 0 || c.Gain > 3 {
		return fmt.Errorf("%w: gain must be 0..3, got %d", ErrInvalidConfig, c.Gain)
	}

	g := c.Gesture
	if g.Debounce < 0 || g.LongPress < 0 || g.SamplingEntry < 0 || g.DoubleClickWindow < 0 {
		return fmt.Errorf("%w: gesture durations must not be negative", ErrInvalidConfig)
	}
	if g.Debounce > 0 && g.LongPress > 0 && g.LongPress <= g.Debounce {
		return fmt.Errorf("%w: long_press (%s) must exceed debounce (%s)", ErrInvalidConfig, g.LongPress, g.Debounce)
	}
	if g.Sampling && g.SamplingEntry > 0 && g.LongPress > 0 && g.SamplingEntry >= g.LongPress {
		return fmt.Errorf("%w: sampling_entry (%s) must be shorter than long_press (%s)", ErrInvalidConfig, g.SamplingEntry, g.LongPress)
	}
	if c.Tick > 0 && g.Debounce > 0 && c.Tick >= g.Debounce {
		return fmt.Errorf("%w: tick (%s) must be shorter than debounce (%s)", ErrInvalidConfig, c.Tick, g.Debounce)
	}
	return nil
}

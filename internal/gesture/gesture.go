// Package gesture turns a single push button's raw level, sampled once per tick,
// into discrete user intents: clicks, double clicks, long presses and (optionally)
// a continuous "held" stream for press-and-hold sampling.
package gesture

import "time"

// Event is the result of one Poll. At most one event is produced per tick.
type Event uint8

const (
	EventNone Event = iota
	EventSingleClick
	EventDoubleClick
	EventLongPress
	// EventHeldBegin, EventHeldTick and EventReleased are only produced when
	// Config.Sampling is enabled.
	EventHeldBegin
	EventHeldTick
	EventReleased
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventSingleClick:
		return "single-click"
	case EventDoubleClick:
		return "double-click"
	case EventLongPress:
		return "long-press"
	case EventHeldBegin:
		return "held-begin"
	case EventHeldTick:
		return "held-tick"
	case EventReleased:
		return "released"
	default:
		return "unknown"
	}
}

const (
	DefaultDebounce          = 50 * time.Millisecond
	DefaultLongPress         = 1000 * time.Millisecond
	DefaultSamplingEntry     = 200 * time.Millisecond
	DefaultDoubleClickWindow = 350 * time.Millisecond
)

// Config holds the timing thresholds. Zero or negative durations use the defaults.
type Config struct {
	Debounce          time.Duration `toml:"debounce" yaml:"debounce" env:"COLORPICKY_DEBOUNCE"`
	LongPress         time.Duration `toml:"long_press" yaml:"long_press" env:"COLORPICKY_LONG_PRESS"`
	SamplingEntry     time.Duration `toml:"sampling_entry" yaml:"sampling_entry" env:"COLORPICKY_SAMPLING_ENTRY"`
	DoubleClickWindow time.Duration `toml:"double_click_window" yaml:"double_click_window" env:"COLORPICKY_DOUBLE_CLICK_WINDOW"`

	// Sampling enables the hold-to-sample variant. With it on, every press that
	// outlives SamplingEntry ends in EventReleased, so EventLongPress can never fire.
	Sampling bool `toml:"sampling" yaml:"sampling" env:"COLORPICKY_SAMPLING"`
}

// DefaultConfig returns the stock thresholds with the 3-event variant.
func DefaultConfig() Config {
	return Config{
		Debounce:          DefaultDebounce,
		LongPress:         DefaultLongPress,
		SamplingEntry:     DefaultSamplingEntry,
		DoubleClickWindow: DefaultDoubleClickWindow,
	}
}

func (c Config) withDefaults() Config {
	if c.Debounce <= 0 {
		c.Debounce = DefaultDebounce
	}
	if c.LongPress <= 0 {
		c.LongPress = DefaultLongPress
	}
	if c.SamplingEntry <= 0 {
		c.SamplingEntry = DefaultSamplingEntry
	}
	if c.DoubleClickWindow <= 0 {
		c.DoubleClickWindow = DefaultDoubleClickWindow
	}
	return c
}

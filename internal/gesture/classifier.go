package gesture

import "time"

// Classifier is the button state machine. It is not safe for concurrent use;
// the device loop owns it.
type Classifier struct {
	cfg Config

	pressed     bool
	pressStart  time.Time
	lastRelease time.Time
	pending     uint8
	sampling    bool
}

// New returns a Classifier in the idle (released) state.
func New(cfg Config) *Classifier {
	return &Classifier{cfg: cfg.withDefaults()}
}

// Config returns the effective thresholds.
func (c *Classifier) Config() Config { return c.cfg }

// Pressed reports the level the classifier last accepted.
func (c *Classifier) Pressed() bool { return c.pressed }

// Sampling reports whether a hold is currently in sampling mode.
func (c *Classifier) Sampling() bool { return c.sampling }

// Reset drops any press or pending clicks.
func (c *Classifier) Reset() {
	cfg := c.cfg
	*c = Classifier{cfg: cfg}
}

// Poll consumes one raw sample taken at now and returns the event for this tick.
//
// Rules are checked in a fixed order and the first one that produces an event
// wins, so a tick never yields more than one event.
func (c *Classifier) Poll(raw bool, now time.Time) Event {
	switch {
	case raw && !c.pressed:
		c.pressed = true
		c.pressStart = now
		c.sampling = false
	case !raw && c.pressed:
		if ev, done := c.release(now); done {
			return ev
		}
	}

	if c.cfg.Sampling && c.pressed {
		if !c.sampling {
			if now.Sub(c.pressStart) > c.cfg.SamplingEntry {
				c.sampling = true
				return EventHeldBegin
			}
		} else {
			return EventHeldTick
		}
	}

	if !c.pressed && c.pending > 0 {
		if c.pending == 2 {
			c.pending = 0
			return EventDoubleClick
		}
		if now.Sub(c.lastRelease) > c.cfg.DoubleClickWindow {
			c.pending = 0
			return EventSingleClick
		}
	}
	return EventNone
}

// release handles a falling edge. done is true when the edge itself produced the
// tick's event.
func (c *Classifier) release(now time.Time) (ev Event, done bool) {
	c.pressed = false
	d := now.Sub(c.pressStart)

	switch {
	case c.cfg.Sampling && c.sampling:
		c.sampling = false
		c.pending = 0
		return EventReleased, true
	case d > c.cfg.LongPress:
		c.pending = 0
		return EventLongPress, true
	case d > c.cfg.Debounce:
		if c.pending < 2 {
			c.pending++
		}
		c.lastRelease = now
	}
	return EventNone, false
}

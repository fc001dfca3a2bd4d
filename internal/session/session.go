// Package session is the device's state machine: the active screen mode, the
// captured history, the live reading and the redraw policy that keeps the panel
// from flickering.
package session

import (
	"fmt"

	"colorpicky/hal"
	"colorpicky/internal/colors"
	"colorpicky/internal/gesture"
)

// Mode selects which screen is active.
type Mode uint8

const (
	ModeMeasuring Mode = iota
	ModeHistory
)

func (m Mode) String() string {
	switch m {
	case ModeMeasuring:
		return "measuring"
	case ModeHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Redraw is the kind of screen update the renderer should perform.
type Redraw uint8

const (
	RedrawNone Redraw = iota
	// RedrawPartial repaints only the reading area of the Measuring screen.
	RedrawPartial
	// RedrawFull clears the panel and repaints the active screen.
	RedrawFull
)

func (r Redraw) String() string {
	switch r {
	case RedrawNone:
		return "none"
	case RedrawPartial:
		return "partial"
	case RedrawFull:
		return "full"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the session for renderers and reports.
type Snapshot struct {
	Mode       Mode
	History    History
	Current    colors.NamedColor
	HasCurrent bool
	Sample     colors.Sample
	Sampling   bool
}

// Controller owns the session state. It is driven from a single loop and does no locking.
type Controller struct {
	log hal.Logger

	mode       Mode
	history    History
	current    colors.NamedColor
	hasCurrent bool
	sample     colors.Sample
	sampling   bool

	fullPending    bool
	partialPending bool
	renderedName   string

	sensorFailing bool
}

// New returns a controller in Measuring mode with an empty history. The first
// TakeRedraw reports RedrawFull so the initial frame gets painted.
func New(log hal.Logger) *Controller {
	return &Controller{
		log:         log,
		mode:        ModeMeasuring,
		fullPending: true,
	}
}

func (c *Controller) Mode() Mode       { return c.mode }
func (c *Controller) History() History { return c.history }
func (c *Controller) Sampling() bool   { return c.sampling }

// Sample returns the raw sample behind the current reading.
func (c *Controller) Sample() colors.Sample { return c.sample }

// Current returns the live reading, if any.
func (c *Controller) Current() (colors.NamedColor, bool) {
	return c.current, c.hasCurrent
}

// Snapshot copies the state out.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Mode:       c.mode,
		History:    c.history,
		Current:    c.current,
		HasCurrent: c.hasCurrent,
		Sample:     c.sample,
		Sampling:   c.sampling,
	}
}

// Apply performs the action bound to a gesture in the current mode.
func (c *Controller) Apply(ev gesture.Event) {
	switch ev {
	case gesture.EventDoubleClick:
		c.ToggleMode()
	case gesture.EventSingleClick:
		if c.mode == ModeMeasuring {
			c.Capture()
		}
	case gesture.EventLongPress:
		if c.mode == ModeHistory {
			c.ClearHistory()
		}
	case gesture.EventHeldBegin:
		c.setSampling(true)
	case gesture.EventReleased:
		if c.mode == ModeMeasuring {
			c.Capture()
		}
		c.setSampling(false)
	}
}

// ToggleMode switches between Measuring and History and schedules a full redraw.
func (c *Controller) ToggleMode() {
	if c.mode == ModeMeasuring {
		c.mode = ModeHistory
	} else {
		c.mode = ModeMeasuring
	}
	c.fullPending = true
	c.logf("session: mode %s", c.mode)
}

// Capture pushes the live reading onto the history. It reports false when there
// is no reading yet.
func (c *Controller) Capture() bool {
	if !c.hasCurrent {
		return false
	}
	c.history.Push(c.current)
	c.logf("session: saved %s %s", c.current.Name, c.current.RGB.Hex())
	return true
}

// ClearHistory empties the history while the History screen is shown. In
// Measuring mode it does nothing and reports false.
func (c *Controller) ClearHistory() bool {
	if c.mode != ModeHistory {
		return false
	}
	c.history.Clear()
	c.fullPending = true
	c.logf("session: history cleared")
	return true
}

// Observe feeds one sensor sample. Samples are ignored outside Measuring mode and
// when the clear channel is zero; the last good reading is kept in both cases. A
// zero-clear sample does not end a failure streak.
func (c *Controller) Observe(s colors.Sample) {
	if c.mode != ModeMeasuring {
		return
	}
	nc, ok := colors.Classify(s)
	if !ok {
		return
	}
	if c.sensorFailing {
		c.sensorFailing = false
		c.debugf("session: sensor recovered")
	}
	c.current = nc
	c.hasCurrent = true
	c.sample = s
}

// SensorFailed records a failed read. State is left untouched; the next tick retries.
func (c *Controller) SensorFailed(err error) {
	if c.sensorFailing {
		return
	}
	c.sensorFailing = true
	c.debugf("session: sensor read failed: %v", err)
}

// TakeRedraw returns the pending redraw and marks it done.
//
// In Measuring mode a partial redraw is reported only when the matched name
// differs from the one last handed out, so a steady reading does not repaint.
func (c *Controller) TakeRedraw() Redraw {
	name := ""
	if c.hasCurrent {
		name = c.current.Name
	}

	if c.fullPending {
		c.fullPending = false
		c.partialPending = false
		c.renderedName = name
		return RedrawFull
	}
	if c.mode != ModeMeasuring {
		c.partialPending = false
		return RedrawNone
	}
	if c.partialPending || name != c.renderedName {
		c.partialPending = false
		c.renderedName = name
		return RedrawPartial
	}
	return RedrawNone
}

func (c *Controller) setSampling(on bool) {
	if c.sampling == on {
		return
	}
	c.sampling = on
	if c.mode == ModeMeasuring {
		c.partialPending = true
	}
}

// debugf writes at debug level when the logger supports it.
func (c *Controller) debugf(format string, args ...any) {
	if c.log == nil {
		return
	}
	if d, ok := c.log.(hal.DebugLogger); ok {
		d.DebugLineString(fmt.Sprintf(format, args...))
		return
	}
	c.log.WriteLineString(fmt.Sprintf(format, args...))
}

func (c *Controller) logf(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.WriteLineString(fmt.Sprintf(format, args...))
}

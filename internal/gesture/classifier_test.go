package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 10 * time.Millisecond

// driver feeds a Classifier one sample per tick on a fake clock.
type driver struct {
	c      *Classifier
	now    time.Time
	events []Event
}

func newDriver(cfg Config) *driver {
	return &driver{c: New(cfg), now: time.Unix(0, 0)}
}

// hold samples level for d worth of ticks.
func (d *driver) hold(level bool, dur time.Duration) {
	for end := d.now.Add(dur); d.now.Before(end); d.now = d.now.Add(tick) {
		if ev := d.c.Poll(level, d.now); ev != EventNone {
			d.events = append(d.events, ev)
		}
	}
}

func (d *driver) press(dur time.Duration) { d.hold(true, dur) }
func (d *driver) idle(dur time.Duration)  { d.hold(false, dur) }

func (d *driver) count(ev Event) int {
	n := 0
	for _, e := range d.events {
		if e == ev {
			n++
		}
	}
	return n
}

func TestShortPressIsBounce(t *testing.T) {
	for _, sampling := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.Sampling = sampling
		d := newDriver(cfg)

		d.press(40 * time.Millisecond)
		d.idle(time.Second)

		assert.Empty(t, d.events, "sampling=%v", sampling)
		assert.Zero(t, d.c.pending)
	}
}

func TestSingleClick(t *testing.T) {
	d := newDriver(DefaultConfig())

	d.press(100 * time.Millisecond)
	d.idle(300 * time.Millisecond)
	require.Empty(t, d.events, "click must wait for the double-click window")

	d.idle(200 * time.Millisecond)
	assert.Equal(t, []Event{EventSingleClick}, d.events)
}

func TestDoubleClick(t *testing.T) {
	d := newDriver(DefaultConfig())

	d.press(100 * time.Millisecond)
	d.idle(100 * time.Millisecond)
	d.press(100 * time.Millisecond)
	d.idle(time.Second)

	assert.Equal(t, 1, d.count(EventDoubleClick))
	assert.Zero(t, d.count(EventSingleClick))
}

func TestDoubleClickFiresOnSecondRelease(t *testing.T) {
	c := New(DefaultConfig())
	t0 := time.Unix(0, 0)

	assert.Equal(t, EventNone, c.Poll(true, t0))
	assert.Equal(t, EventNone, c.Poll(false, t0.Add(100*time.Millisecond)))
	assert.Equal(t, EventNone, c.Poll(true, t0.Add(200*time.Millisecond)))
	assert.Equal(t, EventDoubleClick, c.Poll(false, t0.Add(300*time.Millisecond)))
	assert.Equal(t, EventNone, c.Poll(false, t0.Add(900*time.Millisecond)))
}

func TestSlowSecondClickIsTwoSingles(t *testing.T) {
	d := newDriver(DefaultConfig())

	d.press(100 * time.Millisecond)
	d.idle(500 * time.Millisecond)
	d.press(100 * time.Millisecond)
	d.idle(500 * time.Millisecond)

	assert.Equal(t, []Event{EventSingleClick, EventSingleClick}, d.events)
}

func TestLongPressReducedVariant(t *testing.T) {
	d := newDriver(DefaultConfig())

	d.press(1500 * time.Millisecond)
	d.idle(time.Second)

	assert.Equal(t, []Event{EventLongPress}, d.events)
}

func TestLongPressDropsPendingClick(t *testing.T) {
	d := newDriver(DefaultConfig())

	d.press(100 * time.Millisecond)
	d.idle(100 * time.Millisecond)
	d.press(1200 * time.Millisecond)
	d.idle(time.Second)

	assert.Equal(t, []Event{EventLongPress}, d.events)
}

func TestSamplingHoldStream(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sampling = true
	d := newDriver(cfg)

	d.press(500 * time.Millisecond)
	require.NotEmpty(t, d.events)
	assert.Equal(t, EventHeldBegin, d.events[0])
	for _, ev := range d.events[1:] {
		assert.Equal(t, EventHeldTick, ev)
	}
	assert.True(t, d.c.Sampling())

	d.idle(time.Second)
	assert.Equal(t, EventReleased, d.events[len(d.events)-1])
	assert.Equal(t, 1, d.count(EventHeldBegin))
	assert.Equal(t, 1, d.count(EventReleased))
	assert.False(t, d.c.Sampling())
}

func TestSamplingNeverYieldsLongPress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sampling = true

	for _, hold := range []time.Duration{time.Second, 1500 * time.Millisecond, 5 * time.Second} {
		d := newDriver(cfg)
		d.press(hold)
		d.idle(time.Second)

		assert.Zero(t, d.count(EventLongPress), "hold=%v", hold)
		assert.Equal(t, 1, d.count(EventReleased), "hold=%v", hold)
	}
}

func TestSamplingClicksStillWork(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sampling = true
	d := newDriver(cfg)

	d.press(100 * time.Millisecond)
	d.idle(time.Second)
	d.press(100 * time.Millisecond)
	d.idle(100 * time.Millisecond)
	d.press(100 * time.Millisecond)
	d.idle(time.Second)

	assert.Equal(t, []Event{EventSingleClick, EventDoubleClick}, d.events)
}

func TestReset(t *testing.T) {
	c := New(DefaultConfig())
	t0 := time.Unix(0, 0)
	c.Poll(true, t0)
	c.Poll(false, t0.Add(100*time.Millisecond))
	c.Reset()

	assert.False(t, c.Pressed())
	assert.Equal(t, EventNone, c.Poll(false, t0.Add(time.Second)))
	assert.Equal(t, DefaultDoubleClickWindow, c.Config().DoubleClickWindow)
}

func TestConfigDefaultsFillZeroes(t *testing.T) {
	c := New(Config{Sampling: true})
	cfg := c.Config()
	assert.Equal(t, DefaultDebounce, cfg.Debounce)
	assert.Equal(t, DefaultLongPress, cfg.LongPress)
	assert.Equal(t, DefaultSamplingEntry, cfg.SamplingEntry)
	assert.Equal(t, DefaultDoubleClickWindow, cfg.DoubleClickWindow)
	assert.True(t, cfg.Sampling)
}

// Every pattern below mixes bounce, clicks and holds; Poll's single return value
// already bounds events per tick, so this checks the sequences stay well formed.
func TestEventOrderingPerPress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sampling = true
	d := newDriver(cfg)

	pattern := []time.Duration{30, 120, 80, 260, 20, 700, 60, 1300, 45, 90}
	for i, ms := range pattern {
		d.press(ms * time.Millisecond)
		d.idle(time.Duration(40+i*50) * time.Millisecond)
	}
	d.idle(time.Second)

	inHold := false
	for _, ev := range d.events {
		switch ev {
		case EventHeldBegin:
			require.False(t, inHold)
			inHold = true
		case EventHeldTick:
			require.True(t, inHold)
		case EventReleased:
			require.True(t, inHold)
			inHold = false
		case EventLongPress:
			t.Fatalf("unexpected long press with sampling enabled")
		}
	}
	assert.False(t, inHold)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "double-click", EventDoubleClick.String())
	assert.Equal(t, "unknown", Event(99).String())
}

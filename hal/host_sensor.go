//go:build !tinygo

package hal

import (
	"sync"
	"time"

	"colorpicky/internal/colors"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// simSensor stands in for the TCS34725 on the host. It walks the hue wheel in
// fixed steps, holding each hue long enough to be captured, and sweeps through a
// few gray levels once per revolution.
type simSensor struct {
	mu      sync.Mutex
	now     func() time.Time
	t0      time.Time
	enabled bool

	step  time.Duration
	hues  int
	clear float64
}

const simSensorID = 0x44

func newSimSensor(now func() time.Time) *simSensor {
	if now == nil {
		now = time.Now
	}
	return &simSensor{
		now:   now,
		t0:    now(),
		step:  1500 * time.Millisecond,
		hues:  24,
		clear: 4000,
	}
}

func (s *simSensor) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = true
	return nil
}

func (s *simSensor) Enable() error { return s.Init() }

func (s *simSensor) ReadID() (uint8, error) { return simSensorID, nil }

func (s *simSensor) ReadAll() (colors.Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return colors.Sample{}, ErrSensorAbsent
	}

	n := int(s.now().Sub(s.t0) / s.step)
	if n < 0 {
		n = -n
	}
	slot := n % (s.hues + 3)

	var c colorful.Color
	if slot < s.hues {
		c = colorful.Hsv(float64(slot)*360/float64(s.hues), 0.9, 0.95)
	} else {
		v := []float64{0.05, 0.5, 0.98}[slot-s.hues]
		c = colorful.Color{R: v, G: v, B: v}
	}
	c = c.Clamped()

	return colors.Sample{
		R: uint16(c.R * s.clear),
		G: uint16(c.G * s.clear),
		B: uint16(c.B * s.clear),
		C: uint16(s.clear),
	}, nil
}

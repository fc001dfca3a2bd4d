//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64

	// The headless button presses itself for ClickHold at the start of every
	// ClickPeriod, which reads as a single click per period.
	ClickPeriod time.Duration
	ClickHold   time.Duration
}

// RunHeadless drives the step function from a ticker until ctx is done or the
// tick budget is spent.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 100
	}
	if cfg.ClickPeriod <= 0 {
		cfg.ClickPeriod = 3 * time.Second
	}
	if cfg.ClickHold <= 0 {
		cfg.ClickHold = 150 * time.Millisecond
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHostHAL(newSignalPin("BTN", cfg.ClickPeriod, cfg.ClickHold))
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// Package app wires the HAL to the gesture classifier, the session and the
// screen, and runs the cooperative device loop.
package app

import (
	"fmt"
	"sync"
	"time"

	"colorpicky/hal"
	"colorpicky/internal/gesture"
	"colorpicky/internal/session"
	"colorpicky/internal/ui"
)

// Device is one running ColorPicky. Step must be called from a single goroutine;
// Snapshot may be called from any.
type Device struct {
	cfg Config
	log hal.Logger
	now func() time.Time

	button   hal.Button
	sensor   hal.ColorSensor
	fb       hal.Framebuffer
	renderer *ui.Renderer

	buttons *gesture.Classifier
	session *session.Controller

	sensorOK      bool
	nextRead      time.Time
	splashUntil   time.Time
	renderFailing bool
	halted        bool

	mu   sync.Mutex
	last session.Snapshot
}

// NewDevice initializes the peripherals and shows the boot screen. Peripheral
// failures are logged and the device still starts; only a bad config is an error.
func NewDevice(h hal.HAL, cfg Config) (*Device, error) {
	return newDevice(h, cfg, time.Now)
}

func newDevice(h hal.HAL, cfg Config, now func() time.Time) (*Device, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Device{
		cfg:     cfg,
		now:     now,
		buttons: gesture.New(cfg.Gesture),
	}
	if h != nil {
		d.log = h.Logger()
		d.button = h.Button()
		d.sensor = h.Sensor()
		if disp := h.Display(); disp != nil {
			d.fb = disp.Framebuffer()
		}
	}
	d.session = session.New(d.log)

	if d.fb != nil {
		d.renderer = ui.NewRenderer(ui.NewFBScreen(d.fb), cfg.Title)
	} else {
		d.logf("app: no display")
	}
	if d.button == nil {
		d.logf("app: no button")
	}

	d.initSensor()
	d.bootScreen()

	start := d.now()
	d.splashUntil = start.Add(cfg.Splash)
	d.last = d.session.Snapshot()

	variant := "reduced"
	if cfg.Gesture.Sampling {
		variant = "sampling"
	}
	d.logf("app: ready (tick %s, sensor every %s, %s gestures)", cfg.Tick, cfg.SensorInterval, variant)
	return d, nil
}

func (d *Device) initSensor() {
	if d.sensor == nil {
		d.logf("app: no color sensor")
		return
	}
	if err := d.sensor.Init(); err != nil {
		d.logf("app: sensor init: %v", err)
		return
	}
	if err := d.sensor.Enable(); err != nil {
		d.logf("app: sensor enable: %v", err)
		return
	}
	if t, ok := d.sensor.(hal.SensorTuner); ok {
		if err := t.SetIntegration(uint8(d.cfg.Integration)); err != nil {
			d.logf("app: sensor integration: %v", err)
		}
		if err := t.SetGain(uint8(d.cfg.Gain)); err != nil {
			d.logf("app: sensor gain: %v", err)
		}
	}
	if id, err := d.sensor.ReadID(); err != nil {
		d.logf("app: sensor id: %v", err)
	} else {
		d.logf("app: sensor id 0x%02X", id)
	}
	d.sensorOK = true
}

// Step runs one tick: button, gesture, session, sensor, screen.
func (d *Device) Step() (err error) {
	if d.halted {
		return ErrHalted
	}
	defer d.recoverStep(&err)

	now := d.now()

	pressed := d.button != nil && d.button.Pressed()
	if ev := d.buttons.Poll(pressed, now); ev != gesture.EventNone {
		d.session.Apply(ev)
	}

	if d.session.Mode() == session.ModeMeasuring && d.sensor != nil && !now.Before(d.nextRead) {
		d.nextRead = now.Add(d.cfg.SensorInterval)
		if s, err := d.sensor.ReadAll(); err != nil {
			d.session.SensorFailed(err)
		} else {
			d.session.Observe(s)
		}
	}

	snap := d.session.Snapshot()
	if now.Before(d.splashUntil) {
		d.publish(snap)
		return nil
	}

	kind := d.session.TakeRedraw()
	if d.renderer != nil && kind != session.RedrawNone {
		if err := d.renderer.Render(snap, kind); err != nil {
			if !d.renderFailing {
				d.logf("app: render: %v", err)
			}
			d.renderFailing = true
		} else if d.renderFailing {
			d.renderFailing = false
			d.logf("app: render recovered")
		}
	}

	d.publish(snap)
	return nil
}

// Snapshot returns the session as of the end of the last Step.
func (d *Device) Snapshot() session.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

func (d *Device) publish(s session.Snapshot) {
	d.mu.Lock()
	d.last = s
	d.mu.Unlock()
}

func (d *Device) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.WriteLineString(fmt.Sprintf(format, args...))
}

// New initializes the device with the default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	d, err := NewDevice(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return d.Step
}

// Run starts the device and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func RunWithConfig(h hal.HAL, cfg Config) {
	d, err := NewDevice(h, cfg)
	if err != nil {
		if h != nil && h.Logger() != nil {
			h.Logger().WriteLineString("app: " + err.Error())
		}
		select {}
	}
	for {
		if err := d.Step(); err != nil {
			d.logf("app: stopped: %v", err)
			select {}
		}
		time.Sleep(cfg.Tick)
	}
}

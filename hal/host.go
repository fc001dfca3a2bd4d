//go:build !tinygo

package hal

import (
	"time"

	"colorpicky/internal/logging"

	"go.uber.org/zap"
)

// Panel geometry of the device display; the host mirrors it.
const (
	PanelWidth  = 130
	PanelHeight = 130
)

type hostHAL struct {
	logger *hostLogger
	pin    GPIOPin
	button Button
	fb     *hostFramebuffer
	sensor *simSensor
}

// New returns a host HAL whose button is driven by the keyboard (window mode).
func New() HAL {
	return newHostHAL(newVirtualPin("BTN", GPIOCapInput|GPIOCapPullDown))
}

// newHostHAL builds the host devices around the given button input.
func newHostHAL(pin GPIOPin) *hostHAL {
	logger := &hostLogger{log: logging.New("hal")}
	btn, err := NewButton(pin, false)
	if err != nil {
		logger.log.Warnw("button unavailable", zap.Error(err))
		btn = releasedButton{}
	}
	return &hostHAL{
		logger: logger,
		pin:    pin,
		button: btn,
		fb:     newHostFramebuffer(PanelWidth, PanelHeight),
		sensor: newSimSensor(time.Now),
	}
}

func (h *hostHAL) Logger() Logger      { return h.logger }
func (h *hostHAL) Display() Display    { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Button() Button      { return h.button }
func (h *hostHAL) Sensor() ColorSensor { return h.sensor }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	log *zap.SugaredLogger
}

func (l *hostLogger) WriteLineString(s string) {
	l.log.Info(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.log.Info(string(b))
}

func (l *hostLogger) DebugLineString(s string) {
	l.log.Debug(s)
}

type releasedButton struct{}

func (releasedButton) Pressed() bool { return false }

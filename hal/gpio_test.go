package hal

import (
	"errors"
	"testing"
	"time"
)

func TestSignalPinRead(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	pin := newSignalPinWithClock("SIG", 10*time.Second, 2*time.Second, clock)
	if pin == nil {
		t.Fatal("expected pin")
	}

	level, err := pin.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !level {
		t.Fatal("expected high at t=0")
	}

	now = now.Add(3 * time.Second)
	level, err = pin.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if level {
		t.Fatal("expected low at t=3s")
	}

	now = now.Add(8 * time.Second) // t=11s => phase 1s, high again
	level, err = pin.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !level {
		t.Fatal("expected high at t=11s")
	}
}

func TestButtonActiveLow(t *testing.T) {
	pin := newVirtualPin("BTN", GPIOCapInput|GPIOCapPullUp)
	btn, err := NewButton(pin, true)
	if err != nil {
		t.Fatalf("NewButton: %v", err)
	}
	if btn.Pressed() {
		t.Fatal("pulled-up idle pin should read released")
	}

	pin.drive(false)
	if !btn.Pressed() {
		t.Fatal("low level should read pressed")
	}
}

func TestButtonActiveHigh(t *testing.T) {
	pin := newVirtualPin("BTN", GPIOCapInput)
	btn, err := NewButton(pin, false)
	if err != nil {
		t.Fatalf("NewButton: %v", err)
	}
	if btn.Pressed() {
		t.Fatal("expected released")
	}
	pin.drive(true)
	if !btn.Pressed() {
		t.Fatal("expected pressed")
	}
}

type failingPin struct{ virtualPin }

func (p *failingPin) Read() (bool, error) { return true, errors.New("bus fault") }

func TestButtonReadErrorIsReleased(t *testing.T) {
	pin := &failingPin{virtualPin: virtualPin{name: "BAD", caps: GPIOCapInput}}
	btn, err := NewButton(pin, false)
	if err != nil {
		t.Fatalf("NewButton: %v", err)
	}
	if btn.Pressed() {
		t.Fatal("read error must map to released")
	}
}

func TestNewButtonRejectsOutputOnlyPin(t *testing.T) {
	pin := newVirtualPin("OUT", GPIOCapOutput)
	if _, err := NewButton(pin, false); err == nil {
		t.Fatal("expected configure error")
	}
	if _, err := NewButton(nil, false); err == nil {
		t.Fatal("expected error for nil pin")
	}
}

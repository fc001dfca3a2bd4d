package hal

import (
	"bytes"
	"errors"
	"testing"

	"colorpicky/internal/colors"
)

type txRecord struct {
	addr uint16
	w    []byte
	rlen int
}

// fakeBus answers reads from a register image and records every transfer.
type fakeBus struct {
	regs [0x20]byte
	txs  []txRecord
	err  error
}

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	b.txs = append(b.txs, txRecord{addr: addr, w: append([]byte(nil), w...), rlen: len(r)})
	if b.err != nil {
		return b.err
	}
	if len(w) == 0 {
		return nil
	}
	reg := w[0] &^ tcsCommandBit
	if len(w) > 1 {
		copy(b.regs[reg:], w[1:])
		return nil
	}
	copy(r, b.regs[reg:])
	return nil
}

func (b *fakeBus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{r}, buf)
}

func (b *fakeBus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	return b.Tx(uint16(addr), append([]byte{r}, buf...), nil)
}

func TestTCS34725Init(t *testing.T) {
	bus := &fakeBus{}
	d := NewTCS34725(bus)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if len(bus.txs) != 1 {
		t.Fatalf("expected 1 transfer, got %d", len(bus.txs))
	}
	tx := bus.txs[0]
	if tx.addr != 0x29 {
		t.Fatalf("addr = 0x%02x, want 0x29", tx.addr)
	}
	if !bytes.Equal(tx.w, []byte{0x80, 0x03}) {
		t.Fatalf("write = % x, want 80 03", tx.w)
	}
}

func TestTCS34725ReadAll(t *testing.T) {
	bus := &fakeBus{}
	copy(bus.regs[tcsRegCDataL:], []byte{
		0xE8, 0x03, // C = 1000
		0xF4, 0x01, // R = 500
		0xFA, 0x00, // G = 250
		0x64, 0x00, // B = 100
	})
	d := NewTCS34725(bus)

	s, err := d.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	want := colors.Sample{R: 500, G: 250, B: 100, C: 1000}
	if s != want {
		t.Fatalf("ReadAll = %+v, want %+v", s, want)
	}
	if got := bus.txs[0].w; !bytes.Equal(got, []byte{0x94}) {
		t.Fatalf("command = % x, want 94", got)
	}
	if bus.txs[0].rlen != 8 {
		t.Fatalf("read len = %d, want 8", bus.txs[0].rlen)
	}
}

func TestTCS34725ReadID(t *testing.T) {
	bus := &fakeBus{}
	bus.regs[tcsRegID] = 0x44
	id, err := NewTCS34725(bus).ReadID()
	if err != nil {
		t.Fatalf("ReadID: %v", err)
	}
	if id != 0x44 {
		t.Fatalf("id = 0x%02x, want 0x44", id)
	}
}

func TestTCS34725BusError(t *testing.T) {
	nack := errors.New("nack")
	d := NewTCS34725(&fakeBus{err: nack})

	if _, err := d.ReadAll(); !errors.Is(err, nack) {
		t.Fatalf("ReadAll err = %v, want wrapped nack", err)
	}
	if err := d.Enable(); !errors.Is(err, nack) {
		t.Fatalf("Enable err = %v, want wrapped nack", err)
	}
}

func TestTCS34725NoBus(t *testing.T) {
	d := NewTCS34725(nil)
	if err := d.Init(); !errors.Is(err, ErrSensorAbsent) {
		t.Fatalf("Init err = %v, want ErrSensorAbsent", err)
	}
	if _, err := d.ReadAll(); !errors.Is(err, ErrSensorAbsent) {
		t.Fatalf("ReadAll err = %v, want ErrSensorAbsent", err)
	}
}

func TestTCS34725Gain(t *testing.T) {
	bus := &fakeBus{}
	d := NewTCS34725(bus)
	if err := d.SetGain(0xFF); err != nil {
		t.Fatalf("SetGain: %v", err)
	}
	if got := bus.txs[0].w; !bytes.Equal(got, []byte{0x8F, 0x03}) {
		t.Fatalf("write = % x, want 8f 03", got)
	}
}

func TestTCS34725Integration(t *testing.T) {
	bus := &fakeBus{}
	d := NewTCS34725(bus)
	if err := d.SetIntegration(TCS34725Integration50ms); err != nil {
		t.Fatalf("SetIntegration: %v", err)
	}
	if got := bus.txs[0].w; !bytes.Equal(got, []byte{0x81, 0xEB}) {
		t.Fatalf("write = % x, want 81 eb", got)
	}
	if bus.regs[tcsRegATime] != 0xEB {
		t.Fatalf("ATIME = 0x%02x, want 0xeb", bus.regs[tcsRegATime])
	}
	if err := NewTCS34725(nil).SetIntegration(0xFF); !errors.Is(err, ErrSensorAbsent) {
		t.Fatalf("SetIntegration without bus err = %v, want ErrSensorAbsent", err)
	}
}

//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"time"
)

// ssd1283a is the 130x130 panel. The visible area starts 2 pixels into GRAM.
type ssd1283a struct {
	spi *machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	txBuf []byte
}

const ssd1283aOffset = 2

func initSSD1283A() (*ssd1283a, error) {
	if machine.SPI0 == nil {
		return nil, errors.New("SPI0 unavailable")
	}
	if err := machine.SPI0.Configure(machine.SPIConfig{
		SCK:       pinLCDSCK,
		SDO:       pinLCDSDO,
		Frequency: 4_000_000,
	}); err != nil {
		return nil, err
	}

	lcd := &ssd1283a{
		spi:   machine.SPI0,
		cs:    pinLCDCS,
		dc:    pinLCDDC,
		rst:   pinLCDRST,
		txBuf: make([]byte, 512),
	}

	lcd.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.cs.High()
	lcd.dc.High()
	lcd.rst.High()

	lcd.reset()
	lcd.init()
	return lcd, nil
}

func (d *ssd1283a) reset() {
	d.cs.High()
	d.rst.High()
	time.Sleep(5 * time.Millisecond)
	d.rst.Low()
	time.Sleep(2 * time.Millisecond)
	d.rst.High()
	time.Sleep(200 * time.Millisecond)
}

func (d *ssd1283a) init() {
	// Power and oscillator.
	d.reg(0x10, 0x2F8E)
	d.reg(0x11, 0x000C)
	d.reg(0x07, 0x0021)
	d.reg(0x28, 0x0006)
	d.reg(0x28, 0x0005)
	d.reg(0x27, 0x057F)
	d.reg(0x29, 0x89A1)
	d.reg(0x00, 0x0001)
	time.Sleep(100 * time.Millisecond)

	d.reg(0x29, 0x80B0)
	time.Sleep(30 * time.Millisecond)

	d.reg(0x29, 0xFFFE)
	d.reg(0x07, 0x0223)
	time.Sleep(30 * time.Millisecond)

	// Display on, driver output, entry mode (RGB order), gamma.
	d.reg(0x07, 0x0233)
	d.reg(0x01, 0x2183)
	d.reg(0x03, 0x6030)
	d.reg(0x2F, 0xFFFF)
	d.reg(0x2C, 0x8000)
	d.reg(0x27, 0x0570)
	d.reg(0x02, 0x0300)
	d.reg(0x0B, 0x580C)
	d.reg(0x12, 0x0609)
	d.reg(0x13, 0x3100)
	time.Sleep(50 * time.Millisecond)
}

// reg writes a command byte followed by a 16-bit big-endian value.
func (d *ssd1283a) reg(cmd byte, value uint16) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	d.spi.Tx([]byte{byte(value >> 8), byte(value)}, nil)
	d.cs.High()
}

// setWindow selects the GRAM rectangle and leaves the bus in data mode after
// the write-GRAM command. The caller must raise CS when done.
func (d *ssd1283a) setWindow(x0, y0, x1, y1 uint16) {
	d.reg(0x44, (x1+ssd1283aOffset)<<8|(x0+ssd1283aOffset))
	d.reg(0x45, (y1+ssd1283aOffset)<<8|(y0+ssd1283aOffset))
	d.reg(0x21, (y0+ssd1283aOffset)<<8|(x0+ssd1283aOffset))

	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{0x22}, nil)
	d.dc.High()
}

// blit streams a little-endian RGB565 buffer; the panel takes the same byte order.
func (d *ssd1283a) blit(buf []byte, w, h int) error {
	if w <= 0 || h <= 0 || len(buf) < w*h*2 {
		return errors.New("invalid framebuffer")
	}

	d.setWindow(0, 0, uint16(w-1), uint16(h-1))
	total := w * h * 2
	for off := 0; off < total; {
		n := len(d.txBuf)
		if remain := total - off; n > remain {
			n = remain
		}
		copy(d.txBuf[:n], buf[off:off+n])
		d.spi.Tx(d.txBuf[:n], nil)
		off += n
	}
	d.cs.High()
	return nil
}

// panelFramebuffer keeps a full RGB565 frame in RAM and sends it on Present.
type panelFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd *ssd1283a
}

func newPanelFramebuffer(lcd *ssd1283a) *panelFramebuffer {
	const w = 130
	const h = 130
	return &panelFramebuffer{
		w:      w,
		h:      h,
		stride: w * 2,
		buf:    make([]byte, w*h*2),
		lcd:    lcd,
	}
}

func (f *panelFramebuffer) Width() int          { return f.w }
func (f *panelFramebuffer) Height() int         { return f.h }
func (f *panelFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *panelFramebuffer) StrideBytes() int    { return f.stride }
func (f *panelFramebuffer) Buffer() []byte      { return f.buf }

func (f *panelFramebuffer) ClearRGB(r, g, b uint8) {
	fillRGB565(f.buf, RGB565(r, g, b))
}

func (f *panelFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	return f.lcd.blit(f.buf, f.w, f.h)
}

// Package colors holds the color types shared by the sensor, the matcher and the UI,
// plus the nearest-neighbor palette matcher itself.
package colors

import (
	"fmt"
	"image/color"
)

// Sample is a raw RGBC reading from the light sensor. C is the clear (brightness) channel.
type Sample struct {
	R uint16
	G uint16
	B uint16
	C uint16
}

// RGB is an 8-bit per channel color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Hex returns the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA returns the opaque image/color form used by the drawing code.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// NamedColor is a palette label plus a color. It is a plain value; copies are independent.
type NamedColor struct {
	Name string
	RGB  RGB
}

// Normalize scales the color channels against the clear channel to 0..255.
//
// ok is false when C is zero; such samples carry no usable data. A color channel
// that reads higher than the clear channel saturates at 255.
func Normalize(s Sample) (c RGB, ok bool) {
	if s.C == 0 {
		return RGB{}, false
	}
	return RGB{
		R: scale(s.R, s.C),
		G: scale(s.G, s.C),
		B: scale(s.B, s.C),
	}, true
}

func scale(v, clear uint16) uint8 {
	n := uint32(v) * 255 / uint32(clear)
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// Classify normalizes s and labels it with the nearest Default palette entry.
//
// The returned color keeps the measured RGB, not the palette reference, so the
// swatch shows what the sensor saw.
func Classify(s Sample) (NamedColor, bool) {
	c, ok := Normalize(s)
	if !ok {
		return NamedColor{}, false
	}
	return NamedColor{Name: Match(c.R, c.G, c.B), RGB: c}, true
}

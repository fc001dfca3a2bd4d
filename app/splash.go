package app

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"colorpicky/internal/buildinfo"
	"colorpicky/internal/ui"
)

// bootScreen paints the title, build and sensor status. The first full redraw
// replaces it once the splash time is over.
func (d *Device) bootScreen() {
	if d.fb == nil {
		return
	}
	d.fb.ClearRGB(0, 0, 0)

	screen := ui.NewFBScreen(d.fb)
	font := &proggy.TinySZ8pt7b
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	dim := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}

	title := d.cfg.Title
	if title == "" {
		title = ui.DefaultTitle
	}
	sensor := "sensor: ok"
	if !d.sensorOK {
		sensor = "sensor: missing"
	}

	tinyfont.WriteLine(screen, font, 10, 40, title, fg)
	tinyfont.WriteLine(screen, font, 10, 60, buildinfo.Short(), dim)
	tinyfont.WriteLine(screen, font, 10, 80, sensor, dim)
	if err := screen.Display(); err != nil {
		d.logf("app: boot screen: %v", err)
	}
}

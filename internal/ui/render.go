// Package ui paints the two device screens.
package ui

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"colorpicky/internal/session"
)

// DefaultTitle heads the Measuring screen.
const DefaultTitle = "ColorPicky"

const (
	titleY = 10
	// bodyY is the first row below the title; partial redraws clear from here.
	bodyY = 14

	swatchX = 17
	swatchY = 18
	swatchW = 95
	swatchH = 55

	textX       = 10
	nameY       = 88
	hexY        = 100
	rgbY        = 112
	placeholder = "Place on color..."
	placeholdY  = 60

	indicatorX    = 120
	indicatorY    = 120
	indicatorSize = 6

	historyTitle   = "History"
	historyX       = 5
	historyFirstY  = 22
	historyStep    = 11
	historySwatchX = 110
	historySwatch  = 10
)

var (
	colorBackground = color.RGBA{A: 0xFF}
	colorTitle      = color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}
	colorText       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorDim        = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	colorSampling   = color.RGBA{R: 0xFF, G: 0x30, B: 0x30, A: 0xFF}
)

// Renderer draws session snapshots on a Screen.
type Renderer struct {
	screen Screen
	font   tinyfont.Fonter
	title  string
}

func NewRenderer(screen Screen, title string) *Renderer {
	if title == "" {
		title = DefaultTitle
	}
	return &Renderer{
		screen: screen,
		font:   &proggy.TinySZ8pt7b,
		title:  title,
	}
}

// Render applies one redraw decision and presents the result. RedrawNone does
// nothing. A partial redraw only repaints the Measuring reading area.
func (r *Renderer) Render(snap session.Snapshot, kind session.Redraw) error {
	switch kind {
	case session.RedrawNone:
		return nil
	case session.RedrawFull:
		w, h := r.screen.Size()
		if err := r.screen.FillRectangle(0, 0, w, h, colorBackground); err != nil {
			return fmt.Errorf("ui: clear: %w", err)
		}
		if snap.Mode == session.ModeHistory {
			r.drawHistory(snap)
		} else {
			r.text(centerX(r, r.title), titleY, r.title, colorTitle)
			r.drawReading(snap)
		}
	case session.RedrawPartial:
		if snap.Mode != session.ModeMeasuring {
			return nil
		}
		w, h := r.screen.Size()
		if err := r.screen.FillRectangle(0, bodyY, w, h-bodyY, colorBackground); err != nil {
			return fmt.Errorf("ui: clear: %w", err)
		}
		r.drawReading(snap)
	default:
		return nil
	}

	if err := r.screen.Display(); err != nil {
		return fmt.Errorf("ui: present: %w", err)
	}
	return nil
}

func (r *Renderer) drawReading(snap session.Snapshot) {
	if !snap.HasCurrent {
		r.text(textX, placeholdY, placeholder, colorDim)
	} else {
		c := snap.Current.RGB
		_ = r.screen.FillRectangle(swatchX, swatchY, swatchW, swatchH, c.RGBA())
		r.text(textX, nameY, snap.Current.Name, colorText)
		r.text(textX, hexY, c.Hex(), colorText)
		r.text(textX, rgbY, fmt.Sprintf("R:%d G:%d B:%d", c.R, c.G, c.B), colorDim)
	}
	if snap.Sampling {
		_ = r.screen.FillRectangle(indicatorX, indicatorY, indicatorSize, indicatorSize, colorSampling)
	}
}

func (r *Renderer) drawHistory(snap session.Snapshot) {
	r.text(centerX(r, historyTitle), titleY, historyTitle, colorTitle)

	n := snap.History.Len()
	if n == 0 {
		r.text(historyX, historyFirstY, "Empty", colorDim)
		return
	}
	y := int16(historyFirstY)
	for i := 0; i < n; i++ {
		c, ok := snap.History.At(i)
		if !ok {
			continue
		}
		r.text(historyX, y, fmt.Sprintf("%d. %s", i+1, c.Name), colorText)
		_ = r.screen.FillRectangle(historySwatchX, y-historySwatch+1, historySwatch, historySwatch, c.RGB.RGBA())
		y += historyStep
	}
}

// text draws s with its baseline at y.
func (r *Renderer) text(x, y int16, s string, c color.RGBA) {
	tinyfont.WriteLine(r.screen, r.font, x, y, s, c)
}

func centerX(r *Renderer, s string) int16 {
	w, _ := r.screen.Size()
	lw, _ := tinyfont.LineWidth(r.font, s)
	x := (int(w) - int(lw)) / 2
	if x < 0 {
		x = 0
	}
	return int16(x)
}

package app

import (
	"errors"
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"colorpicky/internal/ui"
)

// ErrHalted is returned by Step after a panic stopped the loop.
var ErrHalted = errors.New("device halted")

const (
	faultLineHeight = 10
	faultBaseline   = 8
)

// recoverStep turns a panic inside Step into ErrHalted, logs it and paints the
// fault screen. The device stays halted afterwards.
func (d *Device) recoverStep(errp *error) {
	v := recover()
	if v == nil {
		return
	}
	d.halted = true

	stack := debug.Stack()
	d.logf("app: panic: %v", v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		d.logf("%s", line)
	}

	d.faultScreen([]string{
		"ColorPicky halted",
		fmt.Sprintf("panic: %v", v),
	})
	*errp = fmt.Errorf("%w: %v", ErrHalted, v)
}

func (d *Device) faultScreen(lines []string) {
	if d.fb == nil {
		return
	}
	d.fb.ClearRGB(255, 255, 255)

	screen := ui.NewFBScreen(d.fb)
	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	cols := int16(1)
	if outboxWidth > 0 {
		cols = int16(d.fb.Width()) / int16(outboxWidth)
	}

	fg := color.RGBA{A: 255}
	y := int16(0)
	maxH := int16(d.fb.Height())
	for _, line := range lines {
		for len(line) > 0 {
			if y+faultLineHeight > maxH {
				_ = screen.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(screen, font, 2, y+faultBaseline, chunk, fg)
			y += faultLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = screen.Display()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}

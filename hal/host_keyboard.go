//go:build !tinygo && cgo

package hal

import "github.com/hajimehoshi/ebiten/v2"

// hostKeys maps the space bar and Enter onto the button pin.
type hostKeys struct {
	pin GPIOPin
}

func newHostKeys(pin GPIOPin) *hostKeys {
	return &hostKeys{pin: pin}
}

func (k *hostKeys) poll() {
	vp, ok := k.pin.(*virtualPin)
	if !ok {
		return
	}
	vp.drive(ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyEnter))
}

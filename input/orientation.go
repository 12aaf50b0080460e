package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tiltfall/common"
)

// OrientationProvider supplies a device-orientation reading each frame.
type OrientationProvider interface {
	Read() Orientation
}

const (
	keyTiltRate  = 90.0 // degrees per second while a key is held
	keyTiltLimit = 60.0 // max simulated tilt in degrees
	tickSeconds  = 1.0 / 60.0
)

// KeyboardOrientation simulates a tilt sensor on desktop: arrow keys (or
// WASD) lean the virtual device, R levels it out.
type KeyboardOrientation struct {
	current Orientation
}

func NewKeyboardOrientation() *KeyboardOrientation {
	return &KeyboardOrientation{}
}

func (k *KeyboardOrientation) Read() Orientation {
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		k.current = Orientation{}
		return k.current
	}

	step := keyTiltRate * tickSeconds
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		k.current.Alpha += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		k.current.Alpha -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		k.current.Beta += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		k.current.Beta -= step
	}

	k.current.Alpha = common.Clamp(k.current.Alpha, -keyTiltLimit, keyTiltLimit)
	k.current.Beta = common.Clamp(k.current.Beta, -keyTiltLimit, keyTiltLimit)
	return k.current
}

// Package particles is a small pooled emitter used for the thrust
// indicator. Emission mirrors the controller's intent every frame.
package particles

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	emitRate     = 90.0 // particles per second while emitting
	particleLife = 0.45 // seconds
	spreadRad    = 0.5  // half-angle of the emission cone
	baseSpeed    = 220.0
)

type particle struct {
	x, y   float64
	vx, vy float64
	life   float64
}

// Emitter spawns short-lived particles behind the player while the
// thrust input is active.
type Emitter struct {
	rng      *rand.Rand
	emitting bool
	carry    float64
	pool     []particle
}

func NewEmitter() *Emitter {
	return &Emitter{rng: rand.New(rand.NewSource(rand.Int63()))}
}

// SetEmitting toggles emission. Called every frame with the current
// intent, so repeated calls with the same value are expected.
func (e *Emitter) SetEmitting(on bool) {
	e.emitting = on
}

func (e *Emitter) Emitting() bool { return e.emitting }

// Update ages live particles and, while emitting, spawns new ones at
// (x, y) directed along angle (the player's backward axis).
func (e *Emitter) Update(dt, x, y, angle float64) {
	if dt <= 0 {
		return
	}

	kept := e.pool[:0]
	for _, p := range e.pool {
		p.life -= dt
		if p.life <= 0 {
			continue
		}
		p.x += p.vx * dt
		p.y += p.vy * dt
		kept = append(kept, p)
	}
	e.pool = kept

	if !e.emitting {
		e.carry = 0
		return
	}

	e.carry += emitRate * dt
	for e.carry >= 1 {
		e.carry--
		a := angle + (e.rng.Float64()*2-1)*spreadRad
		speed := baseSpeed * (0.6 + 0.4*e.rng.Float64())
		e.pool = append(e.pool, particle{
			x:    x,
			y:    y,
			vx:   math.Cos(a) * speed,
			vy:   math.Sin(a) * speed,
			life: particleLife,
		})
	}
}

// Live returns the number of live particles.
func (e *Emitter) Live() int { return len(e.pool) }

// Draw renders the particles in screen space, offset by the camera's
// top-left corner.
func (e *Emitter) Draw(screen *ebiten.Image, camX, camY float64) {
	for _, p := range e.pool {
		alpha := uint8(255 * p.life / particleLife)
		radius := float32(1.5 + 2.5*p.life/particleLife)
		vector.DrawFilledCircle(
			screen,
			float32(p.x-camX),
			float32(p.y-camY),
			radius,
			color.NRGBA{R: 0xff, G: 0xb0, B: 0x40, A: alpha},
			true,
		)
	}
}

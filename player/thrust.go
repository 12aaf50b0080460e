package player

import (
	"errors"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/tiltfall/common"
	"github.com/milk9111/tiltfall/gamestate"
	"github.com/milk9111/tiltfall/input"
)

// ThrustConfig tunes the pointer-steered variant.
type ThrustConfig struct {
	// Thrust is the force magnitude in px/s^2 per unit mass.
	Thrust float64
	// SlerpRate scales how quickly the body turns to face the aim
	// point, in fractions of the remaining arc per second.
	SlerpRate float64
	// CameraLerp stiffens the camera's follow.
	CameraLerp float64
}

// Intent is the distilled per-frame steering command. Active means a
// pointer or touch is currently down; AimX and AimY are in screen
// space.
type Intent struct {
	Active bool
	AimX   float64
	AimY   float64
}

// EmitterToggle is what the thrust controller needs from the exhaust
// particle emitter.
type EmitterToggle interface {
	SetEmitting(bool)
}

// ThrustController steers the body by burning toward wherever the
// pointer is held. The body faces the aim point and the force pushes
// out its back, so releasing the pointer leaves it coasting.
type ThrustController struct {
	body          *cp.Body
	state         StateSource
	cam           *Camera
	emitter       EmitterToggle
	screenToWorld func(sx, sy float64) (float64, float64)
	cfg           ThrustConfig

	intent Intent
}

func NewThrustController(body *cp.Body, state StateSource, cam *Camera, emitter EmitterToggle, cfg ThrustConfig) (*ThrustController, error) {
	if body == nil || state == nil || cam == nil || emitter == nil {
		return nil, errors.New("thrust controller requires body, state source, camera, and emitter")
	}
	return &ThrustController{
		body:          body,
		state:         state,
		cam:           cam,
		emitter:       emitter,
		screenToWorld: cam.ScreenToWorld,
		cfg:           cfg,
	}, nil
}

// SampleInput rebuilds the intent from scratch every frame. A held
// mouse button sets the aim first, then any down touch overrides it,
// last touch winning, so multitouch hands control to the most recent
// finger.
func (t *ThrustController) SampleInput(in input.Snapshot, dt float64) {
	t.intent = Intent{}
	if t.state.Current() != gamestate.Playing {
		return
	}
	if in.PointerPresent && in.PointerHeld {
		t.intent = Intent{Active: true, AimX: in.PointerX, AimY: in.PointerY}
	}
	for _, touch := range in.Touches {
		if touch.Down() {
			t.intent = Intent{Active: true, AimX: touch.X, AimY: touch.Y}
		}
	}
}

// IntegratePhysics applies the thrust for this fixed step. As with the
// tilt variant the force is set every step so a stale burn cannot
// outlive its input.
func (t *ThrustController) IntegratePhysics(fixedDt float64) {
	var force cp.Vector
	if t.intent.Active {
		a := t.body.Angle()
		force = cp.Vector{X: -math.Cos(a), Y: -math.Sin(a)}.Mult(t.cfg.Thrust * t.body.Mass())
	}
	t.body.SetForce(force)
}

// UpdatePresentation turns the body toward the aim point, follows it
// with the camera, and mirrors the intent onto the exhaust emitter.
func (t *ThrustController) UpdatePresentation(dt float64) {
	t.emitter.SetEmitting(t.intent.Active)

	pos := t.body.Position()
	t.cam.Follow(pos.X, pos.Y, t.cfg.CameraLerp, dt)

	if !t.intent.Active {
		return
	}
	wx, wy := t.screenToWorld(t.intent.AimX, t.intent.AimY)
	dx, dy := wx-pos.X, wy-pos.Y
	if dx == 0 && dy == 0 {
		return
	}
	facing := math.Atan2(dy, dx)
	t.body.SetAngle(common.LerpAngle(t.body.Angle(), facing, t.cfg.SlerpRate*dt))
}

// Retune swaps in new tuning values, used by config hot reload.
func (t *ThrustController) Retune(cfg ThrustConfig) {
	t.cfg = cfg
}

// Intent exposes the current steering command for the HUD's debug
// readout.
func (t *ThrustController) Intent() Intent {
	return t.intent
}

package player

import (
	"errors"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/tiltfall/common"
	"github.com/milk9111/tiltfall/gamestate"
	"github.com/milk9111/tiltfall/input"
)

// TiltConfig tunes the orientation-steered variant.
type TiltConfig struct {
	// Gravity is the magnitude of the steering force in px/s^2 per unit
	// mass.
	Gravity float64
	// FilterFactor scales the per-frame orientation low-pass blend.
	FilterFactor float64
	// SlerpFactor is the fraction of the remaining arc the body rotates
	// toward the camera roll each frame.
	SlerpFactor float64
	// DtScaledSlerp multiplies SlerpFactor by dt instead of applying it
	// as a fixed per-frame fraction.
	DtScaledSlerp bool
	// CameraLerp stiffens the camera's follow.
	CameraLerp float64
}

// TiltController steers the body by rotating its gravity vector to
// match the smoothed device orientation. The body free-falls along the
// rotated "down".
type TiltController struct {
	body  *cp.Body
	state StateSource
	cam   *Camera
	cfg   TiltConfig

	smoothed input.Orientation
}

func NewTiltController(body *cp.Body, state StateSource, cam *Camera, cfg TiltConfig) (*TiltController, error) {
	if body == nil {
		return nil, errors.New("tilt controller requires a body")
	}
	if state == nil {
		return nil, errors.New("tilt controller requires a state source")
	}
	if cam == nil {
		return nil, errors.New("tilt controller requires a camera")
	}
	return &TiltController{body: body, state: state, cam: cam, cfg: cfg}, nil
}

// SampleInput low-passes the raw orientation readings. The smoothed
// angles hold their last value outside of play so the body does not
// jerk when a round starts.
func (t *TiltController) SampleInput(in input.Snapshot, dt float64) {
	if t.state.Current() != gamestate.Playing {
		return
	}
	blend := common.Clamp(t.cfg.FilterFactor*dt, 0, 1)
	t.smoothed.Alpha = common.Lerp(t.smoothed.Alpha, in.Orientation.Alpha, blend)
	t.smoothed.Beta = common.Lerp(t.smoothed.Beta, in.Orientation.Beta, blend)
	t.smoothed.Gamma = common.Lerp(t.smoothed.Gamma, in.Orientation.Gamma, blend)
}

// IntegratePhysics applies the steering force for this fixed step. It
// runs every step regardless of phase; outside of play the force is
// zero, which also clears any force left from the last played frame.
func (t *TiltController) IntegratePhysics(fixedDt float64) {
	var force cp.Vector
	if t.state.Current() == gamestate.Playing {
		a := t.body.Angle()
		force = cp.Vector{X: -math.Sin(a), Y: math.Cos(a)}.Mult(t.cfg.Gravity * t.body.Mass())
	}
	t.body.SetForce(force)
}

// UpdatePresentation rolls the camera to the smoothed orientation,
// follows the body, and slerps the body's angle toward the roll.
func (t *TiltController) UpdatePresentation(dt float64) {
	t.cam.Roll = t.smoothed.Alpha * math.Pi / 180
	pos := t.body.Position()
	t.cam.Follow(pos.X, pos.Y, t.cfg.CameraLerp, dt)

	factor := t.cfg.SlerpFactor
	if t.cfg.DtScaledSlerp {
		factor *= dt
	}
	t.body.SetAngle(common.LerpAngle(t.body.Angle(), t.cam.Roll, factor))
}

// Retune swaps in new tuning values, used by config hot reload.
func (t *TiltController) Retune(cfg TiltConfig) {
	t.cfg = cfg
}

// Smoothed exposes the filtered orientation for the HUD's debug
// readout.
func (t *TiltController) Smoothed() input.Orientation {
	return t.smoothed
}

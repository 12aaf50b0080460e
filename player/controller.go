// Package player implements the two player control variants: a
// tilt-steered body whose gravity follows the device orientation, and a
// pointer-steered thruster.
package player

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/tiltfall/gamestate"
	"github.com/milk9111/tiltfall/input"
)

// StateSource is the read-only view of the game phase the controllers
// consult each frame. Injected at construction; controllers never own
// or mutate it.
type StateSource interface {
	Current() gamestate.State
}

// Controller is the per-frame contract shared by both variants. The
// host loop calls SampleInput once per frame, IntegratePhysics once per
// fixed step, and UpdatePresentation once per frame after the state
// update.
type Controller interface {
	SampleInput(in input.Snapshot, dt float64)
	IntegratePhysics(fixedDt float64)
	UpdatePresentation(dt float64)
}

// NewBody creates the player's dynamic circle body in the space.
func NewBody(space *cp.Space, x, y, radius, mass float64) (*cp.Body, *cp.Shape) {
	moment := cp.MomentForCircle(mass, 0, radius, cp.Vector{})
	body := space.AddBody(cp.NewBody(mass, moment))
	body.SetPosition(cp.Vector{X: x, Y: y})

	shape := space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetFriction(0.7)
	shape.SetElasticity(0.2)
	return body, shape
}

package player

import (
	"github.com/milk9111/tiltfall/common"
)

// Camera is the world-space view the game renders through. CenterX and
// CenterY track the followed body; Roll tilts the whole view and is
// what the tilt variant slerps the player body toward.
type Camera struct {
	CenterX float64
	CenterY float64
	Roll    float64
}

// NewCamera starts the view centered on the given point.
func NewCamera(x, y float64) *Camera {
	return &Camera{CenterX: x, CenterY: y}
}

// Follow moves the camera toward the target with an exponential lerp.
// The blend fraction is factor*dt clamped to [0, 1], so a larger factor
// means a stiffer follow.
func (c *Camera) Follow(targetX, targetY, factor, dt float64) {
	t := common.Clamp(factor*dt, 0, 1)
	c.CenterX = common.Lerp(c.CenterX, targetX, t)
	c.CenterY = common.Lerp(c.CenterY, targetY, t)
}

// TopLeft returns the world coordinate of the view's top-left corner.
func (c *Camera) TopLeft() (float64, float64) {
	return c.CenterX - common.BaseWidth/2, c.CenterY - common.BaseHeight/2
}

// ScreenToWorld converts a screen-space point to world space, ignoring
// roll. Roll is presentation only and must not bend input aim.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	tx, ty := c.TopLeft()
	return tx + sx, ty + sy
}

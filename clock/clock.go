// Package clock models the game's two timing domains: scaled game time,
// which freezes when the time scale is zero, and unscaled real time,
// which always advances.
package clock

// Clock is a frame-driven clock. The host loop feeds it the real elapsed
// time once per frame; scaled time is derived from the current time scale.
type Clock struct {
	scale      float64
	dt         float64
	unscaledDt float64
}

func New() *Clock {
	return &Clock{scale: 1}
}

// Tick begins a frame with the real elapsed seconds since the last frame.
func (c *Clock) Tick(realDt float64) {
	if realDt < 0 {
		realDt = 0
	}
	c.unscaledDt = realDt
	c.dt = realDt * c.scale
}

// DeltaTime returns this frame's elapsed game time. Zero while frozen.
func (c *Clock) DeltaTime() float64 { return c.dt }

// UnscaledDeltaTime returns this frame's elapsed real time.
func (c *Clock) UnscaledDeltaTime() float64 { return c.unscaledDt }

// SetTimeScale sets the multiplier applied to game time. The state
// machine uses 0 to freeze gameplay and 1 to resume it.
func (c *Clock) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	c.scale = scale
}

func (c *Clock) TimeScale() float64 { return c.scale }

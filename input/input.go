// Package input samples pointer, touch, and device-orientation readings
// once per frame into an immutable snapshot the game logic consumes.
package input

// TouchPhase mirrors the lifecycle of a touch point.
type TouchPhase int

const (
	PhaseBegan TouchPhase = iota
	PhaseStationary
	PhaseMoved
	PhaseEnded
	PhaseCanceled
)

func (p TouchPhase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseStationary:
		return "stationary"
	case PhaseMoved:
		return "moved"
	case PhaseEnded:
		return "ended"
	case PhaseCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Touch is one touch point in screen coordinates.
type Touch struct {
	ID    int
	Phase TouchPhase
	X, Y  float64
}

// Down reports whether the touch counts as held this frame.
// Ended and canceled touches do not.
func (t Touch) Down() bool {
	switch t.Phase {
	case PhaseBegan, PhaseStationary, PhaseMoved:
		return true
	default:
		return false
	}
}

// Orientation is a device-orientation reading in degrees, following the
// alpha (Z), beta (X), gamma (Y) axis convention.
type Orientation struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// Snapshot is one frame's worth of input. It is plain data: game logic
// never touches the input device directly.
type Snapshot struct {
	Touches        []Touch
	PointerPresent bool
	PointerHeld    bool
	PointerX       float64
	PointerY       float64
	Orientation    Orientation
}

// AnyPress reports whether at least one touch is down or a present
// pointer's primary button is held. This is deliberately level-triggered:
// a held press satisfies it every frame, so adjacent-frame re-triggering
// is possible.
func (s Snapshot) AnyPress() bool {
	for _, t := range s.Touches {
		if t.Down() {
			return true
		}
	}
	return s.PointerPresent && s.PointerHeld
}

// Sampler produces one snapshot per frame.
type Sampler interface {
	Sample() Snapshot
}

// classifyPhase derives a touch phase from press/release edges and
// position movement since the previous frame.
func classifyPhase(began, released, moved bool) TouchPhase {
	switch {
	case released:
		return PhaseEnded
	case began:
		return PhaseBegan
	case moved:
		return PhaseMoved
	default:
		return PhaseStationary
	}
}

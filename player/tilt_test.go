package player

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/tiltfall/gamestate"
	"github.com/milk9111/tiltfall/input"
)

type fixedState struct {
	state gamestate.State
}

func (s *fixedState) Current() gamestate.State { return s.state }

func newTiltRig(t *testing.T, cfg TiltConfig) (*TiltController, *cp.Space, *cp.Body, *fixedState) {
	t.Helper()
	space := cp.NewSpace()
	body, _ := NewBody(space, 0, 0, 16, 1)
	state := &fixedState{state: gamestate.Playing}
	ctrl, err := NewTiltController(body, state, NewCamera(0, 0), cfg)
	if err != nil {
		t.Fatalf("NewTiltController: %v", err)
	}
	return ctrl, space, body, state
}

func TestTiltControllerRequiresCollaborators(t *testing.T) {
	if _, err := NewTiltController(nil, &fixedState{}, NewCamera(0, 0), TiltConfig{}); err == nil {
		t.Fatal("expected error for nil body")
	}
	if _, err := NewTiltController(cp.NewBody(1, 1), nil, NewCamera(0, 0), TiltConfig{}); err == nil {
		t.Fatal("expected error for nil state source")
	}
	if _, err := NewTiltController(cp.NewBody(1, 1), &fixedState{}, nil, TiltConfig{}); err == nil {
		t.Fatal("expected error for nil camera")
	}
}

func TestTiltForceOnlyWhilePlaying(t *testing.T) {
	const h = 1.0 / 60
	ctrl, space, body, state := newTiltRig(t, TiltConfig{Gravity: 420})

	state.state = gamestate.PreGame
	ctrl.IntegratePhysics(h)
	space.Step(h)
	if v := body.Velocity(); v.X != 0 || v.Y != 0 {
		t.Fatalf("body moved outside of play: %v", v)
	}

	state.state = gamestate.Playing
	ctrl.IntegratePhysics(h)
	space.Step(h)
	if v := body.Velocity(); v.Y <= 0 {
		t.Fatalf("expected downward fall while playing, got %v", v)
	}
	if v := body.Velocity(); math.Abs(v.X) > 1e-9 {
		t.Fatalf("level body should fall straight down, got %v", v)
	}
}

func TestTiltForceFollowsBodyAngle(t *testing.T) {
	const h = 1.0 / 60
	ctrl, space, body, _ := newTiltRig(t, TiltConfig{Gravity: 420})

	// Rolled a quarter turn, "down" points along negative X.
	body.SetAngle(math.Pi / 2)
	ctrl.IntegratePhysics(h)
	space.Step(h)

	v := body.Velocity()
	if v.X >= 0 {
		t.Fatalf("expected fall toward negative X at quarter roll, got %v", v)
	}
	if math.Abs(v.Y) > 1e-6 {
		t.Fatalf("expected no vertical fall at quarter roll, got %v", v)
	}
}

func TestTiltSmoothingLowPassesOrientation(t *testing.T) {
	ctrl, _, _, _ := newTiltRig(t, TiltConfig{FilterFactor: 5})

	in := input.Snapshot{Orientation: input.Orientation{Alpha: 30}}
	ctrl.SampleInput(in, 0.1) // blend 0.5
	if got := ctrl.Smoothed().Alpha; math.Abs(got-15) > 1e-9 {
		t.Fatalf("first blend = %v, want 15", got)
	}
	ctrl.SampleInput(in, 0.1)
	if got := ctrl.Smoothed().Alpha; math.Abs(got-22.5) > 1e-9 {
		t.Fatalf("second blend = %v, want 22.5", got)
	}
}

func TestTiltSmoothingHoldsOutsidePlay(t *testing.T) {
	ctrl, _, _, state := newTiltRig(t, TiltConfig{FilterFactor: 5})

	state.state = gamestate.GameOver
	ctrl.SampleInput(input.Snapshot{Orientation: input.Orientation{Alpha: 90}}, 0.1)
	if got := ctrl.Smoothed().Alpha; got != 0 {
		t.Fatalf("smoothing advanced outside of play: %v", got)
	}
}

func TestTiltSlerpConstantFactor(t *testing.T) {
	ctrl, _, body, _ := newTiltRig(t, TiltConfig{SlerpFactor: 0.5})
	ctrl.smoothed.Alpha = 90 // camera roll pi/2

	ctrl.UpdatePresentation(1.0 / 60)
	if got, want := body.Angle(), math.Pi/4; math.Abs(got-want) > 1e-9 {
		t.Fatalf("angle after slerp = %v, want %v", got, want)
	}
	// Same fraction of the remaining arc at any frame time.
	body.SetAngle(0)
	ctrl.UpdatePresentation(1.0 / 10)
	if got, want := body.Angle(), math.Pi/4; math.Abs(got-want) > 1e-9 {
		t.Fatalf("constant-factor slerp should ignore dt, got %v want %v", got, want)
	}
}

func TestTiltSlerpDtScaled(t *testing.T) {
	ctrl, _, body, _ := newTiltRig(t, TiltConfig{SlerpFactor: 2, DtScaledSlerp: true})
	ctrl.smoothed.Alpha = 90

	ctrl.UpdatePresentation(0.1) // factor 0.2
	if got, want := body.Angle(), math.Pi/2*0.2; math.Abs(got-want) > 1e-9 {
		t.Fatalf("dt-scaled slerp = %v, want %v", got, want)
	}
}

func TestCameraFollowsBody(t *testing.T) {
	ctrl, _, body, _ := newTiltRig(t, TiltConfig{CameraLerp: 5})
	body.SetPosition(cp.Vector{X: 100, Y: 200})

	ctrl.UpdatePresentation(0.1) // blend 0.5
	cam := ctrl.cam
	if math.Abs(cam.CenterX-50) > 1e-9 || math.Abs(cam.CenterY-100) > 1e-9 {
		t.Fatalf("camera at (%v, %v), want (50, 100)", cam.CenterX, cam.CenterY)
	}
}

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type point struct {
	x, y int
}

// EbitenSampler reads ebiten's input state. It tracks touch positions
// across frames so it can classify phases the way a mobile input API
// would report them.
type EbitenSampler struct {
	orientation OrientationProvider

	touchIDs []ebiten.TouchID
	prevPos  map[ebiten.TouchID]point
}

// NewEbitenSampler builds a sampler. orientation may be nil when the
// control scheme does not use it.
func NewEbitenSampler(orientation OrientationProvider) *EbitenSampler {
	return &EbitenSampler{
		orientation: orientation,
		prevPos:     make(map[ebiten.TouchID]point),
	}
}

// Sample reads the devices once. Call exactly once per frame.
func (s *EbitenSampler) Sample() Snapshot {
	snap := Snapshot{
		// Desktop builds always have a pointer; ebiten exposes the
		// cursor unconditionally.
		PointerPresent: true,
		PointerHeld:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	cx, cy := ebiten.CursorPosition()
	snap.PointerX = float64(cx)
	snap.PointerY = float64(cy)

	snap.Touches = s.sampleTouches()

	if s.orientation != nil {
		snap.Orientation = s.orientation.Read()
	}
	return snap
}

func (s *EbitenSampler) sampleTouches() []Touch {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	var touches []Touch
	seen := make(map[ebiten.TouchID]struct{}, len(s.touchIDs))

	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		prev, known := s.prevPos[id]
		began := !known || inpututil.TouchPressDuration(id) <= 1
		moved := known && (prev.x != x || prev.y != y)

		touches = append(touches, Touch{
			ID:    int(id),
			Phase: classifyPhase(began, false, moved),
			X:     float64(x),
			Y:     float64(y),
		})
		s.prevPos[id] = point{x, y}
		seen[id] = struct{}{}
	}

	// Touches that disappeared this frame are reported once as ended.
	for id, prev := range s.prevPos {
		if _, ok := seen[id]; ok {
			continue
		}
		touches = append(touches, Touch{
			ID:    int(id),
			Phase: PhaseEnded,
			X:     float64(prev.x),
			Y:     float64(prev.y),
		})
		delete(s.prevPos, id)
	}

	return touches
}

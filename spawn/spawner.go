// Package spawn owns obstacle spawning: a shrinking interval between
// spawns, kinematic obstacle bodies in the physics space, and offscreen
// cleanup. Spawning is started and stopped only by explicit commands
// from the state machine.
package spawn

import (
	"math"
	"math/rand"
	"os"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/tiltfall/common"
	"github.com/milk9111/tiltfall/config"
)

const (
	minObstacleRadius = 14.0
	maxObstacleRadius = 34.0
	reapMargin        = 120.0
)

// View is the visible world-space rectangle obstacles spawn around,
// given by its top-left corner. Size is the logical screen.
type View struct {
	X, Y float64
}

// Obstacle is one spawned hazard: a kinematic circle rising through the
// view. Shapes are sensors; contact resolution is not the spawner's job.
type Obstacle struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Radius float64
}

// Spawner paces obstacle creation.
type Spawner struct {
	space *cp.Space
	cfg   config.Spawner
	log   *zap.Logger
	rng   *rand.Rand

	spawning bool
	elapsed  float64
	toNext   float64
	spawned  int

	obstacles []*Obstacle
	pacing    *pacingScript
}

// New builds a spawner in the stopped state. When the config names a
// pacing script it is compiled up front so a broken script fails at
// startup, not mid-game.
func New(space *cp.Space, cfg config.Spawner, log *zap.Logger) (*Spawner, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Spawner{
		space: space,
		cfg:   cfg,
		log:   log,
		rng:   rand.New(rand.NewSource(rand.Int63())),
	}
	s.toNext = s.NextInterval()

	if cfg.PacingScript != "" {
		src, err := os.ReadFile(cfg.PacingScript)
		if err != nil {
			return nil, err
		}
		if err := s.SetPacingScript(string(src)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Start begins spawning. Called by the state machine on entering play.
func (s *Spawner) Start() {
	s.spawning = true
}

// Stop halts spawning without clearing live obstacles.
func (s *Spawner) Stop() {
	s.spawning = false
}

// Spawning reports whether the spawner is currently producing obstacles.
func (s *Spawner) Spawning() bool { return s.spawning }

// Update advances pacing by dt seconds of game time and reaps obstacles
// that left the view. Runs every frame regardless of state; pacing only
// advances while spawning.
func (s *Spawner) Update(dt float64, view View) {
	if s.spawning && dt > 0 {
		s.elapsed += dt
		s.toNext -= dt
		for s.toNext <= 0 {
			s.spawnOne(view)
			s.spawned++
			s.toNext += s.NextInterval()
		}
	}

	s.reap(view)
}

// NextInterval returns the seconds until the obstacle after the next
// one. The built-in pacing shrinks geometrically per spawn down to the
// configured floor; a pacing script overrides the formula.
func (s *Spawner) NextInterval() float64 {
	if s.pacing != nil {
		if v, err := s.pacing.interval(s.elapsed, s.spawned, s.cfg.BaseInterval, s.cfg.MinInterval); err == nil {
			return math.Max(v, s.cfg.MinInterval)
		} else {
			s.log.Warn("pacing script failed, using built-in pacing", zap.Error(err))
		}
	}
	interval := s.cfg.BaseInterval * math.Pow(s.cfg.IntervalDecay, float64(s.spawned))
	return math.Max(interval, s.cfg.MinInterval)
}

// Retune swaps in new pacing numbers without disturbing the current
// run. Script changes go through SetPacingScript instead.
func (s *Spawner) Retune(cfg config.Spawner) {
	cfg.PacingScript = s.cfg.PacingScript
	s.cfg = cfg
}

// Spawned returns how many obstacles this run has produced.
func (s *Spawner) Spawned() int { return s.spawned }

// Obstacles returns the live obstacles for rendering.
func (s *Spawner) Obstacles() []*Obstacle { return s.obstacles }

// Reset removes every obstacle from the space and restores initial
// pacing. Called on level reload.
func (s *Spawner) Reset() {
	for _, o := range s.obstacles {
		s.removeFromSpace(o)
	}
	s.obstacles = s.obstacles[:0]
	s.elapsed = 0
	s.spawned = 0
	s.toNext = s.NextInterval()
}

func (s *Spawner) spawnOne(view View) {
	radius := minObstacleRadius + s.rng.Float64()*(maxObstacleRadius-minObstacleRadius)
	x := view.X + radius + s.rng.Float64()*(common.BaseWidth-2*radius)
	y := view.Y + common.BaseHeight + radius

	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: x, Y: y})
	// Obstacles rise through the view at the configured speed.
	body.SetVelocity(0, -s.cfg.ObstacleSpeed)

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetSensor(true)

	if s.space != nil {
		s.space.AddBody(body)
		s.space.AddShape(shape)
	}

	s.obstacles = append(s.obstacles, &Obstacle{Body: body, Shape: shape, Radius: radius})
}

func (s *Spawner) reap(view View) {
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Body.Position().Y < view.Y-reapMargin {
			s.removeFromSpace(o)
			continue
		}
		kept = append(kept, o)
	}
	s.obstacles = kept
}

func (s *Spawner) removeFromSpace(o *Obstacle) {
	if s.space == nil {
		return
	}
	s.space.RemoveShape(o.Shape)
	s.space.RemoveBody(o.Body)
}

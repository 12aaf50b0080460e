package main

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/tiltfall/clock"
	"github.com/milk9111/tiltfall/common"
	"github.com/milk9111/tiltfall/config"
	"github.com/milk9111/tiltfall/gamestate"
	"github.com/milk9111/tiltfall/input"
	"github.com/milk9111/tiltfall/particles"
	"github.com/milk9111/tiltfall/player"
	"github.com/milk9111/tiltfall/prefs"
	"github.com/milk9111/tiltfall/score"
	"github.com/milk9111/tiltfall/spawn"
	"github.com/milk9111/tiltfall/watch"
)

const (
	fixedStep  = 1.0 / 120
	maxFrameDt = 0.25

	playerRadius = 16.0
	playerMass   = 1.0

	startX = common.BaseWidth / 2
	startY = common.BaseHeight / 3
)

type Game struct {
	cfg *config.Config
	log *zap.Logger

	clock   *clock.Clock
	sched   *clock.Scheduler
	space   *cp.Space
	body    *cp.Body
	shape   *cp.Shape
	cam     *player.Camera
	ctrl    player.Controller
	sampler input.Sampler
	spawner *spawn.Spawner
	tracker *score.Tracker
	machine *gamestate.Machine
	emitter *particles.Emitter
	hud     *Hud
	pause   *ebitenui.UI
	watcher *watch.Watcher

	cfgPath string
	debug   bool
	paused  bool
	quit    bool

	last        time.Time
	accumulator float64
}

// NewGame wires the whole world together. Construction errors are
// configuration problems and abort startup.
func NewGame(cfg *config.Config, cfgPath string, debug bool, log *zap.Logger) (*Game, error) {
	// Zero-gravity space; controllers supply the only forces.
	space := cp.NewSpace()
	body, shape := player.NewBody(space, startX, startY, playerRadius, playerMass)

	g := &Game{
		cfg:     cfg,
		log:     log,
		clock:   clock.New(),
		sched:   clock.NewScheduler(),
		space:   space,
		body:    body,
		shape:   shape,
		cam:     player.NewCamera(startX, startY),
		emitter: particles.NewEmitter(),
		hud:     NewHud(),
		cfgPath: cfgPath,
		debug:   debug,
	}

	spawner, err := spawn.New(space, cfg.Spawner, log.Named("spawn"))
	if err != nil {
		return nil, err
	}
	g.spawner = spawner

	store, err := prefs.Open(filepath.Join(config.Dir(), "prefs.yaml"))
	if err != nil {
		return nil, err
	}

	g.tracker, err = score.NewTracker(
		store, g.hud, g,
		cfg.Game.ScorePerSecond, cfg.Game.MultiplierBands, cfg.Game.MaxMultiplier,
		log.Named("score"),
	)
	if err != nil {
		return nil, err
	}

	g.machine, err = gamestate.NewMachine(
		spawner, g.hud, g.clock, g.tracker, g, g.sched,
		cfg.Game.BannerHideWait, cfg.Game.ReplayLockout,
		log.Named("state"),
	)
	if err != nil {
		return nil, err
	}

	if err := g.buildController(); err != nil {
		return nil, err
	}

	g.pause = NewPauseUI(g)
	g.startWatcher()

	g.machine.ChangeState(gamestate.PreGame)
	return g, nil
}

func (g *Game) buildController() error {
	switch g.cfg.Game.Variant {
	case "tilt":
		g.sampler = input.NewEbitenSampler(input.NewKeyboardOrientation())
		ctrl, err := player.NewTiltController(g.body, g.machine, g.cam, tiltConfigFrom(g.cfg.Game))
		if err != nil {
			return err
		}
		g.ctrl = ctrl
	default:
		g.sampler = input.NewEbitenSampler(nil)
		ctrl, err := player.NewThrustController(g.body, g.machine, g.cam, g.emitter, thrustConfigFrom(g.cfg.Game))
		if err != nil {
			return err
		}
		g.ctrl = ctrl
	}
	return nil
}

func tiltConfigFrom(game config.Game) player.TiltConfig {
	return player.TiltConfig{
		Gravity:       game.GravityMagnitude,
		FilterFactor:  game.GyroFilterFactor,
		SlerpFactor:   game.TiltSlerpFactor,
		DtScaledSlerp: game.TiltSlerpDtScaled,
		CameraLerp:    game.CameraLerpFactor,
	}
}

func thrustConfigFrom(game config.Game) player.ThrustConfig {
	return player.ThrustConfig{
		Thrust:     game.ThrustVelocity,
		SlerpRate:  game.ThrustSlerpRate,
		CameraLerp: game.CameraLerpFactor,
	}
}

// startWatcher begins tuning hot reload for the config file and the
// pacing script. Failure is logged and the game runs without reload.
func (g *Game) startWatcher() {
	var paths []string
	if g.cfgPath != "" {
		paths = append(paths, g.cfgPath)
	}
	if g.cfg.Spawner.PacingScript != "" {
		paths = append(paths, g.cfg.Spawner.PacingScript)
	}
	if len(paths) == 0 {
		return
	}

	w, err := watch.New([]string{".yaml", ".yml", ".tengo"}, paths...)
	if err != nil {
		g.log.Warn("tuning hot reload unavailable", zap.Error(err))
		return
	}
	g.watcher = w
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	dt := g.frameDt()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pause.Update()
		return nil
	}

	g.drainWatcher()
	g.clock.Tick(dt)
	scaled := g.clock.DeltaTime()
	unscaled := g.clock.UnscaledDeltaTime()

	snap := g.sampler.Sample()
	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.machine.RequestGameOver()
	}

	g.ctrl.SampleInput(snap, scaled)
	g.sched.Tick(scaled, unscaled)
	g.machine.Tick(scaled, unscaled, snap.AnyPress())

	// Fixed-cadence physics. The controller applies its force every
	// step; the space only advances while game time is live, so a
	// frozen world stays frozen.
	g.accumulator += unscaled
	for g.accumulator >= fixedStep {
		g.ctrl.IntegratePhysics(fixedStep)
		if s := g.clock.TimeScale(); s > 0 {
			g.space.Step(fixedStep * s)
		}
		g.accumulator -= fixedStep
	}

	camX, camY := g.cam.TopLeft()
	g.spawner.Update(g.clock.DeltaTime(), spawn.View{X: camX, Y: camY})

	g.ctrl.UpdatePresentation(g.clock.DeltaTime())

	pos := g.body.Position()
	a := g.body.Angle()
	ex := pos.X - math.Cos(a)*(playerRadius+4)
	ey := pos.Y - math.Sin(a)*(playerRadius+4)
	g.emitter.Update(g.clock.DeltaTime(), ex, ey, a+math.Pi)

	g.hud.Update()
	return nil
}

// frameDt measures real elapsed time since the previous Update, capped
// so a long stall does not turn into a physics catapult.
func (g *Game) frameDt() float64 {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
		return 0
	}
	dt := now.Sub(g.last).Seconds()
	g.last = now
	if dt > maxFrameDt {
		dt = maxFrameDt
	}
	return dt
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			g.reload(path)
		case err := <-g.watcher.Errors:
			g.log.Warn("watcher error", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if strings.ToLower(filepath.Ext(path)) == ".tengo" {
		src, err := os.ReadFile(path)
		if err == nil {
			err = g.spawner.SetPacingScript(string(src))
		}
		if err != nil {
			g.log.Warn("pacing script reload failed", zap.String("path", path), zap.Error(err))
			return
		}
		g.log.Info("pacing script reloaded", zap.String("path", path))
		return
	}

	cfg, err := config.Reload(path)
	if err != nil {
		g.log.Warn("config reload failed", zap.String("path", path), zap.Error(err))
		return
	}
	g.applyTuning(cfg)
	g.log.Info("config reloaded", zap.String("path", path))
}

// applyTuning pushes reloaded numbers into the live components. The
// control variant and window settings need a restart.
func (g *Game) applyTuning(cfg *config.Config) {
	g.cfg = cfg
	g.spawner.Retune(cfg.Spawner)
	switch c := g.ctrl.(type) {
	case *player.TiltController:
		c.Retune(tiltConfigFrom(cfg.Game))
	case *player.ThrustController:
		c.Retune(thrustConfigFrom(cfg.Game))
	}
}

// Restart rebuilds the run in place: clears obstacles, parks the player
// back at the start, and drives the machine to PreGame.
func (g *Game) Restart() {
	g.spawner.Reset()

	g.body.SetPosition(cp.Vector{X: startX, Y: startY})
	g.body.SetVelocity(0, 0)
	g.body.SetAngularVelocity(0)
	g.body.SetAngle(0)
	g.body.SetForce(cp.Vector{})

	g.cam.CenterX = startX
	g.cam.CenterY = startY
	g.cam.Roll = 0
	g.emitter.SetEmitting(false)

	g.machine.ChangeState(gamestate.PreGame)
}

// ViewportY reports the player's vertical screen position in [0, 1],
// bottom of the view to the top. The score multiplier reads this.
func (g *Game) ViewportY() float64 {
	_, camY := g.cam.TopLeft()
	down := (g.body.Position().Y - camY) / common.BaseHeight
	return common.Clamp(1-down, 0, 1)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x12, G: 0x14, B: 0x1c, A: 0xff})
	camX, camY := g.cam.TopLeft()

	for _, o := range g.spawner.Obstacles() {
		p := o.Body.Position()
		vector.DrawFilledCircle(
			screen,
			float32(p.X-camX), float32(p.Y-camY), float32(o.Radius),
			color.NRGBA{R: 0x7a, G: 0x3b, B: 0x4f, A: 0xff}, true,
		)
	}

	g.emitter.Draw(screen, camX, camY)

	pos := g.body.Position()
	a := g.body.Angle()
	px := float32(pos.X - camX)
	py := float32(pos.Y - camY)
	vector.DrawFilledCircle(screen, px, py, playerRadius, color.NRGBA{R: 0x58, G: 0xc4, B: 0xdd, A: 0xff}, true)
	// Heading tick so the facing is readable.
	vector.StrokeLine(
		screen, px, py,
		px+float32(math.Cos(a)*playerRadius), py+float32(math.Sin(a)*playerRadius),
		2, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, true,
	)

	if g.debug {
		g.drawDebug(screen, px, py)
	}

	g.hud.Draw(screen)
	if g.paused {
		g.pause.Draw(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image, px, py float32) {
	vector.StrokeCircle(screen, px, py, playerRadius, 1, color.NRGBA{G: 0xff, A: 0xff}, true)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  state: %s  scale: %.0f  spawned: %d  particles: %d  score: %.1f",
		ebiten.ActualFPS(),
		g.machine.Current(),
		g.clock.TimeScale(),
		g.spawner.Spawned(),
		g.emitter.Live(),
		g.tracker.Current(),
	))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

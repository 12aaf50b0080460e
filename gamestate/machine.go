package gamestate

import (
	"errors"

	"go.uber.org/zap"

	"github.com/milk9111/tiltfall/clock"
)

// Spawner receives explicit start/stop commands on transitions. The
// machine is the single writer; nothing else toggles spawning.
type Spawner interface {
	Start()
	Stop()
}

// Presenter toggles the phase banners and the score display.
// Fire and forget.
type Presenter interface {
	ShowBeginPrompt(visible bool)
	ShowGameOverPrompt(visible bool)
	ShowScore(visible bool)
}

// TimeScaler freezes and resumes scaled game time.
type TimeScaler interface {
	SetTimeScale(scale float64)
}

// Scorekeeper is the score tracker's contract with the machine.
type Scorekeeper interface {
	OnEnterPreGame()
	OnEnterGameOver()
	Tick(dt float64)
	HideNewHighScoreBanner()
}

// Restarter reloads the level after game over.
type Restarter interface {
	Restart()
}

// Machine drives the game phases. Created in None; the host immediately
// drives it to PreGame and it lives until the process ends.
type Machine struct {
	current  State
	previous State

	// replayCooldown is the remaining lockout, counted down on the
	// unscaled clock so it elapses while gameplay time is frozen.
	replayCooldown float64

	spawner   Spawner
	presenter Presenter
	scaler    TimeScaler
	score     Scorekeeper
	restarter Restarter
	sched     *clock.Scheduler
	log       *zap.Logger

	bannerHideWait float64
	replayLockout  float64
}

// NewMachine wires the machine to its collaborators. Every collaborator
// is required; a missing one is a configuration error caught here rather
// than nil-checked every frame.
func NewMachine(
	spawner Spawner,
	presenter Presenter,
	scaler TimeScaler,
	score Scorekeeper,
	restarter Restarter,
	sched *clock.Scheduler,
	bannerHideWait float64,
	replayLockout float64,
	log *zap.Logger,
) (*Machine, error) {
	if spawner == nil || presenter == nil || scaler == nil || score == nil || restarter == nil || sched == nil {
		return nil, errors.New("gamestate: all collaborators are required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{
		current:        None,
		previous:       None,
		spawner:        spawner,
		presenter:      presenter,
		scaler:         scaler,
		score:          score,
		restarter:      restarter,
		sched:          sched,
		bannerHideWait: bannerHideWait,
		replayLockout:  replayLockout,
		log:            log,
	}, nil
}

// Current returns the current phase. Read-only; controllers and the
// score tracker consult it every frame.
func (m *Machine) Current() State { return m.current }

// Previous returns the phase before the most recent transition.
func (m *Machine) Previous() State { return m.previous }

// ChangeState transitions to target and issues its side effects.
func (m *Machine) ChangeState(target State) {
	switch target {
	case PreGame:
		m.spawner.Stop()
		m.presenter.ShowBeginPrompt(true)
		m.presenter.ShowGameOverPrompt(false)
		m.presenter.ShowScore(false)
		m.score.OnEnterPreGame()
	case Playing:
		m.spawner.Start()
		m.presenter.ShowBeginPrompt(false)
		m.presenter.ShowScore(true)
		// The banner hide runs on the scaled domain. Game time is live
		// during play, so the wait elapses normally; the domain is
		// explicit here so the choice is visible.
		m.sched.After(m.bannerHideWait, clock.Scaled, m.score.HideNewHighScoreBanner)
		m.scaler.SetTimeScale(1)
	case GameOver:
		m.spawner.Stop()
		m.presenter.ShowGameOverPrompt(true)
		m.replayCooldown = m.replayLockout
		m.score.OnEnterGameOver()
		m.scaler.SetTimeScale(0)
	case None:
		// No side effects, but the state pointer still moves below.
		// Faithful to the original behavior; see DESIGN.md.
		m.log.Warn("transition to None requested", zap.Stringer("from", m.current))
	default:
		m.log.Warn("transition to unknown state requested", zap.Int("target", int(target)))
	}

	m.previous = m.current
	m.current = target
}

// Tick runs the per-frame state dispatch. dt is scaled game time,
// unscaledDt real time, anyPress this frame's level-triggered press
// sample.
func (m *Machine) Tick(dt, unscaledDt float64, anyPress bool) {
	if m.replayCooldown > 0 {
		m.replayCooldown -= unscaledDt
	}

	switch m.current {
	case PreGame:
		if anyPress {
			m.ChangeState(Playing)
		}
	case Playing:
		m.score.Tick(dt)
	case GameOver:
		if anyPress && m.replayCooldown <= 0 {
			m.restarter.Restart()
		}
	case None:
		m.log.Warn("ticking with uninitialized state")
	}
}

// RequestGameOver is the external trigger for a collision system. It is
// safe to call in any phase; outside Playing it does nothing.
func (m *Machine) RequestGameOver() {
	if m.current != Playing {
		return
	}
	m.ChangeState(GameOver)
}

// ReplayCooldown returns the remaining replay lockout in seconds.
func (m *Machine) ReplayCooldown() float64 { return m.replayCooldown }

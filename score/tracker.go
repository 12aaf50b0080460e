// Package score accrues the run score while playing and maintains the
// persisted high score.
package score

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/milk9111/tiltfall/common"
)

// HighScoreKey is the persistent storage slot for the best score.
const HighScoreKey = "HighScore"

// Store is the persistent key/value collaborator.
type Store interface {
	GetFloat(key string, def float64) float64
	SetFloat(key string, value float64) error
}

// Display is the presentation collaborator for score text and the
// new-high-score banner. Fire and forget.
type Display interface {
	SetScoreText(text string)
	SetHighScoreText(text string)
	ShowNewHighScoreBanner(visible bool)
}

// PositionSource reports the player's vertical screen position in
// [0, 1], bottom to top.
type PositionSource interface {
	ViewportY() float64
}

// Tracker owns the current run's score and the session high score.
type Tracker struct {
	store   Store
	display Display
	pos     PositionSource
	log     *zap.Logger

	scorePerSec float64
	bands       int
	maxMult     int

	current float64
	high    float64
}

// NewTracker wires the tracker to its collaborators. All of them are
// required; a nil one is a configuration error.
func NewTracker(store Store, display Display, pos PositionSource, scorePerSec float64, bands, maxMult int, log *zap.Logger) (*Tracker, error) {
	if store == nil || display == nil || pos == nil {
		return nil, errors.New("score: store, display, and position source are required")
	}
	if bands < 1 || maxMult < 1 {
		return nil, fmt.Errorf("score: bands and max multiplier must be >= 1, got %d/%d", bands, maxMult)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{
		store:       store,
		display:     display,
		pos:         pos,
		log:         log,
		scorePerSec: scorePerSec,
		bands:       bands,
		maxMult:     maxMult,
	}, nil
}

// OnEnterPreGame starts a fresh run: reload the persisted high score and
// refresh its display.
func (t *Tracker) OnEnterPreGame() {
	t.current = 0
	t.high = t.store.GetFloat(HighScoreKey, 0)
	t.display.ShowNewHighScoreBanner(false)
	t.display.SetHighScoreText(fmt.Sprintf("Best: %d", int(math.Round(t.high))))
}

// Tick accrues score for one frame. Only called while playing.
func (t *Tracker) Tick(dt float64) {
	if dt <= 0 {
		return
	}

	// Reveal the banner as soon as this frame's accrual would reach the
	// high score. Safe to repeat on every qualifying frame.
	if t.current+t.scorePerSec*dt >= t.high {
		t.display.ShowNewHighScoreBanner(true)
	}

	mult := t.ScreenMultiplier(t.pos.ViewportY())
	t.current += t.scorePerSec * float64(mult) * dt

	t.display.SetScoreText(fmt.Sprintf("Score: %d x%d", int(math.Round(t.current)), mult))
	if t.current >= t.high {
		t.display.SetHighScoreText("High score!")
	}
}

// ScreenMultiplier maps a viewport Y position to a discrete score
// multiplier: the visible height is split into equal bands, and higher
// bands pay more.
func (t *Tracker) ScreenMultiplier(viewportY float64) int {
	band := int(math.Ceil(common.Clamp(viewportY, 0, 1) * float64(t.bands)))
	if band < 1 {
		band = 1
	}
	if band > t.bands {
		band = t.bands
	}
	return int(math.Round(float64(band) * float64(t.maxMult) / float64(t.bands)))
}

// OnEnterGameOver commits a new high score when this run reached one.
func (t *Tracker) OnEnterGameOver() {
	if t.current < t.high {
		return
	}
	t.high = t.current
	if err := t.store.SetFloat(HighScoreKey, t.high); err != nil {
		t.log.Warn("failed to persist high score", zap.Float64("score", t.high), zap.Error(err))
	}
}

// HideNewHighScoreBanner is the deferred-callback target scheduled when
// play starts.
func (t *Tracker) HideNewHighScoreBanner() {
	t.display.ShowNewHighScoreBanner(false)
}

// Current returns the run score so far.
func (t *Tracker) Current() float64 { return t.current }

// High returns the session high score.
func (t *Tracker) High() float64 { return t.high }

// Package gamestate owns the game phase machine: pre-game, active play,
// and game over, plus the side effects each transition issues.
package gamestate

// State is the current game phase.
type State int

const (
	// None is the uninitialized sentinel. It is never a valid target of
	// an explicit transition.
	None State = iota
	PreGame
	Playing
	GameOver
)

func (s State) String() string {
	switch s {
	case None:
		return "none"
	case PreGame:
		return "pregame"
	case Playing:
		return "playing"
	case GameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

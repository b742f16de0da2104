package main

// GameState gates which subsystems run each tick. Menu and GameOver
// freeze physics and spawning; transitions are the only way behavior
// changes.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

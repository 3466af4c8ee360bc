package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // screen width in characters
	ScreenH  int   // screen height in characters
	TickRate int   // simulation ticks per second (default 30)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  100,
		ScreenH:  30,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is the platform-visible status of the game, returned by
// Game.State() after every tick.
type GameState struct {
	Score    int    // current score
	GameOver bool   // whether the session reached a terminal state
	Won      bool   // true when the terminal state is a win
	Reason   string // human-readable reason for the terminal state
	Paused   bool   // whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

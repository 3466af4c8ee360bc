package core

// Game is the contract between a game implementation and the platform.
// The platform owns the terminal loop; the game owns simulation and drawing.
type Game interface {
	// ID returns a stable identifier used for storage and logging.
	ID() string

	// Title returns the human-readable name.
	Title() string

	// Reset initializes or restarts the game with the given runtime config.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick with the given input.
	Step(input InputFrame) StepResult

	// Render draws the current state into the screen buffer.
	Render(screen *Screen)

	// State returns the current platform-visible state.
	State() GameState
}

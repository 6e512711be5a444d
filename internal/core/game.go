package core

// Game is the interface the platform drives. The implementation contains pure
// logic with no external dependencies (especially no Bubble Tea); the platform
// handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game, used in logs and paths.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions and pointer events.
	// Returns the result of this tick including current game state.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state (score, level, game over, paused).
	State() GameState
}

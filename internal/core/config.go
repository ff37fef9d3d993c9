package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic shuffles.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for the pairing shuffle; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of a game, as reported to the platform.
type GameState struct {
	Moves   int     // Completed two-card reveal attempts
	Pairs   int     // Matched pairs so far
	Elapsed float64 // Seconds since the first reveal, frozen once won
	Won     bool    // Whether every pair has been matched
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the contract between game logic and the platform layer.
// The game contains pure logic with no external dependencies; the platform
// handles input mapping, timing, and terminal display.
type Game interface {
	// Reset initializes or restarts the game. Called once at start and again
	// on restart; the RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick. Input is abstracted to
	// platform-level actions and pointer clicks; dt is the elapsed time in
	// seconds since the previous tick.
	Step(in InputFrame, dt float64) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}

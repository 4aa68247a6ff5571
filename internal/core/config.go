package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score since the game instance was last reset
	GameOver bool // Whether the current round has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each render frame.
type StepResult struct {
	State GameState
	Steps int // Fixed simulation steps executed this frame
}

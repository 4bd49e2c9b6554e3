package core

// RuntimeConfig contains configuration passed from the platform to the game.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frame driver rate (default 60)
	Seed     int64 // RNG seed for gap placement, 0 means time-based
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

// GameState summarises the game for the platform after each tick.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Step after each tick boundary.
type StepResult struct {
	State     GameState
	Restarted bool // A restart command was applied this tick
	Ended     bool // The run ended during this tick
}

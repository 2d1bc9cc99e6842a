package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is a snapshot of the values a frame driver cares about.
type GameState struct {
	Score    int  // Current score
	Started  bool // Whether a run has been started at least once
	GameOver bool // Whether the current run has ended
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState

	// EnteredGameOver is true only on the tick the run ended.
	EnteredGameOver bool
}

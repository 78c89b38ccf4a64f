package core

// RuntimeConfig contains per-process runtime parameters passed to the game
// at initialization. The simulation itself runs in a fixed virtual pixel
// space; terminal dimensions concern only the platform layer.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the coarse status returned by Game.Step for the platform:
// enough to know when to record a finished run and offer a restart.
type GameState struct {
	Score     int
	HighScore int
	GameOver  bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

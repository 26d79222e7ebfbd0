package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// GameState represents the current state of a run.
// Returned by Game.State() to communicate status to the platform.
// The game has no terminal state; the run continues until the player quits.
type GameState struct {
	Streak     int  // Consecutive crossings since the last collision
	BestStreak int  // Best streak this session
	Wins       int  // Cumulative successful crossings
	Deaths     int  // Cumulative collisions
	Paused     bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// EndedStreak carries a streak that a collision just terminated, so the
	// platform can record it. Zero when no streak ended this tick.
	EndedStreak int
}

package core

// RuntimeConfig contains configuration passed to simulations at reset.
// Simulations use this to fit the arena to the screen and to seed layouts.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic layouts
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

// SimState is the driver-visible status of a simulation.
type SimState struct {
	Tick    uint64  // Steps taken since reset
	Bounces uint64  // Collisions resolved since reset
	Speed   float64 // Current emitter speed in world units per tick
	Rays    int     // Number of directions
	Walls   int     // Number of walls including the bounding rectangle
	Paused  bool
}

// StepResult is returned by Simulation.Step() after each tick.
type StepResult struct {
	State   SimState
	Bounced bool // Whether this tick resolved a collision
}

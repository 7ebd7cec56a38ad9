package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt its layout to the screen and to seed the run.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the scheduler (default 60)
	Seed     int64 // Run seed; 0 means pick one from the clock in the platform layer
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

// GameState is the HUD-level view of a run, refreshed after every frame.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Lives remaining (may reach 0)
	Level    int  // 1-based maze level within the run
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the run is paused
}

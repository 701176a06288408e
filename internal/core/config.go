package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and pick a level.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Frames per second requested from the platform (default 60)
	LevelID  string // Level to start on; empty means the first level
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Money collected so far (carried across levels)
	LevelID  string // Level currently loaded
	Running  bool   // Whether the ball simulation is active
	GameOver bool   // Whether every level has been completed
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// LevelCompleted is set on the frame a level's money goal was reached.
	LevelCompleted bool
}

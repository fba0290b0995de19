package core

// RuntimeConfig is passed to the game on Reset. The game uses it to lay out
// its board and to seed its shuffles.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState summarizes the game for the platform after every step.
type GameState struct {
	Score    int  // Levels cleared in the current run
	Level    int  // Current level index
	GameOver bool // The clock ran out
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	Quit  bool // The player asked to leave the session
}

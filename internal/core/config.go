package core

import "time"

// RuntimeConfig is passed to the game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Clock refreshes per second
	Seed     int64 // Mine layout seed; 0 means random
}

// DefaultConfig returns a config for an 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 1,
	}
}

// FrameDuration is the time between clock refreshes.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the coarse status the platform needs to drive its loop.
type GameState struct {
	Started  bool // The clock is running or has run
	GameOver bool
	Won      bool
	Paused   bool
}

// StepResult is returned by Step.
type StepResult struct {
	State GameState
	// Changed is true when the input altered the game or cursor.
	Changed bool
}

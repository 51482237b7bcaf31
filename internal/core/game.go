package core

import "time"

// Game is what the platform drives. Implementations contain pure logic
// with no UI dependencies; the platform maps keys to actions, schedules
// redraws and turns the screen buffer into terminal output.
type Game interface {
	// ID returns a short identifier used in logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new game. The RuntimeConfig provides the screen size
	// and the seed.
	Reset(cfg RuntimeConfig)

	// Step applies the actions of one input frame.
	Step(in InputFrame) StepResult

	// Tick updates time-dependent readouts such as the clock. It never
	// changes game state.
	Tick(now time.Time)

	// Render draws the game into a pre-cleared screen buffer.
	Render(dst *Screen)

	// State returns the coarse game status.
	State() GameState
}

// Pointer is implemented by games that accept mouse clicks in screen
// coordinates. alt is true for the secondary button.
type Pointer interface {
	Click(x, y int, alt bool) StepResult
}

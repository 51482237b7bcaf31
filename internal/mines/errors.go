package mines

import "errors"

// Errors returned by engine operations. Callers match them with errors.Is;
// the engine wraps them with the offending values.
var (
	// ErrInvalidConfiguration is returned when a session cannot be set up
	// with the requested dimensions or mine count.
	ErrInvalidConfiguration = errors.New("mines: invalid configuration")

	// ErrOutOfBounds is returned when an operation targets a cell outside
	// the board.
	ErrOutOfBounds = errors.New("mines: coordinates out of bounds")
)

package engine

import "errors"

// Sentinel errors reported by board construction and move application. All
// are recoverable: the board value handed in is never modified on failure.
var (
	// ErrInvalidRows indicates a board was requested with fewer than MinRows rows.
	ErrInvalidRows = errors.New("engine: board requires at least one row")
	// ErrInvalidPosition indicates a queried position lies outside the board.
	ErrInvalidPosition = errors.New("engine: position outside the board")
	// ErrIllegalMove indicates the requested jump is not currently legal.
	ErrIllegalMove = errors.New("engine: illegal move")
)

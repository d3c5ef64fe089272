package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	GetState() *GameState
	SetState(state *GameState) error
	Reset() *GameState
	IsGameOver() bool
	IsVictory() bool
	PegsLeft() int
	Board() Board

	// Move operations
	Move(from, to Position) error
	CanMove(from, to Position) bool
	LegalMovesFrom(pos Position) map[Position]Position
	GetMovablePegs() []Position

	// Configuration
	GetConfig() *GameConfig
	SetConfig(config *GameConfig) error

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// GameEngine implements the Engine interface. It owns the current board
// value and a serializable state snapshot kept in sync with it; the board
// itself is a pure value, so every move replaces it rather than mutating it.
type GameEngine struct {
	board  Board
	state  *GameState
	config *GameConfig
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	state, board := InitGameStateFromConfig(config)
	return &GameEngine{
		board:  board,
		state:  state,
		config: config,
	}, nil
}

// NewEngineWithDefaults creates a new game engine with the classic board
func NewEngineWithDefaults() *GameEngine {
	config := DefaultConfig()
	state, board := InitGameStateFromConfig(config)
	return &GameEngine{
		board:  board,
		state:  state,
		config: config,
	}
}

// GetState returns the current game state
func (e *GameEngine) GetState() *GameState {
	return e.state
}

// SetState sets the game state (used for persistence loading). The board is
// rebuilt from the snapshot's row count and occupancy.
func (e *GameEngine) SetState(state *GameState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	board, err := boardFromState(state)
	if err != nil {
		return err
	}
	e.board = board
	e.state = state
	syncStateFromBoard(e.state, board)
	return nil
}

// Reset resets the game to the configured opening position
func (e *GameEngine) Reset() *GameState {
	// Preserve cumulative history and totals across resets
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	state, board := InitGameStateFromConfig(e.config)
	e.board = board
	e.state = state

	// Restore cumulative history and totals; clear only the current segment
	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal
	e.state.CurrentMoves = []MoveHistoryEntry{}
	e.state.CurrentMovesCount = 0

	return e.state
}

// IsGameOver reports whether no jump remains on the board
func (e *GameEngine) IsGameOver() bool {
	return e.state.GameOver
}

// IsVictory reports whether the board is terminal with exactly one peg
func (e *GameEngine) IsVictory() bool {
	return e.state.Victory
}

// PegsLeft returns the number of pegs still on the board
func (e *GameEngine) PegsLeft() int {
	return e.state.PegsLeft
}

// Board returns the current board value
func (e *GameEngine) Board() Board {
	return e.board
}

// Move jumps the peg at from over its shared neighbor into to. On failure the
// board is untouched and the attempt is recorded in the history; the error is
// ErrInvalidPosition or ErrIllegalMove.
func (e *GameEngine) Move(from, to Position) error {
	if e.state.GameOver {
		e.state.AddMoveToHistory(from, to, 0, false)
		return fmt.Errorf("%w: the game is over", ErrIllegalMove)
	}

	pegged, err := e.board.IsPegged(from)
	if err != nil {
		e.state.AddMoveToHistory(from, to, 0, false)
		return err
	}
	if !pegged {
		e.state.AddMoveToHistory(from, to, 0, false)
		e.state.Message = e.config.Messages.IllegalMove
		return fmt.Errorf("%w: no peg at %d", ErrIllegalMove, from)
	}

	jumped, ok := e.board.ValidateMove(from, to)
	if !ok {
		e.state.AddMoveToHistory(from, to, 0, false)
		e.state.Message = e.config.Messages.IllegalMove
		return fmt.Errorf("%w: %d -> %d", ErrIllegalMove, from, to)
	}

	next, err := e.board.ApplyMove(from, to)
	if err != nil {
		e.state.AddMoveToHistory(from, to, 0, false)
		return err
	}
	e.board = next
	syncStateFromBoard(e.state, next)

	switch {
	case e.state.Victory:
		e.state.Message = e.config.Messages.Victory
	case e.state.GameOver:
		e.state.Message = fmt.Sprintf(e.config.Messages.GameOver, e.state.PegsLeft)
	case e.config.Messages.Jump != "":
		e.state.Message = fmt.Sprintf(e.config.Messages.Jump, e.state.PegsLeft)
	}

	e.state.AddMoveToHistory(from, to, jumped, true)
	return nil
}

// CanMove reports whether jumping from→to is currently legal
func (e *GameEngine) CanMove(from, to Position) bool {
	if e.state.GameOver {
		return false
	}
	pegged, err := e.board.IsPegged(from)
	if err != nil || !pegged {
		return false
	}
	_, ok := e.board.ValidateMove(from, to)
	return ok
}

// LegalMovesFrom returns the legal destinations from pos mapped to the
// jumped position
func (e *GameEngine) LegalMovesFrom(pos Position) map[Position]Position {
	return e.board.LegalMoves(pos)
}

// GetMovablePegs returns every pegged position with at least one legal jump
func (e *GameEngine) GetMovablePegs() []Position {
	return MovablePegs(e.board)
}

// GetConfig returns the current game configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// SetConfig sets a new game configuration and resets the game
func (e *GameEngine) SetConfig(config *GameConfig) error {
	if err := ValidateGameConfig(config); err != nil {
		return err
	}

	e.config = config
	state, board := InitGameStateFromConfig(config)
	e.board = board
	e.state = state
	return nil
}

// GetMoveHistory returns the complete move history
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}

// AddMoveToHistory adds a jump attempt to the game's move history
func (gs *GameState) AddMoveToHistory(from, to, jumped Position, success bool) {
	entry := MoveHistoryEntry{
		From:       int(from),
		To:         int(to),
		Jumped:     int(jumped),
		PegsLeft:   gs.PegsLeft,
		Timestamp:  time.Now().Unix(),
		Success:    success,
		MoveNumber: gs.TotalMoves + 1,
	}
	// Append to cumulative history (never cleared by reset) and increment total
	gs.MoveHistory = append(gs.MoveHistory, entry)
	gs.TotalMoves++

	// Append to current segment history and increment its counter
	gs.CurrentMoves = append(gs.CurrentMoves, entry)
	gs.CurrentMovesCount++
}

package engine

import (
	"fmt"
	"strings"
)

// ValidateGameConfig validates a board preset for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.Rows < MinRows || config.Rows > MaxRows {
		return fmt.Errorf("config validation: rows must be between %d and %d, got %d", MinRows, MaxRows, config.Rows)
	}

	maxPos := RowEnd(config.Rows)
	if config.OpenPosition < 1 || config.OpenPosition > maxPos {
		return fmt.Errorf("config validation: open_position must be between 1 and %d for a %d-row board, got %d",
			maxPos, config.Rows, config.OpenPosition)
	}

	// Validate messages
	if config.Messages.Welcome == "" {
		return fmt.Errorf("config validation: messages.welcome is required")
	}
	if config.Messages.Victory == "" {
		return fmt.Errorf("config validation: messages.victory is required")
	}
	if config.Messages.GameOver == "" {
		return fmt.Errorf("config validation: messages.game_over is required")
	}

	// Validate format strings
	if !strings.Contains(config.Messages.GameOver, "%d") {
		return fmt.Errorf("config validation: messages.game_over must contain %%d for the remaining peg count")
	}
	if config.Messages.Jump != "" && !strings.Contains(config.Messages.Jump, "%d") {
		return fmt.Errorf("config validation: messages.jump must contain %%d for the remaining peg count")
	}
	if config.Messages.PegStatus != "" && !strings.Contains(config.Messages.PegStatus, "%d") {
		return fmt.Errorf("config validation: messages.peg_status must contain %%d for peg counts")
	}

	return nil
}

// DefaultConfig returns the classic 5-row board with the top corner open.
func DefaultConfig() *GameConfig {
	config := &GameConfig{
		Name:         "classic",
		Description:  "Classic 15-hole triangle with the top corner open",
		Rows:         5,
		OpenPosition: 1,
	}
	config.Messages.Welcome = "Welcome! Jump pegs over their neighbors into empty holes. One peg left wins."
	config.Messages.Jump = "Nice jump! %d pegs left"
	config.Messages.IllegalMove = "That jump isn't possible"
	config.Messages.Victory = "Victory! A single peg remains!"
	config.Messages.GameOver = "No jumps left. %d pegs remain. Game over!"
	config.Messages.PegStatus = "Pegs: %d/%d"
	return config
}

// InitGameStateFromConfig creates a new game state using the provided
// configuration: a freshly built board with the configured opening hole.
func InitGameStateFromConfig(config *GameConfig) (*GameState, Board) {
	if config == nil {
		config = DefaultConfig()
	}

	board, err := NewBoard(config.Rows)
	if err != nil {
		// Config was validated before reaching here; fall back to the default
		// board rather than propagating an impossible error.
		board, _ = NewBoard(DefaultConfig().Rows)
	}
	if opened, err := board.RemovePeg(Position(config.OpenPosition)); err == nil {
		board = opened
	}

	state := &GameState{
		Rows:           board.Rows(),
		TotalPositions: RowEnd(board.Rows()),
		Message:        config.Messages.Welcome,
		ConfigName:     config.Name,
		MoveHistory:    []MoveHistoryEntry{},
		CurrentMoves:   []MoveHistoryEntry{},
	}
	syncStateFromBoard(state, board)
	return state, board
}

// syncStateFromBoard copies board occupancy and derived flags into state.
func syncStateFromBoard(state *GameState, board Board) {
	maxPos := RowEnd(board.Rows())
	pegs := make([]bool, maxPos)
	for p := Position(1); int(p) <= maxPos; p++ {
		pegged, _ := board.IsPegged(p)
		pegs[int(p)-1] = pegged
	}
	state.Rows = board.Rows()
	state.TotalPositions = maxPos
	state.Pegs = pegs
	state.PegsLeft = board.PegCount()
	state.GameOver = !board.HasAnyMove()
	state.Victory = state.GameOver && state.PegsLeft == 1
}

// boardFromState rebuilds the board value a snapshot describes.
func boardFromState(state *GameState) (Board, error) {
	board, err := NewBoard(state.Rows)
	if err != nil {
		return Board{}, err
	}
	if len(state.Pegs) != RowEnd(state.Rows) {
		return Board{}, fmt.Errorf("%w: state lists %d positions for a %d-row board",
			ErrInvalidPosition, len(state.Pegs), state.Rows)
	}
	for i, pegged := range state.Pegs {
		if pegged {
			continue
		}
		board, err = board.RemovePeg(Position(i + 1))
		if err != nil {
			return Board{}, err
		}
	}
	return board, nil
}

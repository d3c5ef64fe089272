package service

import (
	"time"

	"github.com/wricardo/mcp-training/pegsolitaire/game/engine"
)

// MoveRequest names a single jump by its origin and destination holes
type MoveRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a single jump
type MoveResult struct {
	Success     bool              `json:"success"`
	GameState   *engine.GameState `json:"game_state"`
	Message     string            `json:"message"`
	Events      []GameEvent       `json:"events,omitempty"`
	Step        *StepInfo         `json:"step,omitempty"`
	AttemptedTo *AttemptInfo      `json:"attempted_to,omitempty"`
}

// BulkMoveResult contains the result of a sequence of jumps
type BulkMoveResult struct {
	// Summary
	MovesExecuted  int               `json:"moves_executed"`
	RequestedMoves int               `json:"requested_moves"`
	Success        bool              `json:"success"`
	GameState      *engine.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`   // Human-readable reason
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // Machine-friendly code: illegal_move|game_over|victory
	StoppedOnMove  int               `json:"stopped_on_move,omitempty"`  // 1-based index of the move that caused stop
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`

	// Start/end snapshot
	StartPegs int `json:"start_pegs"`
	EndPegs   int `json:"end_pegs"`

	// Per-step compact trace (only for this call)
	Steps []StepInfo `json:"steps,omitempty"`

	// Failure diagnostics
	AttemptedTo *AttemptInfo `json:"attempted_to,omitempty"`

	// Final status aids
	GameOver     bool     `json:"game_over"`
	GameOverCode string   `json:"game_over_code,omitempty"`
	Message      string   `json:"message,omitempty"`
	MovablePegs  []int    `json:"movable_pegs,omitempty"`
	BoardView    []string `json:"board_view,omitempty"`
}

// StepInfo is a compact record for each executed jump in the bulk call
type StepInfo struct {
	Idx        int  `json:"idx"`
	From       int  `json:"from"`
	To         int  `json:"to"`
	Jumped     int  `json:"jumped"`
	PegsBefore int  `json:"pegs_before"`
	PegsAfter  int  `json:"pegs_after"`
	Success    bool `json:"success"`
	Victory    bool `json:"victory,omitempty"`
	GameOver   bool `json:"game_over,omitempty"`
}

// AttemptInfo details the first failed jump attempted
type AttemptInfo struct {
	From       int    `json:"from"`
	To         int    `json:"to"`
	FromPegged bool   `json:"from_pegged"`
	ToPegged   bool   `json:"to_pegged"`
	Connected  bool   `json:"connected"`
	Reason     string `json:"reason"` // off_board|empty_origin|occupied_destination|not_connected|no_jumped_peg|game_over
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string    `json:"type"` // "jump", "game_over", "victory", "reset"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	From      int       `json:"from,omitempty"`
	To        int       `json:"to,omitempty"`
	Jumped    int       `json:"jumped,omitempty"`
}

// LegalMovesResult lists the jumps currently available in a session
type LegalMovesResult struct {
	From        int               `json:"from,omitempty"`
	Moves       []LegalMove       `json:"moves"`
	MovablePegs []int             `json:"movable_pegs"`
	ByOrigin    map[int][]int     `json:"by_origin,omitempty"`
	GameState   *engine.GameState `json:"game_state,omitempty"`
}

// LegalMove is one available jump
type LegalMove struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Jumped int `json:"jumped"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a board preset
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Positions   int    `json:"positions"`
}

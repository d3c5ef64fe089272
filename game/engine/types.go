package engine

// Position identifies a board cell. Positions are 1-based and assigned
// row-major: row 1 holds position 1, row 2 holds 2-3, row n holds
// tri(n-1)+1 .. tri(n). They are never renumbered after construction.
type Position int

const (
	// Validation constants
	MinRows      = 1
	MaxRows      = 12
	MaxBulkMoves = 50
)

// Cell is a single board position: whether a peg occupies it and which jumps
// originate from it. Jumps maps each landing destination to the position
// jumped over; it encodes geometry only, occupancy is checked at move time.
type Cell struct {
	Pegged bool                  `json:"pegged"`
	Jumps  map[Position]Position `json:"jumps,omitempty"`
}

// Board is an immutable triangular peg-solitaire board. Operations that
// change occupancy return a new Board; prior values stay valid, so holding
// old boards gives free history. Cells are stored in a dense arena indexed by
// position (index 0 unused), which makes every recorded jump target valid by
// construction.
type Board struct {
	rows  int
	cells []Cell
}

// Rows returns the configured row count.
func (b Board) Rows() int { return b.rows }

// MaxPos returns the highest valid position, tri(rows).
func (b Board) MaxPos() Position { return Position(RowEnd(b.rows)) }

// GameConfig represents a board preset loaded from JSON or YAML.
type GameConfig struct {
	Name         string `json:"name" yaml:"name"`
	Description  string `json:"description" yaml:"description"`
	Rows         int    `json:"rows" yaml:"rows"`
	OpenPosition int    `json:"open_position" yaml:"open_position"`
	Messages     struct {
		Welcome     string `json:"welcome" yaml:"welcome"`
		Jump        string `json:"jump" yaml:"jump"`
		IllegalMove string `json:"illegal_move" yaml:"illegal_move"`
		Victory     string `json:"victory" yaml:"victory"`
		GameOver    string `json:"game_over" yaml:"game_over"`
		PegStatus   string `json:"peg_status" yaml:"peg_status"`
	} `json:"messages" yaml:"messages"`
}

// GameState represents the complete, serializable game state
type GameState struct {
	Rows           int                `json:"rows"`
	Pegs           []bool             `json:"pegs"` // index i holds position i+1
	TotalPositions int                `json:"total_positions"`
	PegsLeft       int                `json:"pegs_left"`
	Message        string             `json:"message"`
	GameOver       bool               `json:"game_over"`
	Victory        bool               `json:"victory"`
	ConfigName     string             `json:"config_name"`
	MoveHistory    []MoveHistoryEntry `json:"move_history"`
	TotalMoves     int                `json:"total_moves"`

	// CurrentMoves tracks only the moves since the last reset. It mirrors
	// MoveHistory entries but gets cleared on reset while MoveHistory remains
	// cumulative.
	CurrentMoves      []MoveHistoryEntry `json:"current_moves"`
	CurrentMovesCount int                `json:"current_moves_count"`

	// Computed helper views (not required for core game logic)
	BoardView   []string `json:"board_view,omitempty"`
	MovablePegs []int    `json:"movable_pegs,omitempty"`
}

// MoveHistoryEntry represents a single jump attempt in the game history
type MoveHistoryEntry struct {
	From       int   `json:"from"`
	To         int   `json:"to"`
	Jumped     int   `json:"jumped,omitempty"`
	PegsLeft   int   `json:"pegs_left"`
	Timestamp  int64 `json:"timestamp"`
	Success    bool  `json:"success"`
	MoveNumber int   `json:"move_number"`
}

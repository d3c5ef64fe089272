package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/pegsolitaire/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	// Fallback: return as-is or "default"
	if configName == "" {
		return "default"
	}
	return configName
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Load board preset
	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// Determine the config identifier to return - prefer the input configName if provided,
	// otherwise look up the config_id by display name
	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	state := session.Engine.GetState()
	enrichState(session.Engine, state)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID, // Return the config_id, not the display name
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      state,
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	state := session.Engine.GetState()
	enrichState(session.Engine, state)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name), // Return config_id consistently
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      state,
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name), // Return config_id consistently
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Engine.GetState(),
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move executes a single jump for a session
func (s *gameServiceImpl) Move(ctx context.Context, sessionID string, move MoveRequest, reset bool) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Get session
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	// Update last accessed time
	s.sessions.UpdateLastAccessed(sessionID)

	// Collect events
	events := []GameEvent{}

	// Handle reset if requested
	if reset {
		sess.Engine.Reset()
		events = append(events, GameEvent{
			Type:      "reset",
			Message:   "Game reset to initial state",
			Timestamp: time.Now(),
		})
	}

	// Execute jump
	from := engine.Position(move.From)
	to := engine.Position(move.To)
	prevBoard := sess.Engine.Board()
	pegsBefore := sess.Engine.PegsLeft()
	wasOver := sess.Engine.IsGameOver()
	moveErr := sess.Engine.Move(from, to)
	state := sess.Engine.GetState()

	// Build result
	result := &MoveResult{
		Success:   moveErr == nil,
		GameState: state,
		Message:   state.Message,
		Events:    events,
	}

	if moveErr == nil {
		last := sess.Engine.GetLastMove()
		moveEvents := extractMoveEvents(sess, last)
		result.Events = append(result.Events, moveEvents...)

		result.Step = &StepInfo{
			Idx:        1,
			From:       move.From,
			To:         move.To,
			Jumped:     last.Jumped,
			PegsBefore: pegsBefore,
			PegsAfter:  state.PegsLeft,
			Success:    true,
			Victory:    state.Victory,
			GameOver:   state.GameOver,
		}
	} else {
		result.AttemptedTo = classifyAttempt(prevBoard, from, to, wasOver)
	}

	// Enrich state with decision aids
	enrichState(sess.Engine, state)

	// Auto-save session after move
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after move: %v\n", sessionID, err)
	}

	return result, nil
}

// BulkMove executes multiple jumps in sequence
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, moves []MoveRequest, reset bool) (*BulkMoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	// Update last accessed
	s.sessions.UpdateLastAccessed(sessionID)

	state := sess.Engine.GetState()
	result := &BulkMoveResult{
		RequestedMoves: len(moves),
		Events:         make([]GameEvent, 0),
		Success:        true,
		StartPegs:      state.PegsLeft,
		GameOver:       state.GameOver,
		Message:        state.Message,
	}

	// Handle reset
	if reset {
		sess.Engine.Reset()
		result.StartPegs = sess.Engine.PegsLeft()
		result.Events = append(result.Events, GameEvent{
			Type:      "reset",
			Message:   "Game reset to initial state",
			Timestamp: time.Now(),
		})
	}

	// Limit moves to prevent abuse
	if len(moves) > engine.MaxBulkMoves {
		result.Truncated = true
		result.Limit = engine.MaxBulkMoves
		moves = moves[:engine.MaxBulkMoves]
	}

	// Execute jumps
	for i, move := range moves {
		if sess.Engine.IsGameOver() {
			result.StoppedReason = "game_over"
			result.StopReasonCode = "game_over"
			result.StoppedOnMove = result.MovesExecuted + 1
			break
		}

		from := engine.Position(move.From)
		to := engine.Position(move.To)
		prevBoard := sess.Engine.Board()
		pegsBefore := sess.Engine.PegsLeft()

		if moveErr := sess.Engine.Move(from, to); moveErr != nil {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("move %d illegal: %d -> %d", i+1, move.From, move.To)
			result.StopReasonCode = "illegal_move"
			result.StoppedOnMove = i + 1
			result.AttemptedTo = classifyAttempt(prevBoard, from, to, false)
			break
		}

		result.MovesExecuted++

		last := sess.Engine.GetLastMove()
		currState := sess.Engine.GetState()

		events := extractMoveEvents(sess, last)
		result.Events = append(result.Events, events...)

		result.Steps = append(result.Steps, StepInfo{
			Idx:        i + 1,
			From:       move.From,
			To:         move.To,
			Jumped:     last.Jumped,
			PegsBefore: pegsBefore,
			PegsAfter:  currState.PegsLeft,
			Success:    true,
			Victory:    currState.Victory,
			GameOver:   currState.GameOver,
		})
	}

	result.GameState = sess.Engine.GetState()

	// Finalize snapshots
	endState := result.GameState
	result.EndPegs = endState.PegsLeft
	result.GameOver = endState.GameOver
	result.Message = endState.Message

	// If we ended due to game over, fill the codes
	if result.GameOver {
		if endState.Victory {
			result.GameOverCode = "victory"
		} else {
			result.GameOverCode = "game_over"
		}
		if result.StopReasonCode == "" {
			result.StopReasonCode = result.GameOverCode
		}
	}

	// Decision aids
	enrichState(sess.Engine, endState)
	result.MovablePegs = endState.MovablePegs
	result.BoardView = endState.BoardView

	// Auto-save session after bulk moves
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after bulk moves: %v\n", sessionID, err)
	}

	return result, nil
}

// Reset resets a game session to its opening position
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.Reset()
	enrichState(sess.Engine, state)

	// Auto-save session after reset
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after reset: %v\n", sessionID, err)
	}

	return state, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.GetState()
	enrichState(sess.Engine, state)
	return state, nil
}

// GetLegalMoves lists the jumps currently available, optionally restricted to
// a single origin hole
func (s *gameServiceImpl) GetLegalMoves(ctx context.Context, sessionID string, from int) (*LegalMovesResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	board := sess.Engine.Board()
	result := &LegalMovesResult{
		From:        from,
		Moves:       []LegalMove{},
		MovablePegs: []int{},
		ByOrigin:    make(map[int][]int),
	}

	origins := engine.MovablePegs(board)
	if from > 0 {
		pos := engine.Position(from)
		if _, err := board.IsPegged(pos); err != nil {
			return nil, err
		}
		origins = nil
		if len(board.LegalMoves(pos)) > 0 {
			origins = []engine.Position{pos}
		}
	}

	for _, origin := range origins {
		result.MovablePegs = append(result.MovablePegs, int(origin))
		legal := board.LegalMoves(origin)
		dests := make([]int, 0, len(legal))
		for dest := range legal {
			dests = append(dests, int(dest))
		}
		sort.Ints(dests)
		result.ByOrigin[int(origin)] = dests
		for _, dest := range dests {
			result.Moves = append(result.Moves, LegalMove{
				From:   int(origin),
				To:     dest,
				Jumped: int(legal[engine.Position(dest)]),
			})
		}
	}

	return result, nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	// Get the slice of moves
	var moves []engine.MoveHistoryEntry
	if opts.Order == "desc" {
		// Reverse order (most recent first)
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		// Normal chronological order
		if start < total {
			moves = history[start:end]
		}
	}

	// Ensure moves is not nil
	if moves == nil {
		moves = []engine.MoveHistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available board presets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific board preset
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a board preset to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// extractMoveEvents generates events from an executed jump
func extractMoveEvents(sess *Session, last *engine.MoveHistoryEntry) []GameEvent {
	events := []GameEvent{}
	state := sess.Engine.GetState()

	events = append(events, GameEvent{
		Type:      "jump",
		Message:   fmt.Sprintf("Jumped %d over %d into %d", last.From, last.Jumped, last.To),
		Timestamp: time.Now(),
		From:      last.From,
		To:        last.To,
		Jumped:    last.Jumped,
	})

	if state.GameOver {
		if state.Victory {
			events = append(events, GameEvent{
				Type:      "victory",
				Message:   "Victory! A single peg remains!",
				Timestamp: time.Now(),
			})
		} else {
			events = append(events, GameEvent{
				Type:      "game_over",
				Message:   state.Message,
				Timestamp: time.Now(),
			})
		}
	}

	return events
}

// classifyAttempt inspects the board a failed jump was attempted on and
// explains why it could not be played
func classifyAttempt(board engine.Board, from, to engine.Position, gameOver bool) *AttemptInfo {
	info := &AttemptInfo{From: int(from), To: int(to)}

	fromPegged, fromErr := board.IsPegged(from)
	toPegged, toErr := board.IsPegged(to)
	if fromErr != nil || toErr != nil {
		info.Reason = "off_board"
		return info
	}
	info.FromPegged = fromPegged
	info.ToPegged = toPegged

	jumped, connected := board.Connections(from)[to]
	info.Connected = connected

	switch {
	case gameOver:
		info.Reason = "game_over"
	case !fromPegged:
		info.Reason = "empty_origin"
	case !connected:
		info.Reason = "not_connected"
	case toPegged:
		info.Reason = "occupied_destination"
	default:
		if pegged, err := board.IsPegged(jumped); err == nil && !pegged {
			info.Reason = "no_jumped_peg"
		}
	}
	return info
}

// enrichState fills the presentation aids on a state snapshot
func enrichState(e *engine.GameEngine, state *engine.GameState) {
	state.BoardView = buildBoardView(state)
	state.MovablePegs = movablePegInts(e)
}

// buildBoardView renders the triangle as text rows, pegs as X and holes as .
func buildBoardView(state *engine.GameState) []string {
	if state == nil {
		return nil
	}
	lines := make([]string, 0, state.Rows)
	pos := 0
	for row := 1; row <= state.Rows; row++ {
		var line strings.Builder
		line.WriteString(strings.Repeat(" ", state.Rows-row))
		for i := 0; i < row; i++ {
			if i > 0 {
				line.WriteString(" ")
			}
			if pos < len(state.Pegs) && state.Pegs[pos] {
				line.WriteString("X")
			} else {
				line.WriteString(".")
			}
			pos++
		}
		lines = append(lines, line.String())
	}
	return lines
}

func movablePegInts(e *engine.GameEngine) []int {
	movable := e.GetMovablePegs()
	result := make([]int, 0, len(movable))
	for _, pos := range movable {
		result = append(result, int(pos))
	}
	return result
}

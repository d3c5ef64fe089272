package session

import (
	"time"

	"github.com/wricardo/mcp-training/pegsolitaire/game/engine"
	"github.com/wricardo/mcp-training/pegsolitaire/game/service"
)

// SessionPersistence defines the interface for persisting sessions
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedSessionData represents the stored form of a session
type PersistedSessionData struct {
	ID             string            `json:"id"`
	ConfigName     string            `json:"config_name"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
}

// restoreSession rebuilds a live session from its stored form. The engine is
// recreated from the named preset, then the saved snapshot is replayed onto
// it.
func restoreSession(data *PersistedSessionData, configManager service.ConfigManager) (*service.Session, error) {
	gameConfig, err := configManager.LoadConfig(data.ConfigName)
	if err != nil {
		return nil, err
	}

	gameEngine, err := engine.NewEngine(gameConfig)
	if err != nil {
		return nil, err
	}

	if data.GameState != nil {
		if err := gameEngine.SetState(data.GameState); err != nil {
			return nil, err
		}
	}

	return &service.Session{
		ID:             data.ID,
		Engine:         gameEngine,
		Config:         gameConfig,
		CreatedAt:      data.CreatedAt,
		LastAccessedAt: data.LastAccessedAt,
	}, nil
}

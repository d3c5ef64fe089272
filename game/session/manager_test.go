package session

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/wricardo/mcp-training/pegsolitaire/game/engine"
)

func createTestConfig() *engine.GameConfig {
	config := &engine.GameConfig{
		Name:         "Test Config",
		Description:  "Test board preset",
		Rows:         5,
		OpenPosition: 1,
	}
	config.Messages.Welcome = "Welcome!"
	config.Messages.Jump = "Jumped! %d left"
	config.Messages.IllegalMove = "Can't jump!"
	config.Messages.Victory = "Victory!"
	config.Messages.GameOver = "Game over, %d left"
	config.Messages.PegStatus = "Pegs: %d/%d"
	return config
}

func TestManager_Create(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	t.Run("create with custom ID", func(t *testing.T) {
		session, err := manager.Create("test-session", config)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if session.ID != "test-session" {
			t.Errorf("Expected session ID 'test-session', got '%s'", session.ID)
		}
		if session.Engine == nil {
			t.Error("Expected engine to be initialized")
		}
	})

	t.Run("create with auto-generated ID", func(t *testing.T) {
		session, err := manager.Create("", config)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if session.ID == "" {
			t.Error("Expected auto-generated session ID")
		}
		if len(session.ID) != 4 {
			t.Errorf("Expected 4-character session ID, got %d characters", len(session.ID))
		}
	})

	t.Run("duplicate session ID", func(t *testing.T) {
		_, err := manager.Create("test-session", config)
		if err != ErrSessionAlreadyExists {
			t.Errorf("Expected ErrSessionAlreadyExists, got %v", err)
		}
	})

	t.Run("case-insensitive duplicate check", func(t *testing.T) {
		_, err := manager.Create("TEST-SESSION", config)
		if err != ErrSessionAlreadyExists {
			t.Errorf("Expected ErrSessionAlreadyExists for case variant, got %v", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		invalidConfig := createTestConfig()
		invalidConfig.Name = "" // Make config invalid
		_, err := manager.Create("invalid-test", invalidConfig)
		if err == nil {
			t.Error("Expected error for invalid config")
		}
	})
}

func TestManager_Get(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	created, err := manager.Create("lookup", config)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	t.Run("existing session", func(t *testing.T) {
		session, err := manager.Get("lookup")
		if err != nil {
			t.Fatalf("Failed to get session: %v", err)
		}
		if session.ID != created.ID {
			t.Errorf("Expected session '%s', got '%s'", created.ID, session.ID)
		}
	})

	t.Run("case-insensitive lookup", func(t *testing.T) {
		session, err := manager.Get("LOOKUP")
		if err != nil {
			t.Fatalf("Failed to get session with case variant: %v", err)
		}
		if session.ID != created.ID {
			t.Errorf("Expected session '%s', got '%s'", created.ID, session.ID)
		}
	})

	t.Run("missing session", func(t *testing.T) {
		_, err := manager.Get("missing")
		if err != ErrSessionNotFound {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestManager_GetOrCreate(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	first, err := manager.GetOrCreate("shared", config)
	if err != nil {
		t.Fatalf("Failed to get or create session: %v", err)
	}

	second, err := manager.GetOrCreate("shared", config)
	if err != nil {
		t.Fatalf("Failed to get existing session: %v", err)
	}

	if first != second {
		t.Error("Expected the same session on second call")
	}
	if manager.Count() != 1 {
		t.Errorf("Expected 1 session, got %d", manager.Count())
	}
}

func TestManager_Delete(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	if _, err := manager.Create("doomed", config); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	if err := manager.Delete("doomed"); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}

	if _, err := manager.Get("doomed"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound after delete, got %v", err)
	}

	if err := manager.Delete("doomed"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound deleting twice, got %v", err)
	}
}

func TestManager_List(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	if len(manager.List()) != 0 {
		t.Error("Expected empty session list")
	}

	for _, id := range []string{"one", "two", "three"} {
		if _, err := manager.Create(id, config); err != nil {
			t.Fatalf("Failed to create session %s: %v", id, err)
		}
	}

	sessions := manager.List()
	if len(sessions) != 3 {
		t.Errorf("Expected 3 sessions, got %d", len(sessions))
	}
}

func TestManager_CleanupExpired(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	fresh, err := manager.Create("fresh", config)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	stale, err := manager.Create("stale", config)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	stale.LastAccessedAt = time.Now().Add(-2 * time.Hour)

	removed := manager.CleanupExpiredSessions(time.Hour)
	if removed != 1 {
		t.Errorf("Expected 1 session removed, got %d", removed)
	}
	if _, err := manager.Get("stale"); err != ErrSessionNotFound {
		t.Error("Expected stale session to be removed")
	}
	if _, err := manager.Get(fresh.ID); err != nil {
		t.Errorf("Expected fresh session to survive: %v", err)
	}
}

func TestManager_UpdateLastAccessed(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	session, err := manager.Create("touch", config)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	before := session.LastAccessedAt
	time.Sleep(10 * time.Millisecond)

	if err := manager.UpdateLastAccessed("touch"); err != nil {
		t.Fatalf("Failed to update last accessed: %v", err)
	}
	if !session.LastAccessedAt.After(before) {
		t.Error("Expected last accessed time to advance")
	}

	if err := manager.UpdateLastAccessed("missing"); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			session, err := manager.Create("", config)
			if err != nil {
				t.Errorf("Concurrent create failed: %v", err)
				return
			}
			if _, err := manager.Get(session.ID); err != nil {
				t.Errorf("Concurrent get failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if manager.Count() != 20 {
		t.Errorf("Expected 20 sessions, got %d", manager.Count())
	}
}

func TestManager_SessionIsolation(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	a, err := manager.Create("a", config)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	b, err := manager.Create("b", config)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}

	// A move in one session must not touch the other
	if err := a.Engine.Move(4, 1); err != nil {
		t.Fatalf("Move failed: %v", err)
	}

	if a.Engine.PegsLeft() != 13 {
		t.Errorf("Expected 13 pegs in session a, got %d", a.Engine.PegsLeft())
	}
	if b.Engine.PegsLeft() != 14 {
		t.Errorf("Expected 14 pegs in session b, got %d", b.Engine.PegsLeft())
	}
}

func TestManager_SessionIDGeneration(t *testing.T) {
	manager := NewManager()
	config := createTestConfig()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		session, err := manager.Create("", config)
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		id := strings.ToLower(session.ID)
		if seen[id] {
			t.Errorf("Duplicate session ID generated: %s", id)
		}
		seen[id] = true
		if len(session.ID) != 4 {
			t.Errorf("Expected 4-character ID, got '%s'", session.ID)
		}
	}
}

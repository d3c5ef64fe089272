package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wricardo/mcp-training/pegsolitaire/game/engine"
	"github.com/wricardo/mcp-training/pegsolitaire/game/session"
)

func testPersistedSession(id string) *session.PersistedSessionData {
	return &session.PersistedSessionData{
		ID:         id,
		ConfigName: "classic",
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		GameState: &engine.GameState{
			Rows:       5,
			PegsLeft:   13,
			TotalMoves: 2,
			MoveHistory: []engine.MoveHistoryEntry{
				{From: 4, To: 1, Jumped: 2, PegsLeft: 13, Success: true, MoveNumber: 1},
				{From: 2, To: 9, PegsLeft: 13, Success: false, MoveNumber: 2},
			},
		},
	}
}

func TestFlattenSession(t *testing.T) {
	record := flattenSession(testPersistedSession("sess-1"))

	if record.SessionID != "sess-1" {
		t.Errorf("Expected session ID sess-1, got %s", record.SessionID)
	}
	if record.ConfigName != "classic" {
		t.Errorf("Expected config classic, got %s", record.ConfigName)
	}
	if record.Rows != 5 {
		t.Errorf("Expected 5 rows, got %d", record.Rows)
	}
	if record.PegsLeft != 13 {
		t.Errorf("Expected 13 pegs, got %d", record.PegsLeft)
	}
	if len(record.Jumps) != 2 {
		t.Fatalf("Expected 2 jumps, got %d", len(record.Jumps))
	}
	if record.Jumps[0].From != 4 || record.Jumps[0].To != 1 || record.Jumps[0].Jumped != 2 {
		t.Errorf("Unexpected first jump: %+v", record.Jumps[0])
	}
	if record.Jumps[1].Success {
		t.Error("Expected second jump to be a failed attempt")
	}
	if record.CreatedAt == 0 {
		t.Error("Expected non-zero created_at timestamp")
	}
}

func TestCollectRecords(t *testing.T) {
	dir := t.TempDir()

	for _, id := range []string{"sess-a", "sess-b"} {
		data, err := json.Marshal(testPersistedSession(id))
		if err != nil {
			t.Fatalf("Failed to marshal session: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, id+".json"), data, 0644); err != nil {
			t.Fatalf("Failed to write session file: %v", err)
		}
	}

	// Non-JSON and malformed files are skipped, not fatal.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	records, err := collectRecords(dir)
	if err != nil {
		t.Fatalf("collectRecords failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(records))
	}
}

func TestCollectRecords_MissingDir(t *testing.T) {
	_, err := collectRecords("/nonexistent/sessions")
	if err == nil {
		t.Error("Expected error for missing directory")
	}
}

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/mcp-training/pegsolitaire/game/engine"
)

func writeTempConfig(t *testing.T, pattern, content string) string {
	t.Helper()
	tmpfile, err := os.CreateTemp("", pattern)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()
	return tmpfile.Name()
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	validConfig := `{
		"name": "Test Config",
		"description": "Test configuration",
		"rows": 5,
		"open_position": 1,
		"messages": {
			"welcome": "Welcome!",
			"jump": "Jumped! %d pegs left",
			"illegal_move": "Illegal!",
			"victory": "Victory!",
			"game_over": "Game over with %d pegs",
			"peg_status": "Pegs: %d/%d"
		}
	}`

	path := writeTempConfig(t, "test_config_*.json", validConfig)

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}
}

func TestValidateConfig_ValidYAML(t *testing.T) {
	validConfig := `name: YAML Config
description: Preset loaded from YAML
rows: 4
open_position: 3
messages:
  welcome: Welcome!
  victory: Victory!
  game_over: "Game over with %d pegs"
`

	path := writeTempConfig(t, "test_config_*.yaml", validConfig)

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid YAML config, but got errors: %v", result.Errors)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, "test_config_*.json", `{"name": "test", invalid json}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to bad JSON")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Invalid JSON") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Failed to read file") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateConfig_BadRows(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"rows": 99,
		"open_position": 1,
		"messages": {
			"welcome": "Welcome!",
			"victory": "Victory!",
			"game_over": "Game over with %d pegs"
		}
	}`

	path := writeTempConfig(t, "test_config_*.json", config)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to out-of-range rows")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "rows must be between") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'rows must be between' error")
	}
}

func TestValidateConfig_OpenPositionOffBoard(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"rows": 5,
		"open_position": 16,
		"messages": {
			"welcome": "Welcome!",
			"victory": "Victory!",
			"game_over": "Game over with %d pegs"
		}
	}`

	path := writeTempConfig(t, "test_config_*.json", config)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to open position off the board")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "open_position must be between") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'open_position must be between' error")
	}
}

func TestValidateConfig_MissingMessages(t *testing.T) {
	config := `{
		"name": "Test",
		"description": "Test",
		"rows": 5,
		"open_position": 1,
		"messages": {
			"welcome": "Welcome!"
		}
	}`

	path := writeTempConfig(t, "test_config_*.json", config)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to missing messages")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "messages.victory is required") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'messages.victory is required' error")
	}
}

func TestValidateConfig_DeadOpening(t *testing.T) {
	// A 2-row board has no jump lanes at all, so any opening is dead
	config := `{
		"name": "Test",
		"description": "Test",
		"rows": 2,
		"open_position": 1,
		"messages": {
			"welcome": "Welcome!",
			"victory": "Victory!",
			"game_over": "Game over with %d pegs"
		}
	}`

	path := writeTempConfig(t, "test_config_*.json", config)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to dead opening")
	}

	found := false
	for _, err := range result.Errors {
		if contains(err, "Liveness failure") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Liveness failure' error")
	}
}

func TestValidateLiveness_ClassicOpening(t *testing.T) {
	config := classicTestConfig()

	result := validateLiveness(config)
	if !result.Valid {
		t.Errorf("Expected classic opening to be live, got errors: %v", result.Errors)
	}

	// The classic board opens with exactly two jumps into hole 1
	found := false
	for _, info := range result.Errors {
		if contains(info, "2 opening jumps") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Expected 2 opening jumps for the classic board, got: %v", result.Errors)
	}
}

func TestValidateLiveness_CenterOpening(t *testing.T) {
	config := classicTestConfig()
	config.OpenPosition = 5

	result := validateLiveness(config)
	if !result.Valid {
		t.Errorf("Expected center opening to be live, got errors: %v", result.Errors)
	}
}

func classicTestConfig() *engine.GameConfig {
	config := &engine.GameConfig{
		Name:         "Test",
		Description:  "Test",
		Rows:         5,
		OpenPosition: 1,
	}
	config.Messages.Welcome = "Welcome!"
	config.Messages.Victory = "Victory!"
	config.Messages.GameOver = "Game over with %d pegs"
	return config
}

// Helper function to check if a string contains a substring
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

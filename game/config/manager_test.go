package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/wricardo/mcp-training/pegsolitaire/game/engine"
)

func createTestConfigDir(t *testing.T) string {
	dir, err := os.MkdirTemp("", "config-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	return dir
}

func createValidConfig() *engine.GameConfig {
	config := &engine.GameConfig{
		Name:         "Test Config",
		Description:  "Test preset",
		Rows:         5,
		OpenPosition: 5,
	}
	config.Messages.Welcome = "Welcome!"
	config.Messages.Jump = "Jumped! %d left"
	config.Messages.IllegalMove = "Can't jump!"
	config.Messages.Victory = "Victory!"
	config.Messages.GameOver = "Game over, %d left"
	config.Messages.PegStatus = "Pegs: %d/%d"
	return config
}

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	filename := name
	if filepath.Ext(filename) == "" {
		filename = name + ".json"
	}

	path := filepath.Join(dir, filename)
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := createTestConfigDir(t)
		defer os.RemoveAll(dir)

		writeConfigFile(t, dir, "classic", createValidConfig())

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager == nil {
			t.Fatal("Expected manager to be non-nil")
		}
		if manager.GetDefault() == nil {
			t.Error("Expected default config to be loaded")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := NewManager("/nonexistent/config/dir")
		if err == nil {
			t.Error("Expected error for missing config directory")
		}
	})

	t.Run("empty directory falls back to built-in default", func(t *testing.T) {
		dir := createTestConfigDir(t)
		defer os.RemoveAll(dir)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		def := manager.GetDefault()
		if def == nil {
			t.Fatal("Expected built-in default config")
		}
		if def.Rows != 5 {
			t.Errorf("Expected built-in classic board, got %d rows", def.Rows)
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	valid := createValidConfig()
	writeConfigFile(t, dir, "test", valid)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("existing config", func(t *testing.T) {
		config, err := manager.LoadConfig("test")
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if config.Name != valid.Name {
			t.Errorf("Expected config name '%s', got '%s'", valid.Name, config.Name)
		}
		if config.OpenPosition != valid.OpenPosition {
			t.Errorf("Expected open position %d, got %d", valid.OpenPosition, config.OpenPosition)
		}
	})

	t.Run("with explicit extension", func(t *testing.T) {
		config, err := manager.LoadConfig("test.json")
		if err != nil {
			t.Fatalf("Failed to load config with extension: %v", err)
		}
		if config.Name != valid.Name {
			t.Errorf("Expected config name '%s', got '%s'", valid.Name, config.Name)
		}
	})

	t.Run("missing config", func(t *testing.T) {
		_, err := manager.LoadConfig("missing")
		if err != ErrConfigNotFound {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatalf("Failed to write broken config: %v", err)
		}
		if _, err := manager.LoadConfig("broken"); err == nil {
			t.Error("Expected error loading broken config")
		}
	})

	t.Run("invalid preset", func(t *testing.T) {
		bad := createValidConfig()
		bad.OpenPosition = 99
		writeConfigFile(t, dir, "bad", bad)
		if _, err := manager.LoadConfig("bad"); err == nil {
			t.Error("Expected error loading preset with off-board opening")
		}
	})
}

func TestManager_LoadConfig_YAML(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	yamlConfig := `name: yaml-preset
description: Preset stored as YAML
rows: 4
open_position: 3
messages:
  welcome: "Welcome!"
  victory: "Victory!"
  game_over: "Game over, %d left"
`
	path := filepath.Join(dir, "yamlgame.yaml")
	if err := os.WriteFile(path, []byte(yamlConfig), 0644); err != nil {
		t.Fatalf("Failed to write YAML config: %v", err)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	config, err := manager.LoadConfig("yamlgame")
	if err != nil {
		t.Fatalf("Failed to load YAML config: %v", err)
	}
	if config.Name != "yaml-preset" {
		t.Errorf("Expected name 'yaml-preset', got '%s'", config.Name)
	}
	if config.Rows != 4 || config.OpenPosition != 3 {
		t.Errorf("Expected rows=4 open=3, got rows=%d open=%d", config.Rows, config.OpenPosition)
	}
}

func TestManager_GetDefault(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	classic := createValidConfig()
	classic.Name = "classic"
	writeConfigFile(t, dir, "classic", classic)

	other := createValidConfig()
	other.Name = "other"
	other.OpenPosition = 13
	writeConfigFile(t, dir, "other", other)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if manager.GetDefault().Name != "classic" {
		t.Errorf("Expected classic as default, got '%s'", manager.GetDefault().Name)
	}

	if err := manager.SetDefault("other"); err != nil {
		t.Fatalf("Failed to set default: %v", err)
	}
	if manager.GetDefault().Name != "other" {
		t.Errorf("Expected 'other' as default, got '%s'", manager.GetDefault().Name)
	}

	if err := manager.SetDefault("missing"); err == nil {
		t.Error("Expected error setting missing config as default")
	}
}

func TestManager_ListConfigs(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	writeConfigFile(t, dir, "classic", createValidConfig())

	second := createValidConfig()
	second.Name = "six-rows"
	second.Rows = 6
	second.OpenPosition = 1
	writeConfigFile(t, dir, "big", second)

	// Invalid configs are skipped, not surfaced
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("nope"), 0644); err != nil {
		t.Fatalf("Failed to write broken config: %v", err)
	}
	// Non-preset files are ignored
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# configs"), 0644); err != nil {
		t.Fatalf("Failed to write readme: %v", err)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("Expected 2 configs, got %d", len(configs))
	}

	byID := make(map[string]bool)
	for _, info := range configs {
		byID[info.ConfigID] = true
		if info.Positions != engine.RowEnd(info.Rows) {
			t.Errorf("Expected %d positions for %d rows, got %d", engine.RowEnd(info.Rows), info.Rows, info.Positions)
		}
	}
	if !byID["classic"] || !byID["big"] {
		t.Errorf("Expected classic and big in listing, got %v", byID)
	}
}

func TestManager_SaveConfig(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	config := createValidConfig()
	if err := manager.SaveConfig("saved", config); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "saved.json")); err != nil {
		t.Errorf("Expected saved.json on disk: %v", err)
	}

	loaded, err := manager.LoadConfig("saved")
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}
	if loaded.Name != config.Name {
		t.Errorf("Expected saved config name '%s', got '%s'", config.Name, loaded.Name)
	}

	// Invalid configs are rejected before touching disk
	bad := createValidConfig()
	bad.Rows = 0
	if err := manager.SaveConfig("bad", bad); err == nil {
		t.Error("Expected error saving invalid config")
	}
	if _, err := os.Stat(filepath.Join(dir, "bad.json")); !os.IsNotExist(err) {
		t.Error("Expected invalid config not to be written")
	}
}

func TestManager_RefreshCache(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	config := createValidConfig()
	writeConfigFile(t, dir, "test", config)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if _, err := manager.LoadConfig("test"); err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Change the file behind the cache
	config.Description = "updated"
	writeConfigFile(t, dir, "test", config)

	cached, err := manager.LoadConfig("test")
	if err != nil {
		t.Fatalf("Failed to load cached config: %v", err)
	}
	if cached.Description == "updated" {
		t.Error("Expected cached config before refresh")
	}

	if err := manager.RefreshCache(); err != nil {
		t.Fatalf("Failed to refresh cache: %v", err)
	}

	fresh, err := manager.LoadConfig("test")
	if err != nil {
		t.Fatalf("Failed to load refreshed config: %v", err)
	}
	if fresh.Description != "updated" {
		t.Errorf("Expected refreshed description 'updated', got '%s'", fresh.Description)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := createTestConfigDir(t)
	defer os.RemoveAll(dir)

	writeConfigFile(t, dir, "classic", createValidConfig())

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := manager.LoadConfig("classic"); err != nil {
				t.Errorf("Concurrent load failed: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			_ = manager.GetDefault()
		}()
	}
	wg.Wait()
}

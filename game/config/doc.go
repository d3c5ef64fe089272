// Package config provides board preset management for the peg solitaire game.
//
// The config package handles:
//   - Loading board presets from JSON and YAML files
//   - Preset validation and verification
//   - Default preset management
//   - Preset discovery and listing
//
// Preset Format:
//
// Board presets are stored as JSON or YAML files in the configs directory.
// Each preset defines:
//   - The number of board rows (the classic game uses 5)
//   - Which hole starts empty
//   - Game messages for various events
//
// Available Presets:
//
// The package ships several opening positions:
//   - classic: 5-row board with the top corner open
//   - center: 5-row board opened in the interior
//   - big_triangle: 6-row board for a longer game
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific preset
//	gameConfig, err := manager.LoadConfig("center")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default preset
//	defaultConfig := manager.GetDefault()
//
//	// List available presets
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All presets are validated for:
//   - Row count within the supported range
//   - Opening hole on the board
//   - Required message templates and their format verbs
package config

// Command validate provides a small CLI that validates board preset files in
// the ../configs directory. It checks:
//   - JSON/YAML structure and required fields
//   - Row count and open position against the board geometry
//   - Required message keys and their format verbs
//   - Liveness: the opening board offers at least one legal jump
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wricardo/mcp-training/pegsolitaire/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single preset file. It performs
// structural checks, geometry/message validation via the engine, and an
// opening-liveness analysis.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.GameConfig
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(data, &config); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid YAML: %v", err))
			return result
		}
	} else {
		if err := json.Unmarshal(data, &config); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
			return result
		}
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	// Liveness validation - the opening position must offer at least one jump
	liveness := validateLiveness(&config)
	if !liveness.Valid {
		result.Valid = false
	}
	result.Errors = append(result.Errors, liveness.Errors...)

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Rows: %d (%d holes)", config.Rows, engine.RowEnd(config.Rows)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Open position: %d (row %d)",
			config.OpenPosition, engine.RowOf(engine.Position(config.OpenPosition))))
	}

	return result
}

// validateLiveness builds the opening board and confirms the puzzle is not
// dead on arrival: at least one legal jump must exist into the open hole.
func validateLiveness(config *engine.GameConfig) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	board, err := engine.NewBoard(config.Rows)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot build board: %v", err))
		return result
	}

	board, err = board.RemovePeg(engine.Position(config.OpenPosition))
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open position %d: %v", config.OpenPosition, err))
		return result
	}

	if !board.HasAnyMove() {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Liveness failure: no legal jump exists with only position %d open on a %d-row board",
			config.OpenPosition, config.Rows))
		return result
	}

	openers := 0
	for _, from := range engine.MovablePegs(board) {
		openers += len(board.LegalMoves(from))
	}
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Liveness: %d opening jumps available", openers))
	return result
}

// main scans ../configs for preset files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	var files []string
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(configDir, pattern))
		if err != nil {
			fmt.Printf("Error finding config files: %v\n", err)
			os.Exit(1)
		}
		files = append(files, matches...)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}

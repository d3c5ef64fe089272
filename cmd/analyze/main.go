// Command analyze prints quick, human-readable heuristics about board preset
// files in the project's configs directory. It summarizes board geometry,
// jump-lane counts, corner holes, and highlights openings that leave the
// puzzle dead on the first move.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wricardo/mcp-training/pegsolitaire/game/engine"
)

// AnalysisConfig is a light struct for reading preset files used by analysis.
type AnalysisConfig struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Rows         int               `json:"rows"`
	OpenPosition int               `json:"open_position"`
	Messages     map[string]string `json:"messages"`
}

func main() {
	configs := []string{
		"classic.json",
		"center.json",
		"big_triangle.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeConfig(filepath.Join("configs", configFile))
	}
}

func analyzeConfig(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var config AnalysisConfig
	if err := json.Unmarshal(data, &config); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Rows: %d\n", config.Rows)
	fmt.Printf("Holes: %d\n", engine.RowEnd(config.Rows))

	board, err := engine.NewBoard(config.Rows)
	if err != nil {
		fmt.Printf("Error building board: %v\n", err)
		return
	}

	fmt.Printf("Jump lanes: %d\n", engine.ConnectionCount(board))

	corners := engine.CornerPositions(config.Rows)
	fmt.Printf("Corner holes: %v\n", corners)

	// Degree distribution: how many jump lanes touch each hole
	minDegree, maxDegree := -1, 0
	var loneliest []engine.Position
	for pos := engine.Position(1); int(pos) <= engine.RowEnd(config.Rows); pos++ {
		degree := len(board.Connections(pos))
		if minDegree == -1 || degree < minDegree {
			minDegree = degree
			loneliest = []engine.Position{pos}
		} else if degree == minDegree {
			loneliest = append(loneliest, pos)
		}
		if degree > maxDegree {
			maxDegree = degree
		}
	}
	fmt.Printf("Jump lanes per hole: min %d, max %d\n", minDegree, maxDegree)
	fmt.Printf("Fewest escape routes: %v\n", loneliest)

	// Opening analysis
	open := engine.Position(config.OpenPosition)
	fmt.Printf("Open position: %d (row %d)\n", config.OpenPosition, engine.RowOf(open))

	opened, err := board.RemovePeg(open)
	if err != nil {
		fmt.Printf("⚠️  WARNING: cannot open position %d: %v\n", config.OpenPosition, err)
		return
	}

	openers := 0
	for _, from := range engine.MovablePegs(opened) {
		openers += len(opened.LegalMoves(from))
	}

	if openers == 0 {
		fmt.Printf("⚠️  CRITICAL: no opening jump exists for this preset!\n")
	} else {
		fmt.Printf("✅ Opening jumps available: %d\n", openers)
	}
}

// Package engine provides the core rules for triangular peg solitaire.
//
// The engine package implements the game mechanics including:
//   - Triangular board geometry and the jump-connection graph
//   - Jump validation and application with value semantics
//   - Terminal-state (no jumps left) detection
//   - Game state management and persistence
//   - Configuration validation and defaults
//
// Core Types:
//
// Board is an immutable value describing which positions hold pegs and which
// jumps are geometrically possible; every operation returns a fresh Board and
// leaves the input untouched. The Engine interface defines the stateful
// contract used by the service layer, implemented by GameEngine. GameState is
// the JSON-serializable snapshot, while GameConfig defines a board preset
// loaded from configs/ files.
//
// Usage:
//
//	config := engine.DefaultConfig()
//
//	gameEngine, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Jump the peg at 4 over 2 into the opening hole at 1
//	err = gameEngine.Move(4, 1)
//	state := gameEngine.GetState()
//
// Game Rules:
//
// Positions are numbered 1..tri(rows) row-major across a triangle. A move
// jumps a peg over an adjacent peg into an empty hole two cells away along one
// of three directions (right, down-left, down-right); the jumped peg is
// removed. Play starts with a single open hole and ends when no jump remains;
// finishing with exactly one peg is the canonical win.
package engine

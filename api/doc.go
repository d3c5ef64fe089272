// Package api provides HTTP REST API handlers for the peg solitaire game.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Board preset listing and selection
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Get current game state
//   - POST /api/sessions/{id}/move - Execute a single jump
//   - POST /api/sessions/{id}/bulk-move - Execute a sequence of jumps
//   - GET /api/sessions/{id}/legal-moves - List available jumps
//   - POST /api/sessions/{id}/reset - Reset the board
//   - GET /api/sessions/{id}/history - Get move history with pagination
//
// Configuration:
//   - GET /api/configs - List available board presets
//   - POST /api/configs - Save a board preset
//   - GET /api/configs/{name} - Get a specific preset
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Jumps are sent as POST with JSON
// body naming the origin and destination holes:
//
//	{
//	  "from": 4,
//	  "to": 1,
//	  "reset": true|false // optional reset before the jump
//	}
//
// Bulk jumps carry a move list:
//
//	{
//	  "moves": [{"from": 4, "to": 1}, {"from": 6, "to": 4}],
//	  "reset": true|false
//	}
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
//
// Enriched Responses (Move and Bulk Move):
//
// Move responses carry a step trace and, for illegal jumps, an attempted_to
// diagnostic:
//   - step: { idx, from, to, jumped, pegs_before, pegs_after, success }
//   - attempted_to: { from, to, from_pegged, to_pegged, connected, reason }
//   - game_state additions:
//     board_view: ["    X", "   X X", ...] triangle render, X peg / . hole
//     movable_pegs: [4, 6] origins with at least one jump
//
// Bulk move responses additionally report progress through the sequence:
//   - requested_moves, moves_executed, start_pegs, end_pegs
//   - stopped_reason (text), stop_reason_code (enum), stopped_on_move
//     (1-based), truncated, limit
//   - steps: per-jump trace entries as above, with victory/game_over flags
//   - attempted_to: diagnostics for the first illegal jump
package api

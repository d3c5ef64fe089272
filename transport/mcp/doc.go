// Package mcp provides Model Context Protocol server implementation for the
// peg solitaire service.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for board operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - board_state: Get current board state with triangle visualization
//   - jump: Execute a single jump (from -> to)
//   - bulk_jump: Execute multiple jumps in sequence
//   - legal_moves: List the jumps currently available
//   - reset_game: Reset board to initial state
//   - move_history: Retrieve move history with pagination
//   - create_session: Create new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available board configurations
//   - game_instructions: Get comprehensive game instructions and rules
//   - describe_position: Get detailed info about a specific hole (row,
//     pegged status, reachable destinations)
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Session Management:
//
// All board tools require a session_id parameter so AI agents can manage
// multiple concurrent puzzles independently.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously solve the puzzle
//   - Develop and test jump sequences
//   - Analyze board states and make decisions
//   - Manage multiple game sessions
//   - Learn from move history
package mcp

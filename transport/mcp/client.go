package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/pegsolitaire/game/engine"
	"github.com/wricardo/mcp-training/pegsolitaire/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Peg Solitaire",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Peg Solitaire - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Jump pegs over adjacent pegs into empty holes. Each jump removes the
jumped peg. Reduce the board to a single peg to win.

AVAILABLE TOOLS:
- board_state: Get current board state
- jump: Single jump (from -> to) - requires intent explanation
- bulk_jump: Multiple jumps at once - requires intent explanation
- legal_moves: List all jumps currently available
- reset_game: Reset to initial state
- move_history: View past jumps
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- game_instructions: Get comprehensive game instructions and rules
- describe_position: Get detailed info about a specific hole

NOTE: The 'intent' parameter on jump/bulk_jump tools serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Board operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "board_state",
		Description: "Get the current board state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleBoardState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "jump",
		Description: "Jump a peg from one hole over an adjacent peg into an empty hole",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"from": map[string]interface{}{
					"type":        "integer",
					"description": "Origin hole number (must hold a peg)",
				},
				"to": map[string]interface{}{
					"type":        "integer",
					"description": "Destination hole number (must be empty)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this jump (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset before jumping",
				},
			},
			Required: []string{"session_id", "from", "to"},
		},
	}, c.handleJump)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_jump",
		Description: "Execute multiple jumps in sequence",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"moves": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"from": map[string]interface{}{"type": "integer"},
							"to":   map[string]interface{}{"type": "integer"},
						},
						"required": []string{"from", "to"},
					},
					"description": "Array of jumps, each {from, to}",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of jumps (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset before jumping",
				},
			},
			Required: []string{"session_id", "moves"},
		},
	}, c.handleBulkJump)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_moves",
		Description: "List the jumps currently available, optionally restricted to a single origin hole",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"from": map[string]interface{}{
					"type":        "integer",
					"description": "Restrict to jumps starting at this hole (optional)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleLegalMoves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the board to its initial state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available board configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_position",
		Description: "Get detailed information about a specific hole: its row, whether it holds a peg, and the jumps available from it. Useful for verifying board geometry before planning.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"position": map[string]interface{}{
					"type":        []string{"integer", "string"},
					"description": "Hole number (1-based, row-major from the apex) or its letter label (\"a\" for hole 1)",
				},
			},
			Required: []string{"session_id", "position"},
		},
	}, c.handleDescribePosition)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	body := map[string]string{}
	if configName != "" {
		body["config_name"] = configName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleBoardState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleJump(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	from, _ := args["from"].(float64)
	to, _ := args["to"].(float64)
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"from":  int(from),
		"to":    int(to),
		"reset": reset,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleBulkJump(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	movesRaw, _ := args["moves"].([]interface{})
	intent, _ := args["intent"].(string)
	reset, _ := args["reset"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	// Convert moves to {from,to} pairs
	moves := make([]map[string]int, 0, len(movesRaw))
	for _, m := range movesRaw {
		pair, ok := m.(map[string]interface{})
		if !ok {
			continue
		}
		from, _ := pair["from"].(float64)
		to, _ := pair["to"].(float64)
		moves = append(moves, map[string]int{"from": int(from), "to": int(to)})
	}

	body := map[string]interface{}{
		"moves": moves,
		"reset": reset,
	}

	var result service.BulkMoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/bulk-move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatBulkMoveResult(sessionID, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	path := fmt.Sprintf("/api/sessions/%s/legal-moves", sessionID)
	if from, ok := args["from"].(float64); ok {
		path += fmt.Sprintf("?from=%d", int(from))
	}

	var result service.LegalMovesResult
	err := c.apiCall("GET", path, nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatLegalMoves(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Also fetch current segment from live state
	var session service.SessionInfo
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session); err != nil {
		// If fetching session fails, still return the history
		result := formatHistory(&history)
		return mcp.NewToolResultText(result), nil
	}

	result := formatHistory(&history)
	result += "\n" + formatCurrentSegment(session.GameState)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Rows: %d, Holes: %d\n\n",
			config.Name, config.Description, config.Rows, config.Positions)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🎮 Peg Solitaire - Complete Instructions

GAME OBJECTIVE:
Remove pegs by jumping until only one remains. A single remaining peg is
victory; more than one peg with no jump available is game over.

GAME MECHANICS:
• A jump moves a peg in a straight line over one adjacent peg into the
  empty hole directly beyond it
• The jumped peg is removed from the board
• Every jump removes exactly one peg, so a board that starts with N pegs
  ends after at most N-1 jumps

BOARD LAYOUT:
Holes are numbered row by row from the apex. On the classic 5-row board:

        1
       2 3
      4 5 6
     7 8 9 10
   11 12 13 14 15

• X - hole holding a peg
• . - empty hole

Jump directions follow the triangle's three axes: along a row, down-left,
and down-right (and their reverses). Row jumps never wrap between rows:
3 cannot jump over 4, because 3 ends one row and 4 starts the next.

🤖 AI AGENTS - CRITICAL SUCCESS STRATEGIES:

⚠️ GEOMETRY VERIFICATION (MOST COMMON FAILURE POINT):
Row boundaries are invisible in a flat numbering. BEFORE planning:

1. **Map each hole to its row**: hole 1 is row 1; rows end at the
   triangular numbers 1, 3, 6, 10, 15, ...
2. **Never assume adjacency from numbering alone**: 6 and 7 are
   consecutive numbers but sit at opposite ends of their rows
3. **Use legal_moves and describe_position** to confirm which jumps a
   hole actually supports before committing to a plan

🗺️ SYSTEMATIC PLANNING:
- Request board_state after every few jumps and re-verify your mental map
- Track which holes are empty, not just how many pegs remain
- Pegs stranded in corners (1, 11, 15 on the classic board) have the
  fewest escape routes - deal with them early

🧩 ENDGAME TECHNIQUE:
- Keep remaining pegs within jumping distance of each other
- A pair of pegs that cannot reach one another is already a loss
- Work backwards: decide where the final peg should rest and funnel
  captures toward it

🔄 ITERATIVE DEVELOPMENT:
1. **Analysis**: map rows, locate the empty holes
2. **Planning**: design a jump sequence, verify each link with legal_moves
3. **Execution**: use bulk_jump for committed sequences
4. **Refinement**: on an illegal jump, read the attempted_to diagnostic
   and repair the plan from that point

🚨 CRITICAL PITFALLS TO AVOID:
- ❌ Jumping "across" a row boundary (e.g. 3 over 4)
- ❌ Leaving two pegs that cannot reach each other
- ❌ Ignoring the attempted_to diagnostics after a failed jump
- ❌ Planning long sequences without verifying intermediate board states

🎮 API USAGE BEST PRACTICES:
- Use bulk_jump for efficiency rather than individual jumps
- A bulk sequence stops at the first illegal jump; the result reports
  which move failed and why
- Use reset:true to retry a full sequence from the starting board

VICTORY CONDITIONS:
- Exactly one peg remains - the game displays "🎉 VICTORY!"

GAME OVER CONDITIONS:
- More than one peg remains and no legal jump exists
- The game displays "💀 GAME OVER" when this occurs

CONFIGURATION OPTIONS:
- classic: 5 rows, apex hole open (the standard cracker-barrel puzzle)
- Other presets vary the row count and the initially open hole

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has unique 4-character ID
- Sessions maintain independent state and configuration
- Use session-specific tools for multi-game management

Remember: success requires exact row geometry, early corner management,
and keeping the survivors connected. The most common AI failure is
assuming two consecutively numbered holes are adjacent - always verify!

Good luck leaving just one peg! 🟡`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribePosition(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	pos, ok := parsePosition(args["position"])
	if !ok {
		return mcp.NewToolResultError("position must be a hole number or letter label (1 or \"a\")"), nil
	}

	// Get the current game state to access the board
	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	total := engine.RowEnd(state.Rows)
	if pos < 1 || pos > total {
		return mcp.NewToolResultError(fmt.Sprintf("Position %d is off the board. Holes are numbered 1-%d on a %d-row board",
			pos, total, state.Rows)), nil
	}

	pegged := false
	if pos-1 < len(state.Pegs) {
		pegged = state.Pegs[pos-1]
	}

	row := engine.RowOf(engine.Position(pos))
	rowStart := engine.RowEnd(row-1) + 1
	rowEnd := engine.RowEnd(row)

	status := "empty"
	statusChar := "."
	if pegged {
		status = "holds a peg"
		statusChar = "X"
	}

	// Jumps available from this hole right now
	var moves service.LegalMovesResult
	jumpLines := ""
	if err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/legal-moves?from=%d", sessionID, pos), nil, &moves); err == nil {
		for _, m := range moves.Moves {
			jumpLines += fmt.Sprintf("  %d -> %d (removes %d)\n", m.From, m.To, m.Jumped)
		}
	}
	if jumpLines == "" {
		jumpLines = "  (none right now)\n"
	}

	corner := ""
	if pos == 1 || pos == rowStart && row == state.Rows || pos == rowEnd && row == state.Rows {
		corner = "\n⚠️ This is a corner hole - pegs here have the fewest escape routes."
	}

	result := fmt.Sprintf(`Hole %d (label %q):
━━━━━━━━━━━━━━━━━━━━━━━━
Character: %s
Row: %d (holes %d-%d)
Status: %s
Jumps available from here:
%s%s`,
		pos, positionLabel(pos), statusChar, row, rowStart, rowEnd, status, jumpLines, corner)

	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	// Header (include cumulative total moves)
	result.WriteString(fmt.Sprintf("Pegs: %d/%d | Rows: %d | Moves: %d\n\n",
		state.PegsLeft, state.TotalPositions, state.Rows, state.TotalMoves))

	// Board: prefer the server-provided view, otherwise derive from pegs
	view := state.BoardView
	if len(view) == 0 {
		view = renderBoard(state)
	}
	for _, line := range view {
		result.WriteString(line)
		result.WriteString("\n")
	}

	// Decision aids (if available)
	if len(state.MovablePegs) > 0 {
		result.WriteString(fmt.Sprintf("\nMovable pegs: %s\n", joinInts(state.MovablePegs)))
	}

	// Status
	if state.GameOver {
		if state.Victory {
			result.WriteString("\n🎉 VICTORY!")
		} else {
			result.WriteString("\n💀 GAME OVER")
		}
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

// renderBoard draws the triangle from the raw peg slice
func renderBoard(state *engine.GameState) []string {
	lines := make([]string, 0, state.Rows)
	for row := 1; row <= state.Rows; row++ {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", state.Rows-row))
		start := engine.RowEnd(row-1) + 1
		for pos := start; pos <= engine.RowEnd(row); pos++ {
			if pos > start {
				b.WriteString(" ")
			}
			if pos-1 < len(state.Pegs) && state.Pegs[pos-1] {
				b.WriteString("X")
			} else {
				b.WriteString(".")
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = "✓ Jump successful\n"
	} else {
		response = "✗ Jump failed\n"
	}

	// Compact step summary (if available)
	if result.Step != nil {
		s := result.Step
		status := "✗"
		if s.Success {
			status = "✓"
		}
		response += fmt.Sprintf("Step: %d→%d over %d pegs=%d %s\n",
			s.From, s.To, s.Jumped, s.PegsAfter, status)
	}

	// Failure diagnostic (if available)
	if result.AttemptedTo != nil {
		a := result.AttemptedTo
		response += fmt.Sprintf("Blocked: attempted %d→%d reason=%s (from_pegged=%v to_pegged=%v connected=%v)\n",
			a.From, a.To, a.Reason, a.FromPegged, a.ToPegged, a.Connected)
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatBulkMoveResult(sessionID string, result *service.BulkMoveResult) string {
	var b strings.Builder

	// Session header
	rows := 0
	configName := ""
	if result.GameState != nil {
		rows = result.GameState.Rows
		configName = result.GameState.ConfigName
	}
	b.WriteString(fmt.Sprintf("Session: %s • Config: %s • Rows: %d\n",
		sessionID, configName, rows))

	// Bulk summary
	b.WriteString(fmt.Sprintf("Executed %d/%d jumps (%d → %d pegs)\n",
		result.MovesExecuted, result.RequestedMoves, result.StartPegs, result.EndPegs))
	if result.StoppedReason != "" {
		b.WriteString(fmt.Sprintf("Stopped: %s\n", result.StoppedReason))
	}
	if result.Truncated {
		b.WriteString(fmt.Sprintf("Truncated to the first %d jumps\n", result.Limit))
	}

	// Events (keep as-is, concise)
	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	// Per-step trace from this call
	if len(result.Steps) > 0 {
		b.WriteString("\nSteps (this call):\n")
		for _, s := range result.Steps {
			status := "✗"
			if s.Success {
				status = "✓"
			}
			b.WriteString(fmt.Sprintf("%d. %d→%d over %d pegs=%d %s\n",
				s.Idx, s.From, s.To, s.Jumped, s.PegsAfter, status))
		}
	}

	// Stopped diagnostic
	if result.AttemptedTo != nil {
		a := result.AttemptedTo
		b.WriteString(fmt.Sprintf("\nBlocked on move %d: attempted %d→%d reason=%s\n",
			result.StoppedOnMove, a.From, a.To, a.Reason))
	}

	// Full state at the end (kept for compatibility)
	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatLegalMoves(result *service.LegalMovesResult) string {
	var b strings.Builder

	if result.From != 0 {
		b.WriteString(fmt.Sprintf("Jumps from hole %d:\n", result.From))
	} else {
		b.WriteString("Legal jumps:\n")
	}

	if len(result.Moves) == 0 {
		b.WriteString("(none)\n")
	} else {
		for _, m := range result.Moves {
			b.WriteString(fmt.Sprintf("- %d → %d (removes %d)\n", m.From, m.To, m.Jumped))
		}
	}

	if len(result.MovablePegs) > 0 {
		b.WriteString(fmt.Sprintf("\nMovable pegs: %s\n", joinInts(result.MovablePegs)))
	}

	if result.GameState != nil {
		b.WriteString("\n")
		b.WriteString(formatGameState(result.GameState))
	}
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Move History (Page %d/%d) — Total (cumulative): %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for i, move := range history.Moves {
		num := (history.Page-1)*history.PageSize + i + 1
		status := "✓"
		if !move.Success {
			status = "✗"
		}
		result += fmt.Sprintf("%d. %d→%d %s [Pegs: %d]\n",
			num, move.From, move.To, status, move.PegsLeft)
	}

	return result
}

func formatCurrentSegment(state *engine.GameState) string {
	if state == nil {
		return "Current Segment: unavailable"
	}
	moves := state.CurrentMoves
	total := state.CurrentMovesCount
	header := fmt.Sprintf("Current Move Segment — Jumps: %d\n\n", total)
	if len(moves) == 0 {
		return header + "(no jumps in current segment)"
	}
	var b strings.Builder
	b.WriteString(header)
	for i, move := range moves {
		status := "✓"
		if !move.Success {
			status = "✗"
		}
		// i is zero-based within the segment
		b.WriteString(fmt.Sprintf("%d. %d→%d %s [Pegs: %d]\n", i+1, move.From, move.To, status, move.PegsLeft))
	}
	return b.String()
}

// positionLabel maps a hole number to its letter label: 1 -> "a", 26 -> "z",
// 27 -> "aa". The engine only sees integers; labels exist at this layer.
func positionLabel(pos int) string {
	label := ""
	for pos > 0 {
		pos--
		label = string(rune('a'+pos%26)) + label
		pos /= 26
	}
	return label
}

// parsePosition accepts a hole argument as either a number or a letter label
func parsePosition(arg interface{}) (int, bool) {
	switch v := arg.(type) {
	case float64:
		return int(v), true
	case string:
		pos := 0
		for _, r := range strings.ToLower(v) {
			if r < 'a' || r > 'z' {
				return 0, false
			}
			pos = pos*26 + int(r-'a') + 1
		}
		return pos, pos > 0
	}
	return 0, false
}

func joinInts(nums []int) string {
	sorted := make([]int, len(nums))
	copy(sorted, nums)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

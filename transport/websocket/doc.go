// Package websocket streams board updates to connected clients in real time.
//
// A single Hub fans messages out to every client watching a session. Clients
// attach with a session ID query parameter (?session=abc1) and from then on
// receive a JSON message after every jump played in that session:
//
//	{"session_id": "abc1", "event": "state_update", "game_state": {...}}
//
// Clients are write-only from the hub's point of view; anything they send is
// discarded. Connections are kept alive with ping/pong and dropped when their
// send buffer backs up, so a stuck client never blocks the hub.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// transports call BroadcastToSession after each jump
//	hub.BroadcastToSession(sessionID, state)
package websocket

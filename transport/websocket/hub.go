package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wricardo/mcp-training/pegsolitaire/game/engine"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// Message is the envelope pushed to clients watching a game.
type Message struct {
	SessionID string            `json:"session_id"`
	GameState *engine.GameState `json:"game_state,omitempty"`
	Event     string            `json:"event,omitempty"`
	Data      interface{}       `json:"data,omitempty"`
}

// Client is a single WebSocket connection watching one game session.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
}

// Hub fans board updates out to every client watching a session.
type Hub struct {
	// Watchers grouped by session ID
	watchers map[string]map[*Client]bool

	// Queued messages to fan out
	broadcast chan *Message

	// Join requests from new connections
	join chan *Client

	// Leave requests from closing connections
	leave chan *Client
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		watchers:  make(map[string]map[*Client]bool),
		broadcast: make(chan *Message),
		join:      make(chan *Client),
		leave:     make(chan *Client),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.join:
			h.addWatcher(client)

		case client := <-h.leave:
			h.dropWatcher(client)

		case message := <-h.broadcast:
			h.fanOut(message)
		}
	}
}

// ServeWS upgrades an HTTP request and attaches the connection to a session
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, sessionID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, 256),
		sessionID: sessionID,
	}

	client.hub.join <- client

	go client.writePump()
	go client.readPump()
}

// BroadcastToSession pushes a board state update to everyone watching a session
func (h *Hub) BroadcastToSession(sessionID string, state *engine.GameState) {
	data, err := json.Marshal(&Message{
		SessionID: sessionID,
		GameState: state,
		Event:     "state_update",
	})
	if err != nil {
		log.Printf("Failed to marshal WebSocket message: %v", err)
		return
	}

	h.deliver(sessionID, data)
}

// BroadcastEvent queues a custom event for everyone watching a session
func (h *Hub) BroadcastEvent(sessionID string, event string, data interface{}) {
	h.broadcast <- &Message{
		SessionID: sessionID,
		Event:     event,
		Data:      data,
	}
}

// fanOut encodes a queued message and delivers it to its session
func (h *Hub) fanOut(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to marshal broadcast message: %v", err)
		return
	}

	h.deliver(message.SessionID, data)
}

// deliver writes encoded bytes to every watcher of the session. Watchers whose
// send buffer is full are dropped rather than blocking the hub.
func (h *Hub) deliver(sessionID string, data []byte) {
	for client := range h.watchers[sessionID] {
		select {
		case client.send <- data:
		default:
			h.dropWatcher(client)
		}
	}
}

// addWatcher places a client into its session's watcher set
func (h *Hub) addWatcher(client *Client) {
	if h.watchers[client.sessionID] == nil {
		h.watchers[client.sessionID] = make(map[*Client]bool)
	}
	h.watchers[client.sessionID][client] = true

	log.Printf("Client watching session %s (total clients: %d)",
		client.sessionID, len(h.watchers[client.sessionID]))
}

// dropWatcher removes a client and discards the session entry once empty
func (h *Hub) dropWatcher(client *Client) {
	clients, ok := h.watchers[client.sessionID]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}

	delete(clients, client)
	close(client.send)

	if len(clients) == 0 {
		delete(h.watchers, client.sessionID)
	}

	log.Printf("Client left session %s (remaining clients: %d)",
		client.sessionID, len(clients))
}

// readPump drains the connection until it closes. Clients only listen; incoming
// payloads are read for keepalive purposes and discarded.
func (c *Client) readPump() {
	defer func() {
		c.hub.leave <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump forwards hub messages to the connection and keeps it alive with pings
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Fold any queued messages into the same frame
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

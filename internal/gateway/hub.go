// Package gateway fans server events out to WebSocket connections. One hub
// serves the whole process: clients are tagged with the room they currently
// occupy, so the same hub handles room-scoped broadcast and lobby-wide
// notifications like room_list.
package gateway

import (
	"context"
	"sync"

	"github.com/coder/websocket"
	"golang.org/x/time/rate"

	"github.com/wanwish/rainy-words/internal/logging"
)

// Inbound messages per connection: steady typing plus UI chatter fits well
// under 20/s; the burst absorbs a paste or reconnect storm.
const (
	inboundRate  = 20
	inboundBurst = 40
)

// Client is one WebSocket connection in the hub.
type Client struct {
	ID      string
	Conn    *websocket.Conn
	Send    chan []byte
	Limiter *rate.Limiter

	mu   sync.Mutex
	room string
}

func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:      id,
		Conn:    conn,
		Send:    make(chan []byte, 64),
		Limiter: rate.NewLimiter(inboundRate, inboundBurst),
	}
}

// Room returns the room code this connection occupies, "" while in the lobby.
func (c *Client) Room() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.room
}

func (c *Client) setRoom(code string) {
	c.mu.Lock()
	c.room = code
	c.mu.Unlock()
}

// WritePump drains the Send queue into the connection. Returns when the
// context ends, the queue closes, or a write fails.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// Hub tracks every live connection.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
}

// Unregister removes a client and closes its send queue.
func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[connID]; ok {
		close(c.Send)
		delete(h.clients, connID)
	}
}

// SetRoom moves a connection between the lobby ("" code) and a room.
func (h *Hub) SetRoom(connID, roomCode string) {
	h.mu.RLock()
	c := h.clients[connID]
	h.mu.RUnlock()
	if c != nil {
		c.setRoom(roomCode)
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ToConn sends one message to a single connection. Non-blocking: a client
// that cannot keep up loses messages rather than stalling the game loop.
func (h *Hub) ToConn(connID string, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if c, ok := h.clients[connID]; ok {
		h.enqueue(c, msg)
	}
}

// ToRoom broadcasts to every connection in roomCode.
func (h *Hub) ToRoom(roomCode string, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if c.Room() == roomCode {
			h.enqueue(c, msg)
		}
	}
}

// ToRoomExcept broadcasts to a room, skipping one connection.
func (h *Hub) ToRoomExcept(roomCode, exceptID string, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, c := range h.clients {
		if id == exceptID {
			continue
		}
		if c.Room() == roomCode {
			h.enqueue(c, msg)
		}
	}
}

// ToAll broadcasts to every connection, lobby included.
func (h *Hub) ToAll(msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		h.enqueue(c, msg)
	}
}

func (h *Hub) enqueue(c *Client, msg []byte) {
	select {
	case c.Send <- msg:
	default:
		logging.Log.Warnf("[Hub] dropping message for slow client %s", c.ID)
	}
}

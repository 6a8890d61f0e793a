package realtime

import (
	"encoding/json"
	"sync"
)

// Client represents a single websocket client connection. The actual
// network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Event is a board change notification pushed to every viewer. The
// board is shared (cards have no owner), so there is no per-user
// routing.
type Event struct {
	Type       string `json:"type"`
	CardID     uint   `json:"cardId"`
	ColumnName string `json:"columnName,omitempty"`
}

const (
	EventCardCreated = "card_created"
	EventCardMoved   = "card_moved"
	EventCardDeleted = "card_deleted"
)

// Hub maintains the set of connected board viewers and fans events
// out to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[Client]struct{})}
}

// Register adds a client.
func (h *Hub) Register(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a client.
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// Broadcast sends an event to every connected client. The client set
// is snapshotted under the lock and writes happen outside it, so a
// stalled client cannot block Register/Unregister. Write failures are
// left for the client's own handler to clean up.
func (h *Hub) Broadcast(evt Event) {
	message, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(message)
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

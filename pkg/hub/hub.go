package hub

import (
	"encoding/json"
	"sync"

	"github.com/ambientworks/go-officeanim/internal/log"
)

// Hub maintains the set of connected renderer clients and fans frame
// batches out to them. Slow clients are dropped rather than allowed to
// stall the animation tick.
type Hub struct {
	name string

	clients    map[*Client]bool
	broadcast  chan Message
	register   chan *Client
	unregister chan *Client

	// Guards clients for read-only access from outside the run loop.
	mu sync.RWMutex
}

// New creates a new Hub.
func New(name string) *Hub {
	return &Hub{
		name:       name,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop. Call it in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			log.Info("client connected", "hub", h.name, "client", client.ID(), "total", count)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			log.Info("client disconnected", "hub", h.name, "client", client.ID(), "remaining", count)

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Send buffer full: the client can't keep up with
					// the tick rate. Drop it.
					close(client.send)
					delete(h.clients, client)
					log.Warn("dropped slow client", "hub", h.name, "client", client.ID())
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast queues a message for every connected client.
func (h *Hub) Broadcast(msg Message) {
	select {
	case h.broadcast <- msg:
	default:
		log.Warn("broadcast channel full, dropping message", "hub", h.name)
	}
}

// BroadcastJSON encodes v once and broadcasts the bytes.
func (h *Hub) BroadcastJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	h.Broadcast(NewMessage(data))
	return nil
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

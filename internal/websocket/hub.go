package websocket

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/finboard/finboard/internal/models"
)

// Hub maintains the set of connected clients and fans quote broadcasts
// out to them.
type Hub struct {
	mu          sync.Mutex
	connections map[*websocket.Conn]bool

	broadcast chan models.Message
	upgrader  websocket.Upgrader
}

// NewHub creates a hub for managing WebSocket connections.
func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]bool),
		broadcast:   make(chan models.Message),
		upgrader: websocket.Upgrader{
			// The dashboard is served from arbitrary origins in dev.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Run listens for messages to broadcast. It blocks; run it in its own
// goroutine.
func (h *Hub) Run() {
	for msg := range h.broadcast {
		h.mu.Lock()
		for client := range h.connections {
			if err := client.WriteJSON(msg); err != nil {
				log.Printf("Error sending message to client: %v", err)
				client.Close()
				delete(h.connections, client)
			}
		}
		h.mu.Unlock()
	}
}

// HandleWebSocket upgrades an HTTP connection to WebSocket and keeps it
// registered until the client goes away.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading to WebSocket: %v", err)
		return
	}

	h.mu.Lock()
	h.connections[ws] = true
	h.mu.Unlock()

	// Drain reads to notice disconnects.
	go func() {
		defer ws.Close()
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.connections, ws)
				h.mu.Unlock()
				break
			}
		}
	}()
}

// Broadcast sends a message to all connected clients.
func (h *Hub) Broadcast(msg models.Message) {
	h.broadcast <- msg
}

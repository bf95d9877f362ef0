package eventsController

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Renzo49/Prudente-Pharmacy-04/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans store events out to connected websocket clients. It is the
// cross-context counterpart of the in-process bus: another browsing
// context connects here to hear about pushes it did not make.
type Hub struct {
	bus *store.Bus

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub(bus *store.Bus) *Hub {
	return &Hub{bus: bus, clients: make(map[*websocket.Conn]bool)}
}

// Run forwards bus events to every client until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	events, cancel := h.bus.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			h.broadcast(evt)
		}
	}
}

func (h *Hub) broadcast(evt store.Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

// Handler upgrades the connection and keeps it registered until the
// client goes away. Inbound messages are drained and ignored.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			break
		}
	}
}

// Package push fans domain change events out to websocket subscribers.
// Authenticated clients join a room keyed by their user id and receive
// cart/wishlist/order changes; every client joins the catalog room for
// product changes. This is the explicit onCartChanged/onCatalogChanged
// channel the core exposes instead of assuming a reactive UI framework.
package push

import (
	"sync"
)

// CatalogRoom receives product-change events for all connected clients.
const CatalogRoom = "catalog"

type broadcastMsg struct {
	Room string
	Data []byte
}

type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			for _, room := range c.Rooms {
				if h.rooms[room] == nil {
					h.rooms[room] = make(map[*Client]bool)
				}
				h.rooms[room][c] = true
			}
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			h.dropClient(c)
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					h.dropClient(c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return
		}
	}
}

// dropClient removes c from every room it joined. Caller holds h.mu.
func (h *Hub) dropClient(c *Client) {
	removed := false
	for _, room := range c.Rooms {
		if conns := h.rooms[room]; conns != nil && conns[c] {
			delete(conns, c)
			removed = true
			if len(conns) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	if removed {
		close(c.Send)
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast sends data to every client in room.
func (h *Hub) Broadcast(room string, data []byte) {
	h.broadcast <- broadcastMsg{Room: room, Data: data}
}

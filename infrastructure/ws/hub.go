// Package ws is the WebSocket gateway. It owns connection identity, the
// per-room live membership the presence layer queries, and best-effort
// event delivery. Coordination logic lives behind contract.Coordinator;
// nothing in this package decides chat semantics.
package ws

import (
	"log/slog"
	"sync"

	"chat-hub/domain"
	"chat-hub/domain/event"
)

type set map[domain.ConnID]struct{}

// Hub tracks live clients and their room membership. It implements
// contract.Transport for the coordination core.
type Hub struct {
	mu      sync.RWMutex
	log     *slog.Logger
	clients map[domain.ConnID]*Client
	rooms   map[string]set
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:     log,
		clients: make(map[domain.ConnID]*Client),
		rooms:   make(map[string]set),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.id] = c
}

// unregister drops the client from the hub and every room, and shuts its
// send channel down so the write pump terminates.
func (h *Hub) unregister(id domain.ConnID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.clients[id]
	if !ok {
		return
	}
	delete(h.clients, id)
	client.shutdown()

	for room, members := range h.rooms {
		delete(members, id)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// Connections returns the IDs of every live connection.
func (h *Hub) Connections() []domain.ConnID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]domain.ConnID, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	return ids
}

// ConnectionsIn returns the IDs of the connections joined to room.
func (h *Hub) ConnectionsIn(room string) []domain.ConnID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members, ok := h.rooms[room]
	if !ok {
		return nil
	}
	ids := make([]domain.ConnID, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	return ids
}

func (h *Hub) Join(id domain.ConnID, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[id]; !ok {
		return
	}
	if _, ok := h.rooms[room]; !ok {
		h.rooms[room] = make(set)
	}
	h.rooms[room][id] = struct{}{}
}

func (h *Hub) Leave(id domain.ConnID, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if members, ok := h.rooms[room]; ok {
		delete(members, id)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// Emit delivers an event to one connection. Unknown connections and full
// send buffers drop the frame; delivery is best-effort by contract.
func (h *Hub) Emit(id domain.ConnID, e event.Outbound) {
	frame, err := encodeOutbound(e)
	if err != nil {
		h.log.Error("event encode failed", "event", e.Event(), "error", err)
		return
	}
	h.mu.RLock()
	client, ok := h.clients[id]
	h.mu.RUnlock()
	if !ok {
		return
	}
	h.deliver(client, frame, e.Event())
}

// EmitRoom fans an event out to every connection joined to room.
func (h *Hub) EmitRoom(room string, e event.Outbound) {
	h.emitRoom(room, "", e)
}

// EmitRoomExcept fans out to a room minus one connection.
func (h *Hub) EmitRoomExcept(room string, except domain.ConnID, e event.Outbound) {
	h.emitRoom(room, except, e)
}

func (h *Hub) emitRoom(room string, except domain.ConnID, e event.Outbound) {
	frame, err := encodeOutbound(e)
	if err != nil {
		h.log.Error("event encode failed", "event", e.Event(), "error", err)
		return
	}

	h.mu.RLock()
	var targets []*Client
	for id := range h.rooms[room] {
		if id == except {
			continue
		}
		if client, ok := h.clients[id]; ok {
			targets = append(targets, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range targets {
		h.deliver(client, frame, e.Event())
	}
}

func (h *Hub) deliver(client *Client, frame []byte, name string) {
	delivered, closed := client.trySend(frame)
	if !delivered && !closed {
		h.log.Warn("slow connection, frame dropped", "conn", client.id, "event", name)
	}
}

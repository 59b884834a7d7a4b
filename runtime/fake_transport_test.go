package runtime

import (
	"sync"

	"chat-hub/domain"
	"chat-hub/domain/event"
)

// emitted records one fan-out instruction given to the transport.
type emitted struct {
	Conn   domain.ConnID
	Room   string
	Except domain.ConnID
	Event  event.Outbound
}

// fakeTransport is an in-memory stand-in for the websocket hub: it tracks
// live connections and room membership, and records every emit so tests
// can assert on the fan-out.
type fakeTransport struct {
	mu      sync.Mutex
	conns   map[domain.ConnID]struct{}
	rooms   map[string]map[domain.ConnID]struct{}
	emitted []emitted
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		conns: make(map[domain.ConnID]struct{}),
		rooms: make(map[string]map[domain.ConnID]struct{}),
	}
}

// connect simulates a connection opening on the transport.
func (f *fakeTransport) connect(id domain.ConnID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conns[id] = struct{}{}
}

// drop simulates the transport losing a connection.
func (f *fakeTransport) drop(id domain.ConnID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.conns, id)
	for room, members := range f.rooms {
		delete(members, id)
		if len(members) == 0 {
			delete(f.rooms, room)
		}
	}
}

func (f *fakeTransport) Connections() []domain.ConnID {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]domain.ConnID, 0, len(f.conns))
	for id := range f.conns {
		ids = append(ids, id)
	}
	return ids
}

func (f *fakeTransport) ConnectionsIn(room string) []domain.ConnID {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]domain.ConnID, 0, len(f.rooms[room]))
	for id := range f.rooms[room] {
		ids = append(ids, id)
	}
	return ids
}

func (f *fakeTransport) Join(id domain.ConnID, room string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rooms[room]; !ok {
		f.rooms[room] = make(map[domain.ConnID]struct{})
	}
	f.rooms[room][id] = struct{}{}
}

func (f *fakeTransport) Leave(id domain.ConnID, room string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if members, ok := f.rooms[room]; ok {
		delete(members, id)
		if len(members) == 0 {
			delete(f.rooms, room)
		}
	}
}

func (f *fakeTransport) Emit(id domain.ConnID, e event.Outbound) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emitted = append(f.emitted, emitted{Conn: id, Event: e})
}

func (f *fakeTransport) EmitRoom(room string, e event.Outbound) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emitted = append(f.emitted, emitted{Room: room, Event: e})
}

func (f *fakeTransport) EmitRoomExcept(room string, except domain.ConnID, e event.Outbound) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emitted = append(f.emitted, emitted{Room: room, Except: except, Event: e})
}

// sentTo returns the events emitted directly to one connection.
func (f *fakeTransport) sentTo(id domain.ConnID) []event.Outbound {
	f.mu.Lock()
	defer f.mu.Unlock()
	var events []event.Outbound
	for _, e := range f.emitted {
		if e.Conn == id {
			events = append(events, e.Event)
		}
	}
	return events
}

// sentToRoom returns the events fanned out to one room.
func (f *fakeTransport) sentToRoom(room string) []event.Outbound {
	f.mu.Lock()
	defer f.mu.Unlock()
	var events []event.Outbound
	for _, e := range f.emitted {
		if e.Room == room {
			events = append(events, e.Event)
		}
	}
	return events
}

// lastSetUsers returns the latest presence snapshot fanned out to a room.
func (f *fakeTransport) lastSetUsers(room string) ([]string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.emitted) - 1; i >= 0; i-- {
		if f.emitted[i].Room != room {
			continue
		}
		if snapshot, ok := f.emitted[i].Event.(event.SetUsers); ok {
			return snapshot.Users, true
		}
	}
	return nil, false
}

package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Coordinator handles every inbound client event as one invariant-preserving
// transaction: it reads and writes the registry and the store, then instructs
// the transport what to emit. Errors are surfaced to the originating
// connection only; no request can take the process down.
type Coordinator struct {
	// mu serializes room creation and deletion so that two concurrent
	// creates of one name can never both pass the existence check. A
	// delete racing a send is resolved by the store: message inserts
	// re-verify the room row in the same transaction.
	mu        sync.Mutex
	log       *slog.Logger
	registry  *Registry
	presence  *Presence
	router    *Router
	store     contract.Store
	transport contract.Transport
	audit     contract.AuditSink
}

func NewCoordinator(log *slog.Logger, registry *Registry, presence *Presence,
	router *Router, store contract.Store, transport contract.Transport,
	audit contract.AuditSink) *Coordinator {
	return &Coordinator{
		log:       log,
		registry:  registry,
		presence:  presence,
		router:    router,
		store:     store,
		transport: transport,
		audit:     audit,
	}
}

// Connect allocates a session for a freshly opened connection.
func (c *Coordinator) Connect(id domain.ConnID) {
	c.registry.Register(id)
	c.log.Info(fmt.Sprintf("Connected to server with id %s", id))
}

// SetDefaultRoom moves the connection into the default room and publishes
// the global presence snapshot there.
func (c *Coordinator) SetDefaultRoom(id domain.ConnID) {
	previous, err := c.registry.SetRoom(id, domain.DefaultRoom)
	if err != nil {
		c.log.Warn("set_default_room without session", "conn", id)
		return
	}
	if previous != "" {
		c.transport.Leave(id, previous)
	}
	c.transport.Join(id, domain.DefaultRoom)
	c.publishUsers(domain.DefaultRoom, domain.Global)
}

// GetChats replies to the requester with the room list.
func (c *Coordinator) GetChats(id domain.ConnID) {
	rooms, err := c.store.ListRooms()
	if err != nil {
		c.log.Error("room list failed", "conn", id, "error", err)
		c.transport.Emit(id, event.RoomError{})
		return
	}
	c.transport.Emit(id, toSetChats(rooms))
}

// CreateRoom creates a room or reports room_error to the requester on an
// empty or duplicate name. On success the requester gets the updated list.
func (c *Coordinator) CreateRoom(id domain.ConnID, name string) {
	if name == "" {
		c.transport.Emit(id, event.RoomError{})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.store.CreateRoom(name); err != nil {
		if errors.Is(err, errors.ErrDuplicateRoom) {
			c.log.Info(fmt.Sprintf("Room %s already exists", name))
		} else {
			c.log.Error("room create failed", "room", name, "error", err)
		}
		c.transport.Emit(id, event.RoomError{})
		return
	}

	rooms, err := c.store.ListRooms()
	if err != nil {
		c.log.Error("room list failed", "conn", id, "error", err)
		c.transport.Emit(id, event.RoomError{})
		return
	}
	c.transport.Emit(id, toSetChats(rooms))
}

// DeleteRoom purges a room and its messages, then moves any remaining
// occupants back to the default room so no session is left pointing at a
// room that no longer exists. The default room itself cannot be deleted.
func (c *Coordinator) DeleteRoom(id domain.ConnID, name string) {
	if name == "" || name == domain.DefaultRoom {
		c.transport.Emit(id, event.RoomError{})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.DeleteRoom(name); err != nil {
		if errors.Is(err, errors.ErrUnknownRoom) {
			c.log.Info(fmt.Sprintf("Room %s does not exist", name))
		} else {
			c.log.Error("room delete failed", "room", name, "error", err)
		}
		c.transport.Emit(id, event.RoomError{})
		return
	}

	c.evictOccupants(name)

	rooms, err := c.store.ListRooms()
	if err != nil {
		c.log.Error("room list failed", "conn", id, "error", err)
		c.transport.Emit(id, event.RoomError{})
		return
	}
	c.transport.Emit(id, toSetChats(rooms))
}

// evictOccupants force-transitions every member of a deleted room to the
// default room and notifies them, then refreshes presence on default.
func (c *Coordinator) evictOccupants(room string) {
	occupants := c.transport.ConnectionsIn(room)
	for _, conn := range occupants {
		if _, err := c.registry.SetRoom(conn, domain.DefaultRoom); err != nil {
			continue
		}
		c.transport.Leave(conn, room)
		c.transport.Join(conn, domain.DefaultRoom)
		if name, ok := c.registry.Username(conn); ok {
			c.transport.Emit(conn, event.JoinedRoom{Username: name, Room: domain.DefaultRoom})
		}
	}
	if len(occupants) > 0 {
		c.publishUsers(domain.DefaultRoom, domain.Global)
	}
}

// SetUsername claims a name for the connection. Uniqueness is enforced
// against active sessions; the durable user record is best-effort and only
// tracks names ever claimed.
func (c *Coordinator) SetUsername(id domain.ConnID, name string) {
	if err := c.registry.Claim(id, name); err != nil {
		c.log.Info("username claim rejected", "conn", id, "name", name, "reason", err)
		c.transport.Emit(id, event.UserError{})
		return
	}
	if err := c.store.CreateUser(name); err != nil {
		// Duplicate durable records across reconnects are acceptable.
		c.log.Warn("durable user record failed", "name", name, "error", err)
	}
	c.transport.Emit(id, event.NewUser{Username: name})
	c.publishUsers(domain.DefaultRoom, domain.Global)
}

// GetMessages replies with the broadcast-only history of a room. A room
// that no longer exists yields an empty history, never residual messages.
func (c *Coordinator) GetMessages(id domain.ConnID, room string) {
	messages, err := c.router.History(room)
	if err != nil && !errors.Is(err, errors.ErrUnknownRoom) {
		c.log.Error("history read failed", "room", room, "error", err)
		c.transport.Emit(id, event.MessageError{})
		return
	}
	c.transport.Emit(id, event.SetMessages{
		Messages: lo.Map(messages, func(m domain.Message, _ int) event.MessageView {
			return toMessageView(m)
		}),
	})
}

// HandleMessage audits the inbound event, routes the message, then fans it
// out. Broadcasts go to the whole room; directed messages go to the target
// and echo back to the sender.
func (c *Coordinator) HandleMessage(ctx context.Context, id domain.ConnID, to, room, text, date, tm string) {
	c.audit.Consume(ctx, domain.AuditEntry{
		ID:    uuid.New(),
		Conn:  id,
		Event: "message",
		Room:  room,
		Text:  text,
		At:    time.Now().UTC(),
	})

	outcome, err := c.router.Send(id, to, room, text, date, tm)
	if err != nil {
		c.log.Info("message rejected", "conn", id, "room", room, "reason", err)
		c.transport.Emit(id, event.MessageError{})
		return
	}

	msg := outcome.Message
	if outcome.Broadcast {
		c.transport.EmitRoom(room, event.ChatMessage{
			Username: msg.Sender,
			Text:     msg.Text,
			Date:     msg.Date,
			Time:     msg.Time,
		})
		return
	}

	pm := event.PM{
		To:       msg.Recipient,
		Username: msg.Sender,
		Text:     msg.Text,
		Date:     msg.Date,
		Time:     msg.Time,
	}
	c.transport.Emit(outcome.Target, pm)
	c.transport.Emit(outcome.Sender, pm)
}

// Writing relays an ephemeral typing indicator to the room, excluding the
// typist. Nothing is persisted.
func (c *Coordinator) Writing(id domain.ConnID, room string) {
	name, ok := c.registry.Username(id)
	if !ok {
		return
	}
	c.transport.EmitRoomExcept(room, id, event.Writing{Username: name})
}

// DoneWriting clears the typing indicator for the room. A nameless
// connection never produced a Writing event, so it relays nothing.
func (c *Coordinator) DoneWriting(id domain.ConnID, room string) {
	if _, ok := c.registry.Username(id); !ok {
		return
	}
	c.transport.EmitRoomExcept(room, id, event.NotWriting{})
}

// JoinRoom transitions the session into a room, leaving its previous one
// first. A connection without a username cannot join.
func (c *Coordinator) JoinRoom(id domain.ConnID, room string) {
	name, ok := c.registry.Username(id)
	if !ok {
		c.transport.Emit(id, event.NoUsername{})
		return
	}
	previous, err := c.registry.SetRoom(id, room)
	if err != nil {
		c.log.Warn("join_room without session", "conn", id)
		return
	}
	if previous != "" {
		c.transport.Leave(id, previous)
	}
	c.transport.Join(id, room)
	c.publishUsers(room, domain.RoomScope(room))
	c.transport.EmitRoom(room, event.JoinedRoom{Username: name, Room: room})
}

// LeaveRoom returns the session to the default room and refreshes presence
// for both the left room and default.
func (c *Coordinator) LeaveRoom(id domain.ConnID, room string) {
	if _, err := c.registry.SetRoom(id, domain.DefaultRoom); err != nil {
		c.log.Warn("leave_room without session", "conn", id)
		return
	}
	c.transport.Leave(id, room)
	c.transport.Join(id, domain.DefaultRoom)

	c.publishUsers(room, domain.RoomScope(room))
	if name, ok := c.registry.Username(id); ok {
		c.transport.EmitRoom(domain.DefaultRoom, event.LeftRoom{Username: name})
	}
	c.publishUsers(domain.DefaultRoom, domain.Global)
}

// GetUsers publishes the global presence snapshot to the default room.
func (c *Coordinator) GetUsers(id domain.ConnID) {
	c.publishUsers(domain.DefaultRoom, domain.Global)
}

// Disconnect releases the session, frees its username and refreshes
// presence for whichever room the session last occupied. The transport has
// already dropped the connection, so the snapshot excludes it.
func (c *Coordinator) Disconnect(id domain.ConnID) {
	session, ok := c.registry.Release(id)
	if !ok {
		return
	}
	c.log.Info(fmt.Sprintf("%s disconnected", id))

	if session.Named() {
		if err := c.store.DeleteUser(session.Username); err != nil {
			c.log.Warn("durable user cleanup failed", "name", session.Username, "error", err)
		}
	}

	room := session.Room
	if room == "" {
		room = domain.DefaultRoom
	}
	c.publishUsers(room, domain.Global)
}

// publishUsers emits a fresh presence snapshot for scope to a room.
func (c *Coordinator) publishUsers(room string, scope domain.Scope) {
	c.transport.EmitRoom(room, event.SetUsers{Users: c.presence.ActiveUsers(scope)})
}

func toSetChats(rooms []domain.Room) event.SetChats {
	return event.SetChats{
		Rooms: lo.Map(rooms, func(r domain.Room, _ int) string { return r.Name }),
	}
}

func toMessageView(m domain.Message) event.MessageView {
	return event.MessageView{
		To:       m.Recipient,
		Username: m.Sender,
		Text:     m.Text,
		Date:     m.Date,
		Time:     m.Time,
	}
}

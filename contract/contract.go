//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-hub/domain"
	"chat-hub/domain/event"
	"context"
)

// Transport is the live-connection collaborator. It owns connection
// identity, per-room live membership, and event delivery. The coordination
// layer never touches sockets directly.
type Transport interface {
	// Connections returns the IDs of every live connection.
	Connections() []domain.ConnID
	// ConnectionsIn returns the IDs of the connections currently joined to room.
	ConnectionsIn(room string) []domain.ConnID
	Join(id domain.ConnID, room string)
	Leave(id domain.ConnID, room string)
	// Emit delivers an event to one connection. Best-effort: unknown or
	// slow connections are dropped, never blocked on.
	Emit(id domain.ConnID, e event.Outbound)
	EmitRoom(room string, e event.Outbound)
	// EmitRoomExcept fans out to a room minus one connection (typing relays).
	EmitRoomExcept(room string, except domain.ConnID, e event.Outbound)
}

// Store is the durable persistence collaborator for rooms, users and
// messages. Writes are awaited before the triggering event is acknowledged.
type Store interface {
	CreateRoom(name string) (domain.Room, error)
	FindRoom(name string) (domain.Room, bool, error)
	ListRooms() ([]domain.Room, error)
	// DeleteRoom purges the room's messages and the room record in one
	// transaction. Returns ErrUnknownRoom if the room does not exist and
	// ErrDefaultRoom for the default room, which always exists.
	DeleteRoom(name string) error
	CreateUser(name string) error
	DeleteUser(name string) error
	FindUser(name string) (bool, error)
	// InsertMessage persists a message after re-verifying, atomically with
	// the write, that the room still exists; returns ErrUnknownRoom when a
	// concurrent delete won.
	InsertMessage(msg domain.Message) error
	// MessagesForRoom returns the broadcast-only history in insertion order,
	// keyed by room ID so recreated rooms never inherit old history.
	MessagesForRoom(roomID uint) ([]domain.Message, error)
}

// AuditSink consumes inbound message events on a best-effort basis.
// Implementations must never block the caller or surface failures to it.
type AuditSink interface {
	Consume(ctx context.Context, entry domain.AuditEntry)
}

// Coordinator handles every inbound client event. One method per event in
// the wire vocabulary, plus connection open/close.
type Coordinator interface {
	Connect(id domain.ConnID)
	Disconnect(id domain.ConnID)
	SetDefaultRoom(id domain.ConnID)
	GetChats(id domain.ConnID)
	CreateRoom(id domain.ConnID, name string)
	DeleteRoom(id domain.ConnID, name string)
	SetUsername(id domain.ConnID, name string)
	GetMessages(id domain.ConnID, room string)
	HandleMessage(ctx context.Context, id domain.ConnID, to, room, text, date, time string)
	Writing(id domain.ConnID, room string)
	DoneWriting(id domain.ConnID, room string)
	JoinRoom(id domain.ConnID, room string)
	LeaveRoom(id domain.ConnID, room string)
	GetUsers(id domain.ConnID)
}

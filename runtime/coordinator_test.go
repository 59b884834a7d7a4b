package runtime

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"chat-hub/domain"
	"chat-hub/domain/event"
	"chat-hub/moderation"
	"chat-hub/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (r *recordingAudit) Consume(_ context.Context, entry domain.AuditEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingAudit) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

type coordinatorFixture struct {
	transport   *fakeTransport
	registry    *Registry
	store       *repositories.Store
	audit       *recordingAudit
	coordinator *Coordinator
}

func newCoordinatorFixture(t *testing.T) *coordinatorFixture {
	db, err := repositories.Open(filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)

	log := slog.Default()
	store := repositories.NewStore(db, log)
	transport := newFakeTransport()
	registry := NewRegistry()
	presence := NewPresence(registry, transport)
	moderator, err := moderation.NewModerator([]string{"troll"}, '*', log)
	require.NoError(t, err)
	router := NewRouter(log, store, registry, presence, moderator)
	audit := &recordingAudit{}

	return &coordinatorFixture{
		transport:   transport,
		registry:    registry,
		store:       store,
		audit:       audit,
		coordinator: NewCoordinator(log, registry, presence, router, store, transport, audit),
	}
}

// connect opens a connection and optionally claims a username.
func (f *coordinatorFixture) connect(name string) domain.ConnID {
	id := domain.ConnID(uuid.NewString())
	f.transport.connect(id)
	f.coordinator.Connect(id)
	if name != "" {
		f.coordinator.SetUsername(id, name)
	}
	return id
}

// lastSetMessages returns the latest history reply sent to a connection.
func (f *coordinatorFixture) lastSetMessages(id domain.ConnID) (event.SetMessages, bool) {
	events := f.transport.sentTo(id)
	for i := len(events) - 1; i >= 0; i-- {
		if reply, ok := events[i].(event.SetMessages); ok {
			return reply, true
		}
	}
	return event.SetMessages{}, false
}

func countEvents[E event.Outbound](events []event.Outbound) int {
	var n int
	for _, e := range events {
		if _, ok := e.(E); ok {
			n++
		}
	}
	return n
}

func TestCoordinator_Default_Room_Presence_Scenario(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	// connect -> set_default_room: presence shows nobody, the new
	// connection has no username yet.
	id := f.connect("")
	f.coordinator.SetDefaultRoom(id)

	users, ok := f.transport.lastSetUsers(domain.DefaultRoom)
	req.True(ok)
	req.Empty(users)

	// set_username("bob"): global presence now includes bob.
	f.coordinator.SetUsername(id, "bob")
	users, ok = f.transport.lastSetUsers(domain.DefaultRoom)
	req.True(ok)
	req.Equal([]string{"bob"}, users)

	req.Contains(f.transport.sentTo(id), event.NewUser{Username: "bob"})

	// The durable trace exists but plays no part in uniqueness.
	found, err := f.store.FindUser("bob")
	req.NoError(err)
	req.True(found)
}

func TestCoordinator_Concurrent_Username_Claims(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	first := f.connect("")
	second := f.connect("")

	var wg sync.WaitGroup
	for _, id := range []domain.ConnID{first, second} {
		wg.Add(1)
		go func(id domain.ConnID) {
			defer wg.Done()
			f.coordinator.SetUsername(id, "carol")
		}(id)
	}
	wg.Wait()

	errors := countEvents[event.UserError](f.transport.sentTo(first)) +
		countEvents[event.UserError](f.transport.sentTo(second))
	claims := countEvents[event.NewUser](f.transport.sentTo(first)) +
		countEvents[event.NewUser](f.transport.sentTo(second))
	req.Equal(1, errors)
	req.Equal(1, claims)
}

func TestCoordinator_Create_Send_Delete_History(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	id := f.connect("alice")
	f.coordinator.SetDefaultRoom(id)
	f.coordinator.CreateRoom(id, "Music")
	f.coordinator.JoinRoom(id, "Music")

	f.coordinator.HandleMessage(context.Background(), id, domain.RecipientAll, "Music", "hey", "01/02", "15:04")

	// Broadcast fanned out to the room and audited.
	roomEvents := f.transport.sentToRoom("Music")
	req.Equal(1, countEvents[event.ChatMessage](roomEvents))
	req.Equal(1, f.audit.count())

	// history(R) returns the broadcast just sent.
	f.coordinator.GetMessages(id, "Music")
	reply, ok := f.lastSetMessages(id)
	req.True(ok)
	req.Len(reply.Messages, 1)
	req.Equal("hey", reply.Messages[0].Text)
	req.Equal("alice", reply.Messages[0].Username)

	// delete_chat("Music") -> get_messages("Music") is empty.
	f.coordinator.DeleteRoom(id, "Music")
	f.coordinator.GetMessages(id, "Music")
	reply, ok = f.lastSetMessages(id)
	req.True(ok)
	req.Empty(reply.Messages)
}

func TestCoordinator_Directed_Message_Echo_And_History(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	alice := f.connect("alice")
	bob := f.connect("bob")
	f.coordinator.CreateRoom(alice, "Music")
	f.coordinator.JoinRoom(alice, "Music")
	f.coordinator.JoinRoom(bob, "Music")

	f.coordinator.HandleMessage(context.Background(), alice, "bob", "Music", "psst", "01/02", "15:04")

	// The whisper reaches bob and echoes back to alice, but is never
	// fanned out to the room.
	pm := event.PM{To: "bob", Username: "alice", Text: "psst", Date: "01/02", Time: "15:04"}
	req.Contains(f.transport.sentTo(bob), pm)
	req.Contains(f.transport.sentTo(alice), pm)
	req.Zero(countEvents[event.ChatMessage](f.transport.sentToRoom("Music")))

	// Directed messages are excluded from room history.
	f.coordinator.GetMessages(alice, "Music")
	reply, ok := f.lastSetMessages(alice)
	req.True(ok)
	req.Empty(reply.Messages)
}

func TestCoordinator_Directed_Recipient_Absent(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	alice := f.connect("alice")
	f.coordinator.CreateRoom(alice, "Music")
	f.coordinator.JoinRoom(alice, "Music")

	f.coordinator.HandleMessage(context.Background(), alice, "ghost", "Music", "psst", "01/02", "15:04")

	req.Equal(1, countEvents[event.MessageError](f.transport.sentTo(alice)))

	// Nothing was persisted.
	f.coordinator.GetMessages(alice, "Music")
	reply, ok := f.lastSetMessages(alice)
	req.True(ok)
	req.Empty(reply.Messages)
}

func TestCoordinator_Empty_Message(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	alice := f.connect("alice")
	f.coordinator.CreateRoom(alice, "Music")
	f.coordinator.JoinRoom(alice, "Music")

	f.coordinator.HandleMessage(context.Background(), alice, domain.RecipientAll, "Music", "", "01/02", "15:04")
	req.Equal(1, countEvents[event.MessageError](f.transport.sentTo(alice)))
}

func TestCoordinator_Create_Duplicate_Room(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	id := f.connect("alice")
	f.coordinator.CreateRoom(id, "Music")
	f.coordinator.CreateRoom(id, "Music")
	req.Equal(1, countEvents[event.RoomError](f.transport.sentTo(id)))

	f.coordinator.CreateRoom(id, "")
	req.Equal(2, countEvents[event.RoomError](f.transport.sentTo(id)))
}

func TestCoordinator_Delete_Default_Room_Refused(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	id := f.connect("alice")
	f.coordinator.DeleteRoom(id, domain.DefaultRoom)
	req.Equal(1, countEvents[event.RoomError](f.transport.sentTo(id)))

	_, found, err := f.store.FindRoom(domain.DefaultRoom)
	req.NoError(err)
	req.True(found)
}

func TestCoordinator_Delete_Room_Evicts_Occupants(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	alice := f.connect("alice")
	bob := f.connect("bob")
	f.coordinator.CreateRoom(alice, "Music")
	f.coordinator.JoinRoom(alice, "Music")
	f.coordinator.JoinRoom(bob, "Music")

	f.coordinator.DeleteRoom(alice, "Music")

	// No session may keep pointing at the purged room.
	for _, id := range []domain.ConnID{alice, bob} {
		session, ok := f.registry.Session(id)
		req.True(ok)
		req.Equal(domain.DefaultRoom, session.Room)
	}
	req.Empty(f.transport.ConnectionsIn("Music"))
	req.Len(f.transport.ConnectionsIn(domain.DefaultRoom), 2)
	req.Contains(f.transport.sentTo(bob), event.JoinedRoom{Username: "bob", Room: domain.DefaultRoom})
}

func TestCoordinator_Join_Requires_Username(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	id := f.connect("")
	f.coordinator.JoinRoom(id, "Music")
	req.Equal(1, countEvents[event.NoUsername](f.transport.sentTo(id)))
	req.Empty(f.transport.ConnectionsIn("Music"))
}

func TestCoordinator_Join_Leaves_Previous_Room(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	id := f.connect("alice")
	f.coordinator.SetDefaultRoom(id)
	f.coordinator.JoinRoom(id, "Music")
	f.coordinator.JoinRoom(id, "Jazz")

	// A session is never a member of two rooms at once.
	req.Empty(f.transport.ConnectionsIn(domain.DefaultRoom))
	req.Empty(f.transport.ConnectionsIn("Music"))
	req.Equal([]domain.ConnID{id}, f.transport.ConnectionsIn("Jazz"))
	req.Contains(f.transport.sentToRoom("Jazz"), event.JoinedRoom{Username: "alice", Room: "Jazz"})
}

func TestCoordinator_Leave_Room_Returns_To_Default(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	id := f.connect("alice")
	f.coordinator.SetDefaultRoom(id)
	f.coordinator.JoinRoom(id, "Music")
	f.coordinator.LeaveRoom(id, "Music")

	session, ok := f.registry.Session(id)
	req.True(ok)
	req.Equal(domain.DefaultRoom, session.Room)
	req.Equal([]domain.ConnID{id}, f.transport.ConnectionsIn(domain.DefaultRoom))
	req.Contains(f.transport.sentToRoom(domain.DefaultRoom), event.LeftRoom{Username: "alice"})

	// Presence refreshed for both the left room and default.
	users, ok := f.transport.lastSetUsers(domain.DefaultRoom)
	req.True(ok)
	req.Equal([]string{"alice"}, users)
	users, ok = f.transport.lastSetUsers("Music")
	req.True(ok)
	req.Empty(users)
}

func TestCoordinator_Typing_Relay(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	alice := f.connect("alice")
	f.coordinator.JoinRoom(alice, "Music")

	f.coordinator.Writing(alice, "Music")
	f.coordinator.DoneWriting(alice, "Music")

	roomEvents := f.transport.sentToRoom("Music")
	req.Contains(roomEvents, event.Writing{Username: "alice"})
	req.Contains(roomEvents, event.NotWriting{})

	// Typing from a nameless connection is dropped, start and stop alike.
	nameless := f.connect("")
	f.coordinator.Writing(nameless, "Music")
	f.coordinator.DoneWriting(nameless, "Music")
	req.Equal(1, countEvents[event.Writing](f.transport.sentToRoom("Music")))
	req.Equal(1, countEvents[event.NotWriting](f.transport.sentToRoom("Music")))
}

func TestCoordinator_Disconnect_Releases_Username(t *testing.T) {
	req := require.New(t)
	f := newCoordinatorFixture(t)

	id := f.connect("bob")
	f.coordinator.SetDefaultRoom(id)

	f.transport.drop(id)
	f.coordinator.Disconnect(id)

	_, ok := f.registry.Session(id)
	req.False(ok)

	// The name is immediately reusable and the durable trace is gone.
	successor := f.connect("bob")
	name, ok := f.registry.Username(successor)
	req.True(ok)
	req.Equal("bob", name)

	users, ok := f.transport.lastSetUsers(domain.DefaultRoom)
	req.True(ok)
	req.Equal([]string{"bob"}, users)
}

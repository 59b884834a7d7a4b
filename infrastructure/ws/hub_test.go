package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"chat-hub/domain"
	"chat-hub/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newHubClient registers a pump-less client on the hub; tests read its send
// channel directly instead of running a websocket.
func newHubClient(hub *Hub, bufferSize int) *Client {
	client := newClient(domain.ConnID(uuid.NewString()), hub, nil, bufferSize, slog.Default())
	hub.register(client)
	return client
}

// receive pops one frame off the client's buffer.
func receive(t *testing.T, client *Client) Frame {
	t.Helper()
	select {
	case raw := <-client.send:
		frame, err := decodeFrame(raw)
		require.NoError(t, err)
		return frame
	default:
		t.Fatal("no frame buffered")
		return Frame{}
	}
}

func Test_Hub_Membership(t *testing.T) {
	req := require.New(t)
	hub := NewHub(slog.Default())

	client := newHubClient(hub, 8)
	req.Equal([]domain.ConnID{client.id}, hub.Connections())

	hub.Join(client.id, "Music")
	req.Equal([]domain.ConnID{client.id}, hub.ConnectionsIn("Music"))

	hub.Leave(client.id, "Music")
	req.Empty(hub.ConnectionsIn("Music"))

	// Joining an unknown connection is a no-op.
	hub.Join(domain.ConnID(uuid.NewString()), "Music")
	req.Empty(hub.ConnectionsIn("Music"))
}

func Test_Hub_Unregister_Leaves_All_Rooms(t *testing.T) {
	req := require.New(t)
	hub := NewHub(slog.Default())

	client := newHubClient(hub, 8)
	hub.Join(client.id, "Music")

	hub.unregister(client.id)
	req.Empty(hub.Connections())
	req.Empty(hub.ConnectionsIn("Music"))

	// The send channel is closed so the write pump terminates.
	_, open := <-client.send
	req.False(open)

	// A second unregister of the same id must not panic.
	hub.unregister(client.id)
}

func Test_Hub_Emit(t *testing.T) {
	req := require.New(t)
	hub := NewHub(slog.Default())
	client := newHubClient(hub, 8)

	hub.Emit(client.id, event.NewUser{Username: "bob"})

	frame := receive(t, client)
	req.Equal("new_user", frame.Event)

	var payload event.NewUser
	req.NoError(json.Unmarshal(frame.Data, &payload))
	req.Equal("bob", payload.Username)

	// Emitting to a gone connection is a no-op.
	hub.Emit(domain.ConnID(uuid.NewString()), event.NewUser{Username: "ghost"})
}

func Test_Hub_EmitRoom_Except(t *testing.T) {
	req := require.New(t)
	hub := NewHub(slog.Default())

	typist := newHubClient(hub, 8)
	other := newHubClient(hub, 8)
	outsider := newHubClient(hub, 8)
	hub.Join(typist.id, "Music")
	hub.Join(other.id, "Music")

	hub.EmitRoomExcept("Music", typist.id, event.Writing{Username: "alice"})

	frame := receive(t, other)
	req.Equal("writing", frame.Event)
	req.Empty(typist.send)
	req.Empty(outsider.send)
}

// A fan-out racing a disconnect must drop the frame, never panic on the
// closed send channel.
func Test_Hub_Emit_Survives_Disconnect_Churn(t *testing.T) {
	hub := NewHub(slog.New(slog.DiscardHandler))
	ids := []domain.ConnID{"a", "b", "c", "d"}

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				for _, id := range ids {
					hub.Emit(id, event.NotWriting{})
				}
				hub.EmitRoom("Music", event.NotWriting{})
			}
		}()
	}

	for i := 0; i < 500; i++ {
		for _, id := range ids {
			client := newClient(id, hub, nil, 1, slog.New(slog.DiscardHandler))
			hub.register(client)
			hub.Join(id, "Music")
		}
		for _, id := range ids {
			hub.unregister(id)
		}
	}
	close(done)
	wg.Wait()
}

func Test_Hub_Full_Buffer_Drops_Frame(t *testing.T) {
	req := require.New(t)
	hub := NewHub(slog.Default())
	client := newHubClient(hub, 1)

	// Second emit overflows the buffer and is dropped, never blocking the
	// coordinator.
	hub.Emit(client.id, event.NotWriting{})
	hub.Emit(client.id, event.NotWriting{})

	req.Len(client.send, 1)
}

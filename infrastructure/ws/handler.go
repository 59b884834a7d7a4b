package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/domain/event"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// roomPayload carries the room name of create_room / delete_chat.
type roomPayload struct {
	Name string `json:"name" validate:"required"`
}

// messagePayload carries an inbound message event. Text is deliberately
// not required here: an empty text must reach the router so the sender
// gets message_error, matching the routing rules.
type messagePayload struct {
	To   string `json:"to" validate:"required"`
	Text string `json:"text"`
	Room string `json:"room" validate:"required"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// Handler upgrades connections and translates inbound frames into
// coordinator calls. It owns payload decoding and validation; semantics
// stay in the coordinator.
type Handler struct {
	log         *slog.Logger
	coordinator contract.Coordinator
	validate    *validator.Validate
	upgrader    websocket.Upgrader
	bufferSize  int
}

func NewHandler(log *slog.Logger, coordinator contract.Coordinator, bufferSize int) *Handler {
	return &Handler{
		log:         log,
		coordinator: coordinator,
		validate:    validator.New(),
		upgrader: websocket.Upgrader{
			// The coordinator does not authenticate identities; origins
			// are not restricted either.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		bufferSize: bufferSize,
	}
}

// ServeWS upgrades the request and runs the connection's pumps. Each
// connection gets an opaque uuid identity; the coordinator allocates its
// session before the first frame is read.
func (h *Handler) ServeWS(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.log.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}

		id := domain.ConnID(uuid.NewString())
		client := newClient(id, hub, conn, h.bufferSize, h.log)
		hub.register(client)
		h.coordinator.Connect(id)

		go client.writePump()
		// The request context dies when this handler returns; the pumps
		// outlive it.
		go client.readPump(context.Background(), h)
	}
}

// dispatch routes one inbound frame to the matching coordinator method.
// Malformed payloads fail only the offending request: the sender gets the
// event's named error and the connection stays up.
func (h *Handler) dispatch(ctx context.Context, c *Client, raw []byte) {
	frame, err := decodeFrame(raw)
	if err != nil {
		h.log.Warn("frame rejected", "conn", c.id, "error", err)
		return
	}

	switch frame.Event {
	case "set_default_room":
		h.coordinator.SetDefaultRoom(c.id)

	case "get_chats":
		h.coordinator.GetChats(c.id)

	case "create_room":
		payload, ok := h.roomName(c, frame.Data)
		if !ok {
			return
		}
		h.coordinator.CreateRoom(c.id, payload)

	case "delete_chat":
		payload, ok := h.roomName(c, frame.Data)
		if !ok {
			return
		}
		h.coordinator.DeleteRoom(c.id, payload)

	case "set_username":
		name, ok := h.text(c, frame.Data, event.UserError{})
		if !ok {
			return
		}
		h.coordinator.SetUsername(c.id, name)

	case "get_messages":
		room, ok := h.text(c, frame.Data, event.MessageError{})
		if !ok {
			return
		}
		h.coordinator.GetMessages(c.id, room)

	case "message":
		var payload messagePayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			h.log.Warn("message payload rejected", "conn", c.id, "error", err)
			c.hub.Emit(c.id, event.MessageError{})
			return
		}
		if err := h.validate.Struct(payload); err != nil {
			h.log.Warn("message payload invalid", "conn", c.id, "error", err)
			c.hub.Emit(c.id, event.MessageError{})
			return
		}
		h.coordinator.HandleMessage(ctx, c.id, payload.To, payload.Room, payload.Text, payload.Date, payload.Time)

	case "currently_writing":
		room, ok := h.text(c, frame.Data, event.MessageError{})
		if !ok {
			return
		}
		h.coordinator.Writing(c.id, room)

	case "done_writing":
		room, ok := h.text(c, frame.Data, event.MessageError{})
		if !ok {
			return
		}
		h.coordinator.DoneWriting(c.id, room)

	case "join_room":
		room, ok := h.text(c, frame.Data, event.RoomError{})
		if !ok {
			return
		}
		h.coordinator.JoinRoom(c.id, room)

	case "leave_room":
		room, ok := h.text(c, frame.Data, event.RoomError{})
		if !ok {
			return
		}
		h.coordinator.LeaveRoom(c.id, room)

	case "get_users":
		h.coordinator.GetUsers(c.id)

	default:
		h.log.Debug("unknown event ignored", "conn", c.id, "event", frame.Event)
	}
}

// roomName decodes and validates a {name} payload, reporting room_error
// on anything malformed.
func (h *Handler) roomName(c *Client, data json.RawMessage) (string, bool) {
	var payload roomPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		h.log.Warn("room payload rejected", "conn", c.id, "error", err)
		c.hub.Emit(c.id, event.RoomError{})
		return "", false
	}
	if err := h.validate.Struct(payload); err != nil {
		h.log.Warn("room payload invalid", "conn", c.id, "error", err)
		c.hub.Emit(c.id, event.RoomError{})
		return "", false
	}
	return payload.Name, true
}

// text decodes a bare JSON string payload ("room" / "name" style events).
func (h *Handler) text(c *Client, data json.RawMessage, onError event.Outbound) (string, bool) {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		h.log.Warn("string payload rejected", "conn", c.id, "error", err)
		c.hub.Emit(c.id, onError)
		return "", false
	}
	return value, true
}

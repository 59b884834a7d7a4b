package runtime

import (
	"fmt"
	"log/slog"

	"chat-hub/contract"
	"chat-hub/domain"
	"chat-hub/errors"
	"chat-hub/moderation"

	"github.com/google/uuid"
)

// Outcome tells the caller how to fan a validated, persisted message out.
// Broadcast outcomes address the whole room; direct outcomes name the
// target connection plus the sender, which receives its own echo.
type Outcome struct {
	Message   domain.Message
	Broadcast bool
	Target    domain.ConnID
	Sender    domain.ConnID
}

// Router validates, moderates and persists messages, then decides the
// fan-out set. It never emits anything itself; the coordinator instructs
// the transport.
type Router struct {
	log       *slog.Logger
	store     contract.Store
	registry  *Registry
	presence  *Presence
	moderator moderation.Moderator
}

func NewRouter(log *slog.Logger, store contract.Store, registry *Registry,
	presence *Presence, moderator moderation.Moderator) *Router {
	return &Router{log: log, store: store, registry: registry, presence: presence, moderator: moderator}
}

// Send routes one message. The store write is awaited before returning,
// so a subsequent history read observes the message. A directed message
// whose recipient is not live in the room fails with ErrRecipientNotFound
// and persists nothing.
func (r *Router) Send(from domain.ConnID, to, roomName, text, date, tm string) (Outcome, error) {
	if text == "" {
		return Outcome{}, errors.ErrEmptyMessage
	}
	sender, ok := r.registry.Username(from)
	if !ok {
		return Outcome{}, errors.ErrNoUsername
	}
	room, found, err := r.store.FindRoom(roomName)
	if err != nil {
		return Outcome{}, fmt.Errorf("room lookup failed: %w", err)
	}
	if !found {
		return Outcome{}, errors.ErrUnknownRoom
	}

	// What gets stored is what got sent: moderation runs before persistence.
	text, censored := r.moderator.Censor(text)
	if len(censored) > 0 {
		r.log.Info("message censored", "sender", sender, "room", roomName, "words", censored)
	}

	outcome := Outcome{
		Message: domain.Message{
			ID:        uuid.New(),
			Sender:    sender,
			Recipient: to,
			RoomName:  room.Name,
			RoomID:    room.ID,
			Text:      text,
			Date:      date,
			Time:      tm,
		},
		Sender: from,
	}

	if to == domain.RecipientAll {
		outcome.Broadcast = true
	} else {
		target, present := r.presence.ResolveMember(roomName, to)
		if !present {
			return Outcome{}, errors.ErrRecipientNotFound
		}
		outcome.Target = target
	}

	// The store re-verifies the room inside the insert transaction: a
	// delete committing after the lookup above rejects the message here
	// with ErrUnknownRoom instead of persisting an orphan.
	if err := r.store.InsertMessage(outcome.Message); err != nil {
		if errors.Is(err, errors.ErrUnknownRoom) {
			return Outcome{}, errors.ErrUnknownRoom
		}
		return Outcome{}, fmt.Errorf("message persist failed: %w", err)
	}
	return outcome, nil
}

// History returns the broadcast-only history of a room in insertion
// order. Directed messages never show up here.
func (r *Router) History(roomName string) ([]domain.Message, error) {
	room, found, err := r.store.FindRoom(roomName)
	if err != nil {
		return nil, fmt.Errorf("room lookup failed: %w", err)
	}
	if !found {
		return nil, errors.ErrUnknownRoom
	}
	messages, err := r.store.MessagesForRoom(room.ID)
	if err != nil {
		return nil, fmt.Errorf("history read failed: %w", err)
	}
	return messages, nil
}

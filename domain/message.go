// Package domain contains core concepts of the chat system.
// This file defines Message events and related rules.
// Messages are immutable and validated by the domain.
package domain

import (
	"github.com/google/uuid"
)

// RecipientAll addresses a message to every member of a room.
const RecipientAll = "all"

// Message represents an immutable chat event. Recipient is either
// RecipientAll or the username of a single member of the room.
// Date and Time are client-supplied display strings, not parsed.
type Message struct {
	ID        uuid.UUID
	Sender    string
	Recipient string
	RoomName  string
	RoomID    uint
	Text      string
	Date      string
	Time      string
}

// Broadcast reports whether the message is addressed to the whole room.
// Only broadcast messages appear in room history.
func (m Message) Broadcast() bool {
	return m.Recipient == RecipientAll
}

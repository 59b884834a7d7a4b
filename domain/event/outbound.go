// Package event defines the outbound events the coordination layer emits
// to connections. Event names are the wire vocabulary; payloads are the
// structured records serialized by the transport.
package event

// Outbound is implemented by every event that can be pushed to a client.
type Outbound interface {
	// Event returns the wire name of the event.
	Event() string
}

// SetChats carries the current room list.
type SetChats struct {
	Rooms []string `json:"rooms"`
}

func (SetChats) Event() string { return "set_chats" }

// MessageView is the client-facing shape of a stored message.
type MessageView struct {
	To       string `json:"to"`
	Username string `json:"username"`
	Text     string `json:"text"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// SetMessages carries the broadcast-only history of a room.
type SetMessages struct {
	Messages []MessageView `json:"messages"`
}

func (SetMessages) Event() string { return "set_messages" }

// SetUsers carries a presence snapshot.
type SetUsers struct {
	Users []string `json:"users"`
}

func (SetUsers) Event() string { return "set_users" }

// NewUser confirms a successful username claim to the claimer.
type NewUser struct {
	Username string `json:"username"`
}

func (NewUser) Event() string { return "new_user" }

// PM is a directed message, delivered to the target and echoed to the sender.
type PM struct {
	To       string `json:"to"`
	Username string `json:"username"`
	Text     string `json:"text"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

func (PM) Event() string { return "PM" }

// ChatMessage is a broadcast message fanned out to a room.
type ChatMessage struct {
	Username string `json:"username"`
	Text     string `json:"text"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

func (ChatMessage) Event() string { return "message" }

// Writing signals that a member started typing. Never persisted.
type Writing struct {
	Username string `json:"username"`
}

func (Writing) Event() string { return "writing" }

// NotWriting clears the typing indicator.
type NotWriting struct{}

func (NotWriting) Event() string { return "not_writing" }

// JoinedRoom announces a member joining a room.
type JoinedRoom struct {
	Username string `json:"username"`
	Room     string `json:"room"`
}

func (JoinedRoom) Event() string { return "joined_room" }

// LeftRoom announces a member returning to the default room.
type LeftRoom struct {
	Username string `json:"username"`
}

func (LeftRoom) Event() string { return "left_room" }

// RoomError reports a rejected room operation to the requester.
type RoomError struct{}

func (RoomError) Event() string { return "room_error" }

// UserError reports a rejected username claim to the requester.
type UserError struct{}

func (UserError) Event() string { return "user_error" }

// NoUsername reports that the operation requires a claimed username.
type NoUsername struct{}

func (NoUsername) Event() string { return "no_username" }

// MessageError reports a rejected message to the sender.
type MessageError struct{}

func (MessageError) Event() string { return "message_error" }

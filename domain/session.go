// Package domain contains core concepts of the chat system.
// This file defines the Session entity and its invariants.
// No runtime, network, or UI logic should be added here.
package domain

// ConnID is the opaque connection identity assigned by the transport.
type ConnID string

// Session is the coordination-layer identity bound to one live connection.
// Exactly one Session exists per connection; the username is empty until
// claimed and the room is empty until the connection joins one.
type Session struct {
	Conn     ConnID
	Username string
	Room     string
}

// Named reports whether the session has claimed a username.
func (s Session) Named() bool {
	return s.Username != ""
}

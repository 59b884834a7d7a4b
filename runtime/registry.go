// Package runtime contains the coordination core: the connection registry,
// presence computation, message routing, and the lifecycle coordinator.
// It orchestrates the system without owning sockets or storage.
package runtime

import (
	"sync"

	"chat-hub/domain"
	"chat-hub/errors"
)

// Registry maps live connections to their Session and enforces username
// uniqueness among active sessions. The durable user table only records
// names ever claimed; uniqueness is decided here, against the active set.
type Registry struct {
	mu        sync.RWMutex
	sessions  map[domain.ConnID]domain.Session
	usernames map[string]domain.ConnID
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:  make(map[domain.ConnID]domain.Session),
		usernames: make(map[string]domain.ConnID),
	}
}

// Register allocates a Session for a freshly opened connection.
// The session starts with no username and no room.
func (r *Registry) Register(id domain.ConnID) domain.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := domain.Session{Conn: id}
	r.sessions[id] = session
	return session
}

// Claim binds a username to a connection. The check and the bind happen
// under one write lock, so two concurrent claims of the same name can
// never both succeed.
func (r *Registry) Claim(id domain.ConnID, name string) error {
	if name == "" {
		return errors.ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return errors.ErrNoSession
	}
	if holder, taken := r.usernames[name]; taken && holder != id {
		return errors.ErrNameTaken
	}

	// Re-claiming under a new name frees the old one.
	if session.Username != "" {
		delete(r.usernames, session.Username)
	}
	session.Username = name
	r.sessions[id] = session
	r.usernames[name] = id
	return nil
}

// Release removes the session on connection close and frees its username
// for reuse. It returns the last state of the session.
func (r *Registry) Release(id domain.ConnID) (domain.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return domain.Session{}, false
	}
	delete(r.sessions, id)
	if session.Username != "" {
		delete(r.usernames, session.Username)
	}
	return session, true
}

// SetRoom records the session's current room and returns the room it was
// in before. A session is never a member of two rooms at once: callers use
// the returned previous room to leave it on the transport.
func (r *Registry) SetRoom(id domain.ConnID, room string) (previous string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return "", errors.ErrNoSession
	}
	previous = session.Room
	session.Room = room
	r.sessions[id] = session
	return previous, nil
}

// Session returns a snapshot of the session bound to a connection.
func (r *Registry) Session(id domain.ConnID) (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	return session, ok
}

// Username returns the name claimed by a connection, if any.
func (r *Registry) Username(id domain.ConnID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok || session.Username == "" {
		return "", false
	}
	return session.Username, true
}

package runtime

import (
	"sort"

	"chat-hub/contract"
	"chat-hub/domain"
)

// Presence computes the live set of usernames by intersecting the
// registry's named sessions with the transport's live membership.
// Every call recomputes from scratch: membership changes on every
// join, leave and disconnect, so nothing here is cached. The transport
// query runs outside any registry lock, so a snapshot is best-effort,
// which is fine for an advisory view.
type Presence struct {
	registry  *Registry
	transport contract.Transport
}

func NewPresence(registry *Registry, transport contract.Transport) *Presence {
	return &Presence{registry: registry, transport: transport}
}

// ActiveUsers returns the usernames of the live connections in scope.
// Connections without a claimed username are invisible to presence.
func (p *Presence) ActiveUsers(scope domain.Scope) []string {
	var ids []domain.ConnID
	if scope.IsGlobal() {
		ids = p.transport.Connections()
	} else {
		ids = p.transport.ConnectionsIn(scope.Room)
	}

	users := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := p.registry.Username(id); ok {
			users = append(users, name)
		}
	}
	sort.Strings(users)
	return users
}

// ResolveMember returns the live connection in room whose session holds
// username. Usernames are unique among active sessions, so a hit is
// unambiguous; a miss means the user is absent from the room.
func (p *Presence) ResolveMember(room, username string) (domain.ConnID, bool) {
	for _, id := range p.transport.ConnectionsIn(room) {
		if name, ok := p.registry.Username(id); ok && name == username {
			return id, true
		}
	}
	return "", false
}

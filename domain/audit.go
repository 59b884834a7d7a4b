package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry records one inbound message event for the append-only audit
// log. Entries are best-effort; losing one never affects routing.
type AuditEntry struct {
	ID    uuid.UUID
	Conn  ConnID
	Event string
	Room  string
	Text  string
	At    time.Time
}

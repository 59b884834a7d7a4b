// Package sink contains event consumers that sit behind the coordination
// core. Sinks isolate their own failures: a broken sink logs and drops,
// it never fails the event that fed it.
package sink

import (
	"context"
	"log/slog"

	"chat-hub/domain"
)

// AuditStore persists audit entries durably.
type AuditStore interface {
	Append(entry domain.AuditEntry) error
}

// AuditSink buffers inbound message events and appends them to the audit
// store from its own goroutine. Consume never blocks the handling task:
// when the buffer is full the entry is dropped with a warning.
type AuditSink struct {
	log     *slog.Logger
	store   AuditStore
	entries chan domain.AuditEntry
}

func NewAuditSink(log *slog.Logger, store AuditStore, bufferSize int) *AuditSink {
	return &AuditSink{
		log:     log,
		store:   store,
		entries: make(chan domain.AuditEntry, bufferSize),
	}
}

// Consume enqueues an entry for appending. Best-effort by contract.
func (a *AuditSink) Consume(_ context.Context, entry domain.AuditEntry) {
	select {
	case a.entries <- entry:
	default:
		a.log.Warn("audit buffer full, entry dropped", "conn", entry.Conn, "room", entry.Room)
	}
}

// Run drains the buffer until the context is cancelled. Append failures
// are logged and never propagated.
func (a *AuditSink) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case entry := <-a.entries:
			if err := a.store.Append(entry); err != nil {
				a.log.Error("audit append failed", "conn", entry.Conn, "error", err)
			}
		}
	}
}

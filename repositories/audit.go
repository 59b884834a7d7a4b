package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"chat-hub/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// AuditRepository persists the append-only audit log of inbound message
// events in BadgerDB.
type AuditRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAuditRepository(db *badger.DB, log *slog.Logger) *AuditRepository {
	return &AuditRepository{db: db, log: log}
}

type auditRow struct {
	ID    string `json:"id"`
	Conn  string `json:"conn"`
	Event string `json:"event"`
	Room  string `json:"room"`
	Text  string `json:"text"`
	At    int64  `json:"at"`
}

// Append stores one audit entry.
// The key is formatted as "audit:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two entries
//     arrive at the same nanosecond.
func (a *AuditRepository) Append(entry domain.AuditEntry) error {
	key := fmt.Sprintf("audit:%019d:%s", entry.At.UnixNano(), entry.ID)
	bytes, err := json.Marshal(fromAuditEntry(entry))
	if err != nil {
		return fmt.Errorf("audit marshal failed: %w", err)
	}
	return a.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Recent returns up to limit entries, newest first, using a reverse
// prefix scan over the padded-timestamp keys.
func (a *AuditRepository) Recent(limit int) ([]domain.AuditEntry, error) {
	var rows [][]byte
	err := a.db.View(func(txn *badger.Txn) error {
		prefix := []byte("audit:")
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append(prefix, []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if len(rows) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				rows = append(rows, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entries := make([]domain.AuditEntry, 0, len(rows))
	for _, b := range rows {
		var row auditRow
		if err = json.Unmarshal(b, &row); err != nil {
			return nil, fmt.Errorf("audit unmarshal failed: %w", err)
		}
		entry, err := toAuditEntry(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func fromAuditEntry(entry domain.AuditEntry) auditRow {
	return auditRow{
		ID:    entry.ID.String(),
		Conn:  string(entry.Conn),
		Event: entry.Event,
		Room:  entry.Room,
		Text:  entry.Text,
		At:    entry.At.UnixNano(),
	}
}

func toAuditEntry(row auditRow) (domain.AuditEntry, error) {
	parsedID, err := uuid.Parse(row.ID)
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("corrupt audit id %q: %w", row.ID, err)
	}
	return domain.AuditEntry{
		ID:    parsedID,
		Conn:  domain.ConnID(row.Conn),
		Event: row.Event,
		Room:  row.Room,
		Text:  row.Text,
		At:    time.Unix(0, row.At).UTC(),
	}, nil
}

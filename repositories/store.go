package repositories

import (
	"fmt"
	"log/slog"

	"chat-hub/domain"
	"chat-hub/errors"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RoomRecord is the durable shape of a room.
type RoomRecord struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (RoomRecord) TableName() string { return "chats" }

// UserRecord tracks every username ever claimed. It is only a trace of
// claims, not an authentication entity; uniqueness of live usernames is
// enforced by the registry against active sessions.
type UserRecord struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"index;not null"`
}

func (UserRecord) TableName() string { return "users" }

// MessageRecord is the durable shape of a message.
type MessageRecord struct {
	ID        uint   `gorm:"primaryKey"`
	MessageID string `gorm:"uniqueIndex;not null"`
	Receiver  string `gorm:"not null"`
	Sender    string `gorm:"not null"`
	Content   string `gorm:"not null"`
	RoomName  string `gorm:"index;not null"`
	RoomID    uint   `gorm:"index;not null"`
	Date      string
	Time      string
}

func (MessageRecord) TableName() string { return "messages" }

// Store is the SQLite-backed persistence collaborator.
type Store struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewStore(db *gorm.DB, log *slog.Logger) *Store {
	return &Store{db: db, log: log}
}

// Open opens the SQLite database, migrates the schema and seeds the
// default room, which always exists.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite open failed: %w", err)
	}
	if err = db.AutoMigrate(&RoomRecord{}, &UserRecord{}, &MessageRecord{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	seed := RoomRecord{Name: domain.DefaultRoom}
	if err = db.Where(&seed).FirstOrCreate(&seed).Error; err != nil {
		return nil, fmt.Errorf("default room seed failed: %w", err)
	}
	return db, nil
}

func (s *Store) CreateRoom(name string) (domain.Room, error) {
	if name == "" {
		return domain.Room{}, errors.ErrEmptyName
	}
	record := RoomRecord{Name: name}
	if err := s.db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Room{}, errors.ErrDuplicateRoom
		}
		return domain.Room{}, fmt.Errorf("room create failed: %w", err)
	}
	return toRoom(record), nil
}

func (s *Store) FindRoom(name string) (domain.Room, bool, error) {
	var record RoomRecord
	err := s.db.First(&record, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Room{}, false, nil
	}
	if err != nil {
		return domain.Room{}, false, fmt.Errorf("room lookup failed: %w", err)
	}
	return toRoom(record), true, nil
}

func (s *Store) ListRooms() ([]domain.Room, error) {
	var records []RoomRecord
	if err := s.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("room list failed: %w", err)
	}
	return lo.Map(records, func(r RoomRecord, _ int) domain.Room { return toRoom(r) }), nil
}

// DeleteRoom purges the room's messages and the room record in a single
// transaction, so a concurrent reader sees both or neither. The default
// room always exists and is refused here regardless of the caller's guard.
func (s *Store) DeleteRoom(name string) error {
	if name == domain.DefaultRoom {
		return errors.ErrDefaultRoom
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var record RoomRecord
		if err := tx.First(&record, "name = ?", name).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrUnknownRoom
			}
			return fmt.Errorf("room lookup failed: %w", err)
		}
		if err := tx.Delete(&MessageRecord{}, "room_id = ?", record.ID).Error; err != nil {
			return fmt.Errorf("message purge failed: %w", err)
		}
		if err := tx.Delete(&record).Error; err != nil {
			return fmt.Errorf("room delete failed: %w", err)
		}
		return nil
	})
}

func (s *Store) CreateUser(name string) error {
	if err := s.db.Create(&UserRecord{Username: name}).Error; err != nil {
		return fmt.Errorf("user record failed: %w", err)
	}
	return nil
}

func (s *Store) DeleteUser(name string) error {
	if err := s.db.Delete(&UserRecord{}, "username = ?", name).Error; err != nil {
		return fmt.Errorf("user cleanup failed: %w", err)
	}
	return nil
}

func (s *Store) FindUser(name string) (bool, error) {
	var record UserRecord
	err := s.db.First(&record, "username = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("user lookup failed: %w", err)
	}
	return true, nil
}

// InsertMessage persists a message, re-verifying inside the same
// transaction that the room row still exists. A delete committing between
// the caller's lookup and this write rejects the message with
// ErrUnknownRoom instead of persisting it into a deleted room.
func (s *Store) InsertMessage(msg domain.Message) error {
	record := MessageRecord{
		MessageID: msg.ID.String(),
		Receiver:  msg.Recipient,
		Sender:    msg.Sender,
		Content:   msg.Text,
		RoomName:  msg.RoomName,
		RoomID:    msg.RoomID,
		Date:      msg.Date,
		Time:      msg.Time,
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var room RoomRecord
		if err := tx.First(&room, "id = ?", msg.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrUnknownRoom
			}
			return fmt.Errorf("room lookup failed: %w", err)
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("message insert failed: %w", err)
		}
		return nil
	})
}

// MessagesForRoom returns the room's broadcast messages in insertion
// order. Directed messages are stored but never part of room history.
// Keyed by room ID, so a recreated room of the same name starts with an
// empty history.
func (s *Store) MessagesForRoom(roomID uint) ([]domain.Message, error) {
	var records []MessageRecord
	err := s.db.
		Where("room_id = ? AND receiver = ?", roomID, domain.RecipientAll).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("history read failed: %w", err)
	}

	messages := make([]domain.Message, 0, len(records))
	for _, r := range records {
		msg, err := toMessage(r)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func toRoom(r RoomRecord) domain.Room {
	return domain.Room{ID: r.ID, Name: r.Name}
}

func toMessage(r MessageRecord) (domain.Message, error) {
	parsedID, err := uuid.Parse(r.MessageID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("corrupt message id %q: %w", r.MessageID, err)
	}
	return domain.Message{
		ID:        parsedID,
		Sender:    r.Sender,
		Recipient: r.Receiver,
		RoomName:  r.RoomName,
		RoomID:    r.RoomID,
		Text:      r.Content,
		Date:      r.Date,
		Time:      r.Time,
	}, nil
}

package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Renzo49/Prudente-Pharmacy-04/models"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrMessageReplied  = errors.New("message already replied")
)

// newEntryID builds a creation-time-derived id with a random suffix, so
// two entries created in the same instant still get distinct ids.
func newEntryID(t time.Time) string {
	return t.Format("20060102150405") + "-" + uuid.NewString()
}

// MessageStore is the append-only customer inbox. Messages are never
// deleted; they only move unread -> read -> replied, and nothing leaves
// replied. The full log is persisted on every mutation.
type MessageStore struct {
	kv  *KV
	bus *Bus

	mu       sync.RWMutex
	messages []models.Message // newest first
}

func NewMessageStore(kv *KV, bus *Bus) (*MessageStore, error) {
	s := &MessageStore{kv: kv, bus: bus}
	if _, err := kv.GetJSON(KeyMessages, &s.messages); err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	return s, nil
}

// Append records a new unread message at the head of the log.
func (s *MessageStore) Append(name, email, body string) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	msg := models.Message{
		ID:            newEntryID(now),
		CustomerName:  name,
		CustomerEmail: email,
		Message:       body,
		Timestamp:     now,
		Status:        models.MessageStatusUnread,
	}
	s.messages = append([]models.Message{msg}, s.messages...)

	if err := s.kv.SetJSON(KeyMessages, s.messages); err != nil {
		return models.Message{}, fmt.Errorf("persist messages: %w", err)
	}
	s.bus.Publish(Event{Type: EventNewMessage, Payload: msg})
	return msg, nil
}

// List returns all messages, newest first.
func (s *MessageStore) List() []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Get returns one message by id.
func (s *MessageStore) Get(id string) (models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, msg := range s.messages {
		if msg.ID == id {
			return msg, nil
		}
	}
	return models.Message{}, fmt.Errorf("%w: %s", ErrMessageNotFound, id)
}

// mutate applies fn to the message with the given id and persists the
// log, broadcasting the updated entry.
func (s *MessageStore) mutate(id string, fn func(*models.Message) error) (models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID != id {
			continue
		}
		if err := fn(&s.messages[i]); err != nil {
			return models.Message{}, err
		}
		if err := s.kv.SetJSON(KeyMessages, s.messages); err != nil {
			return models.Message{}, fmt.Errorf("persist messages: %w", err)
		}
		s.bus.Publish(Event{Type: EventMessageUpdate, Payload: s.messages[i]})
		return s.messages[i], nil
	}
	return models.Message{}, fmt.Errorf("%w: %s", ErrMessageNotFound, id)
}

// MarkRead moves an unread message to read. Read and replied messages
// are left as they are; replied is final.
func (s *MessageStore) MarkRead(id string) (models.Message, error) {
	return s.mutate(id, func(msg *models.Message) error {
		if msg.Status == models.MessageStatusReplied {
			return fmt.Errorf("%w: %s", ErrMessageReplied, id)
		}
		msg.Status = models.MessageStatusRead
		return nil
	})
}

// Reply attaches the admin reply and marks the message replied in one
// step. A replied message accepts no further replies.
func (s *MessageStore) Reply(id, text string) (models.Message, error) {
	return s.mutate(id, func(msg *models.Message) error {
		if msg.Status == models.MessageStatusReplied {
			return fmt.Errorf("%w: %s", ErrMessageReplied, id)
		}
		now := time.Now().UTC()
		msg.AdminReply = text
		msg.ReplyTimestamp = &now
		msg.Status = models.MessageStatusReplied
		return nil
	})
}

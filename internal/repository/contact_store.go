package repository

import (
	"sync"
	"time"

	"github.com/tirtadhi/ZOEHotel/internal/model"
	"github.com/tirtadhi/ZOEHotel/internal/utils"
)

// ContactStore is the in-memory inbox for contact-form messages.
type ContactStore struct {
	mu       sync.Mutex
	messages []model.ContactMessage // most recent first
	now      Clock
}

// NewContactStore returns an empty inbox.
func NewContactStore(now Clock) *ContactStore {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &ContactStore{now: now}
}

// Add stores a new message with status "new" and returns it.
func (s *ContactStore) Add(name, email, subject, message string) model.ContactMessage {
	m := model.ContactMessage{
		ID:        utils.NewRef("MSG"),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: s.now(),
		Status:    "new",
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append([]model.ContactMessage{m}, s.messages...)
	return m
}

// List returns every message, most recent first.
func (s *ContactStore) List() []model.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ContactMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

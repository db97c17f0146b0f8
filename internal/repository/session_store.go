package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/tirtadhi/ZOEHotel/internal/model"
)

// ErrNoSession is returned by CurrentUser when no user is cached.
var ErrNoSession = errors.New("no session")

// SessionStore caches the single "current user" slot. The product keeps
// this slot client-local under one fixed key; serverside it is set on
// login/signup, cleared on logout and rehydrated at startup. Tests use
// the memory implementation, the server uses Redis.
type SessionStore interface {
	SetCurrentUser(ctx context.Context, u model.User) error
	CurrentUser(ctx context.Context) (model.User, error)
	Clear(ctx context.Context) error
}

// MemorySessionStore keeps the slot in process memory.
type MemorySessionStore struct {
	mu   sync.Mutex
	user *model.User
}

// NewMemorySessionStore returns an empty in-memory session slot.
func NewMemorySessionStore() *MemorySessionStore { return &MemorySessionStore{} }

// SetCurrentUser stores u in the slot.
func (s *MemorySessionStore) SetCurrentUser(_ context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	return nil
}

// CurrentUser returns the cached user or ErrNoSession.
func (s *MemorySessionStore) CurrentUser(_ context.Context) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return model.User{}, ErrNoSession
	}
	return *s.user, nil
}

// Clear empties the slot.
func (s *MemorySessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}

// sessionKey is the fixed Redis key for the current-user slot,
// mirroring the product's single local-storage key.
const sessionKey = "session:current_user"

// RedisSessionStore persists the slot in Redis so it survives server
// restarts, like the client-local cache it replaces.
type RedisSessionStore struct {
	rdb *redis.Client
}

// NewRedisSessionStore wraps an existing Redis client. The client must
// be non-nil; callers fall back to the memory store when Redis is down.
func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

// SetCurrentUser serializes u into the session key. The password hash
// is excluded by the model's json tag.
func (s *RedisSessionStore) SetCurrentUser(ctx context.Context, u model.User) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, sessionKey, payload, 0).Err()
}

// CurrentUser loads and decodes the cached user. A missing key or a
// corrupt payload both report ErrNoSession; the corrupt entry is
// removed so the next write starts clean.
func (s *RedisSessionStore) CurrentUser(ctx context.Context) (model.User, error) {
	payload, err := s.rdb.Get(ctx, sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.User{}, ErrNoSession
	}
	if err != nil {
		return model.User{}, err
	}
	var u model.User
	if err := json.Unmarshal(payload, &u); err != nil {
		_ = s.rdb.Del(ctx, sessionKey).Err()
		return model.User{}, ErrNoSession
	}
	return u, nil
}

// Clear deletes the session key.
func (s *RedisSessionStore) Clear(ctx context.Context) error {
	return s.rdb.Del(ctx, sessionKey).Err()
}

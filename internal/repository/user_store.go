package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/tirtadhi/ZOEHotel/internal/model"
	"github.com/tirtadhi/ZOEHotel/internal/utils"
)

// UserStore is the in-memory identity provider. It is seeded with the
// demo admin and user accounts and grows through signup. Emails are the
// unique key and are stored lowercased.
type UserStore struct {
	mu      sync.Mutex
	byEmail map[string]*model.User
	byID    map[string]*model.User
	cost    int
	now     Clock
}

// NewUserStore returns a store seeded with the stock demo accounts
// (admin@booking.com / admin123 and user@example.com / user123).
// cost is the bcrypt cost used for seeding and signup.
func NewUserStore(cost int, now Clock) (*UserStore, error) {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	s := &UserStore{
		byEmail: make(map[string]*model.User),
		byID:    make(map[string]*model.User),
		cost:    cost,
		now:     now,
	}
	seed := []struct {
		id, name, email, phone, role, password string
	}{
		{"admin-1", "Admin User", "admin@booking.com", "+62812-3456-7890", model.RoleAdmin, "admin123"},
		{"user-1", "John Doe", "user@example.com", "+62812-1111-1111", model.RoleUser, "user123"},
	}
	for _, u := range seed {
		hash, err := utils.HashPassword(u.password, cost)
		if err != nil {
			return nil, err
		}
		rec := &model.User{
			ID:           u.id,
			Name:         u.name,
			Email:        u.email,
			Phone:        u.phone,
			Role:         u.role,
			PasswordHash: hash,
			CreatedAt:    s.now(),
		}
		s.byEmail[rec.Email] = rec
		s.byID[rec.ID] = rec
	}
	return s, nil
}

// GetByEmail returns the account registered under email (case
// insensitive) or ErrUserNotFound.
func (s *UserStore) GetByEmail(email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return *u, nil
}

// GetByID returns the account with the given ID or ErrUserNotFound.
func (s *UserStore) GetByID(id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return *u, nil
}

// Authenticate checks the credentials and returns the matching account.
// Unknown emails and wrong passwords both report ErrUserNotFound so the
// response does not reveal which part was wrong.
func (s *UserStore) Authenticate(email, password string) (model.User, error) {
	u, err := s.GetByEmail(email)
	if err != nil {
		return model.User{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.User{}, ErrUserNotFound
	}
	return u, nil
}

// Create registers a new user account with role "user". The email must
// not already be registered.
func (s *UserStore) Create(name, email, password, phone string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, s.cost)
	if err != nil {
		return model.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[email]; exists {
		return model.User{}, ErrEmailExists
	}
	u := &model.User{
		ID:           utils.NewRef("USR"),
		Name:         name,
		Email:        email,
		Phone:        phone,
		Role:         model.RoleUser,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	s.byEmail[email] = u
	s.byID[u.ID] = u
	return *u, nil
}

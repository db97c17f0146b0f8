package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"

	"github.com/tirtadhi/ZOEHotel/internal/model"
)

func newUserStore(t *testing.T) *UserStore {
	t.Helper()
	s, err := NewUserStore(bcrypt.MinCost, nil)
	require.NoError(t, err)
	return s
}

func TestSeededAccounts(t *testing.T) {
	s := newUserStore(t)

	admin, err := s.Authenticate("admin@booking.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	user, err := s.Authenticate("user@example.com", "user123")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, user.Role)
}

func TestAuthenticateFailures(t *testing.T) {
	s := newUserStore(t)

	_, err := s.Authenticate("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Wrong password reports the same error as an unknown email.
	_, err = s.Authenticate("user@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateUser(t *testing.T) {
	s := newUserStore(t)

	u, err := s.Create("Jane Doe", "Jane@Example.com", "secret123", "081234567890")
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, u.Role)
	// Emails are stored lowercased.
	assert.Equal(t, "jane@example.com", u.Email)
	assert.NotEmpty(t, u.PasswordHash)

	got, err := s.Authenticate("jane@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestCreateDuplicateEmail(t *testing.T) {
	s := newUserStore(t)

	_, err := s.Create("Someone", "user@example.com", "password", "")
	assert.ErrorIs(t, err, ErrEmailExists)
}

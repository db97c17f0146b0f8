package model

import "time"

// User roles. Admins see the dashboard and can manage bookings;
// regular users book rooms for themselves.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account known to the identity provider. The
// PasswordHash field holds a bcrypt digest and is never serialized;
// handlers expose their own response types where needed.
//
// Fields:
//  ID           – account identifier.
//  Name         – display name.
//  Email        – unique login email (lowercased).
//  Phone        – optional contact number.
//  Role         – "user" or "admin".
//  PasswordHash – bcrypt hash of the password.
//  CreatedAt    – account creation timestamp.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

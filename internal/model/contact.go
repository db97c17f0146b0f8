package model

import "time"

// ContactMessage is a message submitted through the contact form.
// Status starts at "new" and is advanced by admins reviewing the inbox.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"` // new | read | replied
}

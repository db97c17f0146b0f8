// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a settled payment confirms a
// booking. It carries enough information for downstream consumers to
// log, notify, or feed analytics without querying the booking ledger.
type BookingConfirmedEvent struct {
	BookingID   string `json:"booking_id"`
	UserID      string `json:"user_id"`
	UserEmail   string `json:"user_email"`
	RoomID      string `json:"room_id"`
	RoomName    string `json:"room_name"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Guests      int    `json:"guests"`
	TotalPrice  int64  `json:"total_price"`
	Method      string `json:"payment_method"`
	ConfirmedAt string `json:"confirmed_at"`
}

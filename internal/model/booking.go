package model

import "time"

// BookingStatus is the stored lifecycle state of a booking. The status
// actually shown to users is the *effective* status, which additionally
// accounts for the payment deadline; see repository.BookingStore.
type BookingStatus string

// Booking lifecycle states.
//
//	pending   --confirm-->            confirmed
//	pending   --deadline elapsed-->   cancelled (automatic)
//	pending   --cancel-->             cancelled
//	confirmed --cancel-->             cancelled
//	confirmed --stay completed-->     completed
//
// cancelled and completed are terminal.
const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking records a reservation for one room and one stay. TotalPrice
// and the room/guest fields are snapshots taken at creation time; they
// are never recomputed from the catalog or the user profile afterwards.
//
// Fields:
//  ID              – booking reference (BKG-...).
//  UserID          – account that made the booking.
//  UserName        – account name at booking time.
//  UserEmail       – account email at booking time.
//  RoomID          – booked room.
//  RoomName        – room name at booking time.
//  CheckIn         – stay start date.
//  CheckOut        – stay end date, strictly after CheckIn.
//  Guests          – guest count, 1..room capacity.
//  TotalPrice      – nights x nightly rate, snapshot in rupiah.
//  Status          – stored lifecycle state.
//  CreatedAt       – creation instant; anchors the payment deadline.
//  SpecialRequests – optional free-text requests.
//  GuestName       – contact name captured on the booking form.
//  GuestEmail      – contact email captured on the booking form.
//  GuestPhone      – contact phone captured on the booking form.
type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	UserName        string        `json:"user_name"`
	UserEmail       string        `json:"user_email"`
	RoomID          string        `json:"room_id"`
	RoomName        string        `json:"room_name"`
	CheckIn         time.Time     `json:"check_in"`
	CheckOut        time.Time     `json:"check_out"`
	Guests          int           `json:"guests"`
	TotalPrice      int64         `json:"total_price"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	GuestName       string        `json:"guest_name"`
	GuestEmail      string        `json:"guest_email"`
	GuestPhone      string        `json:"guest_phone"`
}

// GuestContact carries the contact fields captured on the booking form.
// They are stored on the booking independently of the user's current
// profile so later profile edits do not rewrite past bookings.
type GuestContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// DashboardStats is a read-only aggregate snapshot consumed by the
// admin dashboard. Revenue counts confirmed and completed bookings only.
type DashboardStats struct {
	TotalBookings   int   `json:"total_bookings"`
	TotalRevenue    int64 `json:"total_revenue"`
	OccupancyRate   int   `json:"occupancy_rate"`
	ActiveGuests    int   `json:"active_guests"`
	PendingBookings int   `json:"pending_bookings"`
	TotalRooms      int   `json:"total_rooms"`
}

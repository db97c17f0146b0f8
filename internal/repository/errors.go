// Package repository defines error types that are reused across multiple
// stores. These sentinel values allow higher layers such as handlers to
// distinguish between different failure scenarios. For example,
// ErrInvalidTransition indicates that a booking is already in a terminal
// state, while ErrRoomUnavailable signals a validation failure on the
// booking form. Handlers translate validation sentinels into HTTP 400,
// not-found sentinels into 404 and transition errors into 409.
package repository

import "errors"

// ErrRoomNotFound is returned when a room ID is unknown to the catalog.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a booking ID is unknown to the ledger.
var ErrBookingNotFound = errors.New("booking not found")

// ErrUserNotFound is returned when no account matches the given email or ID.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned on signup when the email is already registered.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidStay is returned when check-out is not strictly after
// check-in, i.e. the stay has zero nights.
var ErrInvalidStay = errors.New("check-out must be after check-in")

// ErrGuestLimit is returned when the guest count is below one or above
// the room's capacity.
var ErrGuestLimit = errors.New("guest count out of range for room")

// ErrRoomUnavailable is returned when booking a room whose availability
// flag is off.
var ErrRoomUnavailable = errors.New("room is not available")

// ErrInvalidTransition is returned when a status transition is attempted
// from a terminal or mismatched state, such as confirming a booking
// whose payment deadline already passed.
var ErrInvalidTransition = errors.New("invalid booking status transition")

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tirtadhi/ZOEHotel/internal/model"
	"github.com/tirtadhi/ZOEHotel/internal/repository"
)

// BookingHandler drives the booking lifecycle on behalf of signed-in
// users: creation, listing with effective status and countdown,
// user-initiated confirmation and cancellation. All methods assume JWT
// authentication has already run; ownership is enforced per booking.
type BookingHandler struct {
	Rooms    *repository.RoomStore
	Users    *repository.UserStore
	Bookings *repository.BookingStore
}

func NewBookingHandler(rooms *repository.RoomStore, users *repository.UserStore, bookings *repository.BookingStore) *BookingHandler {
	if rooms == nil || users == nil || bookings == nil {
		panic("nil store passed to NewBookingHandler")
	}
	return &BookingHandler{Rooms: rooms, Users: users, Bookings: bookings}
}

// ----- DTOs -----

type createBookingReq struct {
	RoomID          string `json:"room_id"`
	CheckIn         string `json:"check_in"`  // YYYY-MM-DD
	CheckOut        string `json:"check_out"` // YYYY-MM-DD
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
	GuestName       string `json:"guest_name"`
	GuestEmail      string `json:"guest_email"`
	GuestPhone      string `json:"guest_phone"`
}

// bookingResp wraps a booking with its derived fields. Status is the
// effective status; the stored status is not exposed separately so the
// two can never disagree in a response.
type bookingResp struct {
	model.Booking
	Status          model.BookingStatus `json:"status"`
	PaymentDeadline time.Time           `json:"payment_deadline"`
	TimeRemaining   string              `json:"time_remaining,omitempty"`
}

func (h *BookingHandler) toResp(b model.Booking) bookingResp {
	return bookingResp{
		Booking:         b,
		Status:          h.Bookings.EffectiveStatus(b),
		PaymentDeadline: h.Bookings.Deadline(b),
		TimeRemaining:   h.Bookings.TimeRemaining(b),
	}
}

// CreateBooking handles POST /v1/bookings. The acting user comes from
// the JWT; the room snapshot comes from the catalog at this instant.
// Responds 201 with the pending booking, or 400 for validation
// failures (bad date range, guest count, unavailable room).
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	user, err := h.Users.GetByID(uid)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	room, err := h.Rooms.GetByID(req.RoomID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_in date"})
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid check_out date"})
	}

	// The form's contact fields default to the account profile, as the
	// booking page prefills them.
	contact := model.GuestContact{Name: req.GuestName, Email: req.GuestEmail, Phone: req.GuestPhone}
	if contact.Name == "" {
		contact.Name = user.Name
	}
	if contact.Email == "" {
		contact.Email = user.Email
	}
	if contact.Phone == "" {
		contact.Phone = user.Phone
	}

	b, err := h.Bookings.Create(repository.CreateBookingInput{
		Room:            room,
		User:            user,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		Contact:         contact,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidStay),
			errors.Is(err, repository.ErrGuestLimit),
			errors.Is(err, repository.ErrRoomUnavailable):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": h.toResp(b)})
}

// ListBookings handles GET /v1/bookings. It returns the caller's own
// bookings, most recent first, with the effective status and countdown
// derived at response time. ?status= filters on effective status;
// omitted or "all" returns everything.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	filter := c.QueryParam("status")
	if filter == "" {
		filter = repository.StatusAll
	}
	items := make([]bookingResp, 0)
	for _, b := range h.Bookings.ListByUser(uid, filter) {
		items = append(items, h.toResp(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetBooking handles GET /v1/bookings/:id. Admins can fetch any
// booking; users only their own (a foreign ID reads as not found so
// booking references are not enumerable).
func (h *BookingHandler) GetBooking(c echo.Context) error {
	b, ok := h.authorized(c)
	if !ok {
		return nil
	}
	return c.JSON(http.StatusOK, echo.Map{"item": h.toResp(b)})
}

// ConfirmBooking handles POST /v1/bookings/:id/confirm. Only an
// effectively pending booking can be confirmed; a booking past its
// payment deadline responds 409 even before reconciliation persists the
// cancellation.
func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	b, ok := h.authorized(c)
	if !ok {
		return nil
	}
	confirmed, err := h.Bookings.Confirm(b.ID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking is not pending"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "confirm failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": h.toResp(confirmed)})
}

// CancelBooking handles POST /v1/bookings/:id/cancel. Pending and
// confirmed bookings can be cancelled; cancelled and completed are
// terminal and respond 409.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	b, ok := h.authorized(c)
	if !ok {
		return nil
	}
	cancelled, err := h.Bookings.Cancel(b.ID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking already finalized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": h.toResp(cancelled)})
}

// authorized loads the booking from the :id parameter and enforces
// ownership. It writes the error response itself and reports false when
// the caller should stop.
func (h *BookingHandler) authorized(c echo.Context) (model.Booking, bool) {
	uid, err := getUserID(c)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		return model.Booking{}, false
	}
	b, err := h.Bookings.GetByID(c.Param("id"))
	if err != nil {
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		return model.Booking{}, false
	}
	if b.UserID != uid && !isAdmin(c) {
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		return model.Booking{}, false
	}
	return b, true
}

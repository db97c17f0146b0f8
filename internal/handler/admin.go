package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tirtadhi/ZOEHotel/internal/repository"
)

// AdminHandler serves the staff dashboard: aggregate stats, the full
// booking ledger, stay completion and the contact inbox. Routes using
// it sit behind the admin role middleware.
type AdminHandler struct {
	Rooms    *repository.RoomStore
	Bookings *repository.BookingStore
	Messages *repository.ContactStore
}

// Dashboard handles GET /v1/admin/dashboard.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"item": h.Bookings.Stats(h.Rooms.Count())})
}

// ListAllBookings handles GET /v1/admin/bookings across every user.
// ?status= filters on effective status.
func (h *AdminHandler) ListAllBookings(c echo.Context) error {
	filter := c.QueryParam("status")
	if filter == "" {
		filter = repository.StatusAll
	}
	bh := BookingHandler{Bookings: h.Bookings}
	items := make([]bookingResp, 0)
	for _, b := range h.Bookings.ListByStatus(filter) {
		items = append(items, bh.toResp(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CompleteBooking handles POST /v1/admin/bookings/:id/complete, marking
// a confirmed stay as completed after checkout.
func (h *AdminHandler) CompleteBooking(c echo.Context) error {
	b, err := h.Bookings.Complete(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, repository.ErrInvalidTransition):
			return c.JSON(http.StatusConflict, echo.Map{"error": "only confirmed bookings can be completed"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "complete failed"})
		}
	}
	bh := BookingHandler{Bookings: h.Bookings}
	return c.JSON(http.StatusOK, echo.Map{"item": bh.toResp(b)})
}

// ListMessages handles GET /v1/admin/messages, the contact inbox.
func (h *AdminHandler) ListMessages(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Messages.List()})
}

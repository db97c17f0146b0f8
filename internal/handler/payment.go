package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tirtadhi/ZOEHotel/internal/model"
	"github.com/tirtadhi/ZOEHotel/internal/payment"
	"github.com/tirtadhi/ZOEHotel/internal/queue"
	"github.com/tirtadhi/ZOEHotel/internal/repository"
	"github.com/tirtadhi/ZOEHotel/internal/utils"
)

// PaymentHandler runs the checkout flow: method catalog, payment
// creation and the simulated gateway round-trip. A successful
// settlement confirms the underlying booking and publishes a
// confirmation event for downstream consumers.
type PaymentHandler struct {
	Gateway  *payment.Simulator
	Bookings *repository.BookingStore
	Users    *repository.UserStore

	// Publish is called after a settlement confirms a booking. Nil
	// disables publishing (e.g. when the broker is not configured).
	Publish func(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// ----- DTOs -----

type createPaymentReq struct {
	Method string `json:"method"`
}

type paymentResp struct {
	model.Payment
	Status     model.PaymentStatus `json:"status"`
	QRImageURL string              `json:"qr_image_url,omitempty"`
	AmountText string              `json:"amount_text"`
}

func (h *PaymentHandler) toResp(p model.Payment) paymentResp {
	r := paymentResp{
		Payment:    p,
		Status:     payment.CheckExpiry(p, time.Now().UTC()),
		AmountText: utils.FormatRupiah(p.Amount),
	}
	if p.QRCode != "" {
		r.QRImageURL = payment.QRImageURL(p.QRCode)
	}
	return r
}

// ListMethods handles GET /v1/payments/methods: the settlement method
// catalog plus the transfer destinations shown on the checkout page.
func (h *PaymentHandler) ListMethods(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"methods":       h.Gateway.Methods(),
		"bank_accounts": repository.SeedBankAccounts(),
		"e_wallets":     repository.EWalletOptions(),
	})
}

// CreatePayment handles POST /v1/bookings/:id/payments. The booking
// must belong to the caller and still be effectively pending; disabled
// methods are rejected before they reach the gateway. Creating a
// payment for a booking that already has one replaces the earlier
// attempt.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	method := model.PaymentMethod(req.Method)
	if !h.Gateway.MethodEnabled(method) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment method not available"})
	}
	b, err := h.Bookings.GetByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	if b.UserID != uid && !isAdmin(c) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	if h.Bookings.EffectiveStatus(b) != model.StatusPending {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking is not awaiting payment"})
	}

	p := h.Gateway.Create(b, method)

	// Cash settles at creation, so the booking confirms here rather
	// than through Resolve.
	if p.Status == model.PaymentPaid {
		if confirmed, err := h.Bookings.Confirm(b.ID); err == nil {
			h.publishConfirmed(confirmed, p)
		} else if !errors.Is(err, repository.ErrInvalidTransition) {
			log.Printf("payment: confirm after cash settlement failed: %v", err)
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": h.toResp(p)})
}

// ResolvePayment handles POST /v1/payments/:id/resolve, one simulated
// gateway round-trip. The request suspends for the gateway delay; if
// the client goes away the settlement is abandoned and the payment
// stays pending. On success the booking is confirmed and the
// confirmation event published.
func (h *PaymentHandler) ResolvePayment(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := c.Param("id")
	p, err := h.Gateway.Get(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
	}
	b, err := h.Bookings.GetByID(p.BookingID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
	}
	if b.UserID != uid && !isAdmin(c) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
	}

	settled, err := h.Gateway.Resolve(c.Request().Context(), id)
	switch {
	case errors.Is(err, payment.ErrAlreadySettled):
		return c.JSON(http.StatusConflict, echo.Map{"item": h.toResp(settled), "error": "payment already settled"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case err != nil:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
	}

	if settled.Status == model.PaymentPaid {
		confirmed, err := h.Bookings.Confirm(b.ID)
		if err != nil {
			// The deadline may have passed during the gateway delay; the
			// payment stays paid but the booking cannot revive.
			log.Printf("payment: confirm booking %s failed: %v", b.ID, err)
		} else {
			h.publishConfirmed(confirmed, settled)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"item": h.toResp(settled)})
}

// GetPayment handles GET /v1/payments/:id. The reported status folds in
// wall-clock expiry, so a stale pending payment reads as expired.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	p, err := h.Gateway.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
	}
	b, err := h.Bookings.GetByID(p.BookingID)
	if err == nil && b.UserID != uid && !isAdmin(c) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": h.toResp(p)})
}

func (h *PaymentHandler) publishConfirmed(b model.Booking, p model.Payment) {
	if h.Publish == nil {
		return
	}
	email := ""
	if h.Users != nil {
		if u, err := h.Users.GetByID(b.UserID); err == nil {
			email = u.Email
		}
	}
	ev := queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		UserID:      b.UserID,
		UserEmail:   email,
		RoomID:      b.RoomID,
		RoomName:    b.RoomName,
		CheckIn:     b.CheckIn.Format("2006-01-02"),
		CheckOut:    b.CheckOut.Format("2006-01-02"),
		Guests:      b.Guests,
		TotalPrice:  b.TotalPrice,
		Method:      string(p.Method),
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Publish(ctx, ev); err != nil {
		log.Printf("payment: publish booking.confirmed for %s failed: %v", b.ID, err)
	}
}

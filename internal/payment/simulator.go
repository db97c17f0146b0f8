// Package payment simulates a third-party payment gateway for the
// booking checkout. No money moves: settlement outcomes come from an
// injectable probability source and the QRIS payload is an encoded
// stand-in for what a real acquirer would return.
package payment

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/tirtadhi/ZOEHotel/internal/model"
	"github.com/tirtadhi/ZOEHotel/internal/utils"
)

// ErrPaymentNotFound is returned when a payment ID is unknown.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrAlreadySettled is returned when Resolve is called on a payment
// that is already paid or expired. A paid payment is never settled
// twice and never downgraded.
var ErrAlreadySettled = errors.New("payment already settled")

// OutcomeSource decides whether a simulated settlement succeeds. The
// default draws at the configured success rate; tests inject a
// deterministic source.
type OutcomeSource func() bool

// PercentOutcome returns a source that succeeds the given percentage of
// the time. Values at or below 0 always fail, at or above 100 always
// succeed.
func PercentOutcome(percent int) OutcomeSource {
	p := float64(percent) / 100
	return func() bool { return rand.Float64() < p }
}

// Config carries the simulator knobs. Window is the settlement window
// applied to ExpiresAt; Delay is the simulated gateway round-trip.
type Config struct {
	MerchantName string
	MerchantID   string
	Window       time.Duration
	Delay        time.Duration
	Outcome      OutcomeSource
	Now          func() time.Time
}

// Simulator creates and settles payments for bookings. It holds at most
// one active payment per booking: creating a new payment for a booking
// discards the previous attempt, matching a dismissed checkout modal.
type Simulator struct {
	cfg       Config
	mu        sync.Mutex
	payments  map[string]*model.Payment
	byBooking map[string]string // booking ID -> active payment ID
}

// New returns a Simulator. Missing knobs get the product defaults:
// 24 hour window, 2 second gateway delay, 90% success rate.
func New(cfg Config) *Simulator {
	if cfg.Window <= 0 {
		cfg.Window = 24 * time.Hour
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if cfg.Outcome == nil {
		cfg.Outcome = func() bool { return rand.Float64() < 0.9 }
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	return &Simulator{
		cfg:       cfg,
		payments:  make(map[string]*model.Payment),
		byBooking: make(map[string]string),
	}
}

// Methods returns the fixed settlement method catalog. Credit card is
// listed but disabled; callers must reject disabled methods before
// calling Create, the simulator does not re-validate enablement.
func (s *Simulator) Methods() []model.MethodInfo {
	return []model.MethodInfo{
		{ID: model.MethodQRIS, Name: "QRIS", Description: "Scan QR code with an e-wallet or mobile banking app", Enabled: true},
		{ID: model.MethodBankTransfer, Name: "Bank Transfer", Description: "Manual transfer to a bank account", Enabled: true},
		{ID: model.MethodCreditCard, Name: "Credit Card", Description: "Visa, Mastercard, JCB", Enabled: false},
		{ID: model.MethodCash, Name: "Cash on Arrival", Description: "Pay at check-in", Enabled: true},
	}
}

// MethodEnabled reports whether m exists in the catalog and is enabled.
func (s *Simulator) MethodEnabled(m model.PaymentMethod) bool {
	for _, info := range s.Methods() {
		if info.ID == m {
			return info.Enabled
		}
	}
	return false
}

// Create opens a new pending payment for the booking. The amount is
// copied from the booking's total price and the expiry is the creation
// instant plus the settlement window. The qris method additionally gets
// an encoded QR payload and a transaction ID. Cash settles immediately:
// pay-on-arrival has no gateway round-trip and no failure mode.
func (s *Simulator) Create(b model.Booking, method model.PaymentMethod) model.Payment {
	now := s.cfg.Now()
	p := &model.Payment{
		ID:        utils.NewRef("PAY"),
		BookingID: b.ID,
		Amount:    b.TotalPrice,
		Method:    method,
		Status:    model.PaymentPending,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.Window),
	}
	switch method {
	case model.MethodQRIS:
		p.QRCode = EncodeQRIS(s.cfg.MerchantName, s.cfg.MerchantID, b.ID, b.TotalPrice, now)
		p.TransactionID = utils.NewRef("TRX")
	case model.MethodCash:
		paidAt := now
		p.Status = model.PaymentPaid
		p.PaidAt = &paidAt
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.byBooking[b.ID]; ok {
		delete(s.payments, prev)
	}
	s.payments[p.ID] = p
	s.byBooking[b.ID] = p.ID
	return *p
}

// Get returns the payment with the given ID or ErrPaymentNotFound.
func (s *Simulator) Get(id string) (model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[id]
	if !ok {
		return model.Payment{}, ErrPaymentNotFound
	}
	return *p, nil
}

// Resolve performs one settlement attempt. It suspends for the
// configured gateway delay (honoring ctx, so an abandoned checkout
// cancels cleanly) and then settles with the configured probability.
// Failure is a normal outcome, not an error: the payment is marked
// failed and the caller may call Resolve again or start over with a
// different method. Resolving a paid or expired payment returns
// ErrAlreadySettled.
func (s *Simulator) Resolve(ctx context.Context, id string) (model.Payment, error) {
	s.mu.Lock()
	p, ok := s.payments[id]
	if !ok {
		s.mu.Unlock()
		return model.Payment{}, ErrPaymentNotFound
	}
	if p.Status == model.PaymentPaid || p.Status == model.PaymentExpired {
		cur := *p
		s.mu.Unlock()
		return cur, ErrAlreadySettled
	}
	s.mu.Unlock()

	// Simulated gateway latency. The caller must treat Resolve as a
	// genuinely suspending call and render a processing state.
	if s.cfg.Delay > 0 {
		select {
		case <-time.After(s.cfg.Delay):
		case <-ctx.Done():
			return model.Payment{}, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok = s.payments[id]
	if !ok {
		return model.Payment{}, ErrPaymentNotFound
	}
	if p.Status == model.PaymentPaid || p.Status == model.PaymentExpired {
		return *p, ErrAlreadySettled
	}
	now := s.cfg.Now()
	if now.After(p.ExpiresAt) {
		p.Status = model.PaymentExpired
		return *p, ErrAlreadySettled
	}
	if s.cfg.Outcome() {
		p.Status = model.PaymentPaid
		p.PaidAt = &now
	} else {
		p.Status = model.PaymentFailed
	}
	return *p, nil
}

// CheckExpiry reconciles a payment status with wall-clock time: a
// pending payment past its expiry reports expired, every other status
// is returned unchanged. Expiry never downgrades a paid payment.
func CheckExpiry(p model.Payment, now time.Time) model.PaymentStatus {
	if p.Status == model.PaymentPending && now.After(p.ExpiresAt) {
		return model.PaymentExpired
	}
	return p.Status
}

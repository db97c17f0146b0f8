package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirtadhi/ZOEHotel/internal/model"
)

func testBooking() model.Booking {
	return model.Booking{ID: "BKG-test", UserID: "user-1", TotalPrice: 1000000}
}

// newTestSimulator returns a simulator with no gateway delay, a frozen
// clock and a fixed outcome.
func newTestSimulator(outcome bool) (*Simulator, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := New(Config{
		MerchantName: "ZOE Hotel",
		MerchantID:   "BOOKING123",
		Window:       24 * time.Hour,
		Outcome:      func() bool { return outcome },
		Now:          func() time.Time { return now },
	})
	return s, &now
}

func TestCreateQRIS(t *testing.T) {
	s, _ := newTestSimulator(true)
	p := s.Create(testBooking(), model.MethodQRIS)

	assert.Equal(t, model.PaymentPending, p.Status)
	assert.Equal(t, int64(1000000), p.Amount)
	assert.NotEmpty(t, p.QRCode)
	assert.Contains(t, p.TransactionID, "TRX-")
	assert.Equal(t, p.CreatedAt.Add(24*time.Hour), p.ExpiresAt)
	assert.Nil(t, p.PaidAt)
}

func TestCreateCashSettlesImmediately(t *testing.T) {
	s, _ := newTestSimulator(false) // outcome must not matter for cash
	p := s.Create(testBooking(), model.MethodCash)

	assert.Equal(t, model.PaymentPaid, p.Status)
	require.NotNil(t, p.PaidAt)
	assert.Equal(t, p.CreatedAt, *p.PaidAt)
}

func TestCreateReplacesPreviousAttempt(t *testing.T) {
	s, _ := newTestSimulator(true)
	first := s.Create(testBooking(), model.MethodQRIS)
	second := s.Create(testBooking(), model.MethodBankTransfer)

	_, err := s.Get(first.ID)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
	got, err := s.Get(second.ID)
	require.NoError(t, err)
	assert.Equal(t, model.MethodBankTransfer, got.Method)
}

func TestResolveSuccessMarksPaid(t *testing.T) {
	s, _ := newTestSimulator(true)
	p := s.Create(testBooking(), model.MethodQRIS)

	settled, err := s.Resolve(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, settled.Status)
	require.NotNil(t, settled.PaidAt)
}

func TestResolveFailureAllowsRetry(t *testing.T) {
	outcome := false
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := New(Config{
		Outcome: func() bool { return outcome },
		Now:     func() time.Time { return now },
	})
	p := s.Create(testBooking(), model.MethodQRIS)

	settled, err := s.Resolve(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentFailed, settled.Status)

	// Failure is retryable; the next attempt may succeed.
	outcome = true
	settled, err = s.Resolve(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, settled.Status)
}

func TestResolvePaidIsFinal(t *testing.T) {
	s, _ := newTestSimulator(true)
	p := s.Create(testBooking(), model.MethodQRIS)

	_, err := s.Resolve(context.Background(), p.ID)
	require.NoError(t, err)

	settled, err := s.Resolve(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrAlreadySettled)
	assert.Equal(t, model.PaymentPaid, settled.Status)
}

func TestResolveAfterExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := New(Config{
		Window:  24 * time.Hour,
		Outcome: func() bool { return true },
		Now:     func() time.Time { return now },
	})
	p := s.Create(testBooking(), model.MethodQRIS)

	now = now.Add(25 * time.Hour)
	settled, err := s.Resolve(context.Background(), p.ID)
	assert.ErrorIs(t, err, ErrAlreadySettled)
	assert.Equal(t, model.PaymentExpired, settled.Status)
}

func TestResolveHonorsContext(t *testing.T) {
	s := New(Config{
		Delay:   time.Minute,
		Outcome: func() bool { return true },
	})
	p := s.Create(testBooking(), model.MethodQRIS)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Resolve(ctx, p.ID)
	assert.ErrorIs(t, err, context.Canceled)

	// The abandoned attempt left the payment pending.
	got, err := s.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPending, got.Status)
}

func TestResolveUnknownID(t *testing.T) {
	s, _ := newTestSimulator(true)
	_, err := s.Resolve(context.Background(), "PAY-missing")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestMethodEnabled(t *testing.T) {
	s, _ := newTestSimulator(true)

	assert.True(t, s.MethodEnabled(model.MethodQRIS))
	assert.True(t, s.MethodEnabled(model.MethodBankTransfer))
	assert.True(t, s.MethodEnabled(model.MethodCash))
	assert.False(t, s.MethodEnabled(model.MethodCreditCard))
	assert.False(t, s.MethodEnabled("gift_card"))
}

func TestPercentOutcome(t *testing.T) {
	always := PercentOutcome(100)
	never := PercentOutcome(0)
	for i := 0; i < 100; i++ {
		assert.True(t, always())
		assert.False(t, never())
	}

	// At 90% the hit rate over many draws should sit near the target.
	src := PercentOutcome(90)
	hits := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		if src() {
			hits++
		}
	}
	rate := float64(hits) / draws
	assert.InDelta(t, 0.9, rate, 0.03)
}

func TestCheckExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := model.Payment{Status: model.PaymentPending, ExpiresAt: now.Add(time.Hour)}

	assert.Equal(t, model.PaymentPending, CheckExpiry(p, now))
	assert.Equal(t, model.PaymentExpired, CheckExpiry(p, now.Add(2*time.Hour)))

	// Expiry never downgrades a settled payment.
	p.Status = model.PaymentPaid
	assert.Equal(t, model.PaymentPaid, CheckExpiry(p, now.Add(48*time.Hour)))
}

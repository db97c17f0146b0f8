package model

import "time"

// PaymentMethod identifies one of the simulated settlement channels.
type PaymentMethod string

// Settlement methods offered at checkout. Credit card is listed but
// permanently disabled (reserved for a future gateway integration).
const (
	MethodQRIS         PaymentMethod = "qris"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCreditCard   PaymentMethod = "credit_card"
	MethodCash         PaymentMethod = "cash"
)

// PaymentStatus is the settlement state of a payment attempt.
type PaymentStatus string

// Payment states. A failed payment may be retried; an expired or paid
// payment is final.
const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
	PaymentExpired PaymentStatus = "expired"
)

// Payment is one settlement attempt for a booking. At most one payment
// is active per booking at a time; the record lives only for the
// duration of a checkout flow and is not part of the durable booking.
//
// Fields:
//  ID            – payment reference (PAY-...).
//  BookingID     – booking being paid for.
//  Amount        – copied from the booking's total price.
//  Method        – settlement channel.
//  Status        – settlement state.
//  QRCode        – encoded QRIS payload; qris method only.
//  TransactionID – simulated gateway reference; qris method only.
//  PaidAt        – settlement instant, nil until paid.
//  CreatedAt     – creation instant.
//  ExpiresAt     – CreatedAt plus the settlement window.
type Payment struct {
	ID            string        `json:"id"`
	BookingID     string        `json:"booking_id"`
	Amount        int64         `json:"amount"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	QRCode        string        `json:"qr_code,omitempty"`
	TransactionID string        `json:"transaction_id,omitempty"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	ExpiresAt     time.Time     `json:"expires_at"`
}

// MethodInfo describes a settlement method for the checkout UI.
type MethodInfo struct {
	ID          PaymentMethod `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Enabled     bool          `json:"enabled"`
}

// BankAccount is a destination account shown for manual bank transfers.
type BankAccount struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

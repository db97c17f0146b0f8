package service

import (
	"context"
	"log"
	"time"

	"github.com/tirtadhi/ZOEHotel/internal/repository"
)

// Reconciler periodically persists deadline expiries into the booking
// ledger. The effective status already reports an expired pending
// booking as cancelled, so this pass changes nothing a caller can
// observe; it exists so the stored records catch up with that decision
// exactly once per booking.
type Reconciler struct {
	Bookings *repository.BookingStore
	Interval time.Duration
}

// NewReconciler returns a reconciler over the given ledger. interval
// defaults to one minute, matching the product's sweep cadence.
func NewReconciler(bookings *repository.BookingStore, interval time.Duration) *Reconciler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Reconciler{Bookings: bookings, Interval: interval}
}

// Run sweeps immediately and then on every tick until ctx is cancelled.
// Re-running after a booking was already persisted as cancelled is a
// no-op, so the schedule can be arbitrarily aggressive.
func (r *Reconciler) Run(ctx context.Context) {
	if n := r.Bookings.ReconcileExpired(); n > 0 {
		log.Printf("reconciler: auto-cancelled %d expired booking(s)", n)
	}
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Bookings.ReconcileExpired(); n > 0 {
				log.Printf("reconciler: auto-cancelled %d expired booking(s)", n)
			}
		}
	}
}

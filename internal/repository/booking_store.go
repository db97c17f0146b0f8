package repository

import (
	"sync"
	"time"

	"github.com/tirtadhi/ZOEHotel/internal/model"
	"github.com/tirtadhi/ZOEHotel/internal/utils"
)

// Clock supplies the current time. Injecting it keeps every deadline
// decision a pure function of stored timestamps, so tests can place
// "now" anywhere around the payment deadline.
type Clock func() time.Time

// StatusAll is the ListByStatus filter that matches every booking.
const StatusAll = "all"

// BookingStore is the in-memory booking ledger. It owns every booking
// record and is the only component allowed to change a stored status.
// Bookings are never deleted; cancellation is a status, not removal.
//
// The status reported to callers is the *effective* status: for a
// stored pending booking past its payment deadline the store reports
// cancelled even before ReconcileExpired has persisted that decision,
// so the two can never disagree on what the caller should see.
type BookingStore struct {
	mu       sync.Mutex
	bookings []*model.Booking // most recent first
	byID     map[string]*model.Booking
	deadline time.Duration
	now      Clock
}

// NewBookingStore returns an empty ledger. deadline is the settlement
// window after creation within which a pending booking must be
// confirmed; now may be nil to use wall-clock time.
func NewBookingStore(deadline time.Duration, now Clock) *BookingStore {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &BookingStore{
		byID:     make(map[string]*model.Booking),
		deadline: deadline,
		now:      now,
	}
}

// CreateBookingInput carries everything the ledger needs to create a
// booking: the room and user snapshots plus the form fields.
type CreateBookingInput struct {
	Room            model.Room
	User            model.User
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
	Contact         model.GuestContact
}

// Create validates the stay and appends a new pending booking. The
// total price is computed once from the room's current nightly rate and
// stored on the booking; it is never recomputed afterwards.
func (s *BookingStore) Create(in CreateBookingInput) (model.Booking, error) {
	nights := utils.Nights(in.CheckIn, in.CheckOut)
	if nights <= 0 {
		return model.Booking{}, ErrInvalidStay
	}
	if in.Guests < 1 || in.Guests > in.Room.Capacity {
		return model.Booking{}, ErrGuestLimit
	}
	if !in.Room.Availability {
		return model.Booking{}, ErrRoomUnavailable
	}

	b := &model.Booking{
		ID:              utils.NewRef("BKG"),
		UserID:          in.User.ID,
		UserName:        in.User.Name,
		UserEmail:       in.User.Email,
		RoomID:          in.Room.ID,
		RoomName:        in.Room.Name,
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		Guests:          in.Guests,
		TotalPrice:      int64(nights) * in.Room.Price,
		Status:          model.StatusPending,
		CreatedAt:       s.now(),
		SpecialRequests: in.SpecialRequests,
		GuestName:       in.Contact.Name,
		GuestEmail:      in.Contact.Email,
		GuestPhone:      in.Contact.Phone,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append([]*model.Booking{b}, s.bookings...)
	s.byID[b.ID] = b
	return *b, nil
}

// EffectiveStatus reconciles a stored status with wall-clock time. Any
// non-pending status is returned unchanged. A pending booking whose
// payment deadline has elapsed is reported as cancelled even though the
// stored record still says pending; ReconcileExpired persists that
// transition separately.
func EffectiveStatus(b model.Booking, deadline time.Duration, now time.Time) model.BookingStatus {
	if b.Status != model.StatusPending {
		return b.Status
	}
	if now.After(b.CreatedAt.Add(deadline)) {
		return model.StatusCancelled
	}
	return model.StatusPending
}

// EffectiveStatus reports the status of b as of the store's clock.
func (s *BookingStore) EffectiveStatus(b model.Booking) model.BookingStatus {
	return EffectiveStatus(b, s.deadline, s.now())
}

// Deadline returns the instant b must be confirmed by.
func (s *BookingStore) Deadline(b model.Booking) time.Time {
	return b.CreatedAt.Add(s.deadline)
}

// TimeRemaining formats the countdown until b's payment deadline, e.g.
// "3h 12m". It returns the expired sentinel once the deadline has
// passed, and the empty string when b is not effectively pending (no
// countdown applies). The value is derived from stored timestamps on
// every call; nothing ticks in memory.
func (s *BookingStore) TimeRemaining(b model.Booking) string {
	now := s.now()
	if b.Status != model.StatusPending {
		return ""
	}
	if EffectiveStatus(b, s.deadline, now) != model.StatusPending {
		return utils.TimeExpired
	}
	return utils.FormatRemaining(b.CreatedAt.Add(s.deadline).Sub(now))
}

// GetByID returns the booking with the given ID or ErrBookingNotFound.
func (s *BookingStore) GetByID(id string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byID[id]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return *b, nil
}

// Confirm transitions a pending booking to confirmed. The decision is
// made on the effective status, so a booking whose deadline has already
// elapsed cannot be confirmed even if reconciliation has not run yet.
func (s *BookingStore) Confirm(id string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byID[id]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	if EffectiveStatus(*b, s.deadline, s.now()) != model.StatusPending {
		return model.Booking{}, ErrInvalidTransition
	}
	b.Status = model.StatusConfirmed
	return *b, nil
}

// Cancel transitions a pending or confirmed booking to cancelled.
// Cancelling an already cancelled or completed booking fails; the
// terminal states cannot be left.
func (s *BookingStore) Cancel(id string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byID[id]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	eff := EffectiveStatus(*b, s.deadline, s.now())
	if eff != model.StatusPending && eff != model.StatusConfirmed {
		return model.Booking{}, ErrInvalidTransition
	}
	b.Status = model.StatusCancelled
	return *b, nil
}

// Complete transitions a confirmed booking to completed. The trigger is
// external (the stay ended); only admins call this.
func (s *BookingStore) Complete(id string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.byID[id]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	if b.Status != model.StatusConfirmed {
		return model.Booking{}, ErrInvalidTransition
	}
	b.Status = model.StatusCompleted
	return *b, nil
}

// ListByStatus returns bookings whose effective status matches filter,
// or all bookings when filter is StatusAll. Order is stable: most
// recent first, as inserted.
func (s *BookingStore) ListByStatus(filter string) []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	var out []model.Booking
	for _, b := range s.bookings {
		if filter != StatusAll && string(EffectiveStatus(*b, s.deadline, now)) != filter {
			continue
		}
		out = append(out, *b)
	}
	return out
}

// ListByUser returns one user's bookings, filtered like ListByStatus.
func (s *BookingStore) ListByUser(userID, filter string) []model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	var out []model.Booking
	for _, b := range s.bookings {
		if b.UserID != userID {
			continue
		}
		if filter != StatusAll && string(EffectiveStatus(*b, s.deadline, now)) != filter {
			continue
		}
		out = append(out, *b)
	}
	return out
}

// ReconcileExpired persists the auto-cancellation of every stored
// pending booking whose payment deadline has elapsed and returns how
// many records changed. Running it again is a no-op for bookings that
// were already persisted as cancelled, so it is safe on any schedule.
func (s *BookingStore) ReconcileExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	changed := 0
	for _, b := range s.bookings {
		if b.Status != model.StatusPending {
			continue
		}
		if now.After(b.CreatedAt.Add(s.deadline)) {
			b.Status = model.StatusCancelled
			changed++
		}
	}
	return changed
}

// Stats aggregates the dashboard snapshot over the ledger. Revenue
// counts confirmed and completed bookings; active guests and occupancy
// consider confirmed bookings whose stay covers the current instant.
func (s *BookingStore) Stats(totalRooms int) model.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()

	stats := model.DashboardStats{TotalRooms: totalRooms}
	occupied := make(map[string]struct{})
	for _, b := range s.bookings {
		stats.TotalBookings++
		switch EffectiveStatus(*b, s.deadline, now) {
		case model.StatusPending:
			stats.PendingBookings++
		case model.StatusConfirmed:
			stats.TotalRevenue += b.TotalPrice
			if !now.Before(b.CheckIn) && now.Before(b.CheckOut) {
				stats.ActiveGuests += b.Guests
				occupied[b.RoomID] = struct{}{}
			}
		case model.StatusCompleted:
			stats.TotalRevenue += b.TotalPrice
		}
	}
	if totalRooms > 0 {
		stats.OccupancyRate = len(occupied) * 100 / totalRooms
	}
	return stats
}

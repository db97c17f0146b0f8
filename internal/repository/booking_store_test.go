package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirtadhi/ZOEHotel/internal/model"
)

// fakeClock lets tests move "now" around the payment deadline.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestStore(t *testing.T) (*BookingStore, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewBookingStore(24*time.Hour, clk.Now), clk
}

func testRoom() model.Room {
	return model.Room{
		ID:           "1",
		Name:         "Standard Single Room",
		Price:        500000,
		Capacity:     2,
		Availability: true,
		Category:     model.CategoryStandard,
	}
}

func testUser() model.User {
	return model.User{ID: "user-1", Name: "John Doe", Email: "user@example.com"}
}

func createBooking(t *testing.T, s *BookingStore, clk *fakeClock) model.Booking {
	t.Helper()
	b, err := s.Create(CreateBookingInput{
		Room:     testRoom(),
		User:     testUser(),
		CheckIn:  clk.Now().AddDate(0, 0, 7),
		CheckOut: clk.Now().AddDate(0, 0, 9),
		Guests:   2,
	})
	require.NoError(t, err)
	return b
}

func TestCreateSnapshotsPrice(t *testing.T) {
	s, clk := newTestStore(t)

	b := createBooking(t, s, clk)
	assert.Equal(t, model.StatusPending, b.Status)
	// Two nights at 500000.
	assert.Equal(t, int64(1000000), b.TotalPrice)
	assert.Equal(t, "Standard Single Room", b.RoomName)
	assert.Equal(t, clk.Now(), b.CreatedAt)
}

func TestCreateValidation(t *testing.T) {
	s, clk := newTestStore(t)
	room := testRoom()
	in := CreateBookingInput{
		Room:     room,
		User:     testUser(),
		CheckIn:  clk.Now().AddDate(0, 0, 7),
		CheckOut: clk.Now().AddDate(0, 0, 9),
		Guests:   2,
	}

	t.Run("checkout not after checkin", func(t *testing.T) {
		bad := in
		bad.CheckOut = bad.CheckIn
		_, err := s.Create(bad)
		assert.ErrorIs(t, err, ErrInvalidStay)
	})

	t.Run("guests over capacity", func(t *testing.T) {
		bad := in
		bad.Guests = room.Capacity + 1
		_, err := s.Create(bad)
		assert.ErrorIs(t, err, ErrGuestLimit)
	})

	t.Run("zero guests", func(t *testing.T) {
		bad := in
		bad.Guests = 0
		_, err := s.Create(bad)
		assert.ErrorIs(t, err, ErrGuestLimit)
	})

	t.Run("unavailable room", func(t *testing.T) {
		bad := in
		bad.Room.Availability = false
		_, err := s.Create(bad)
		assert.ErrorIs(t, err, ErrRoomUnavailable)
	})
}

func TestEffectiveStatusAroundDeadline(t *testing.T) {
	s, clk := newTestStore(t)
	b := createBooking(t, s, clk)

	// 23 hours in: still pending, one hour on the countdown.
	clk.Advance(23 * time.Hour)
	assert.Equal(t, model.StatusPending, s.EffectiveStatus(b))
	assert.Equal(t, "1h 0m", s.TimeRemaining(b))

	// 25 hours in: effectively cancelled even though the stored record
	// still says pending.
	clk.Advance(2 * time.Hour)
	assert.Equal(t, model.StatusCancelled, s.EffectiveStatus(b))
	assert.Equal(t, "Expired", s.TimeRemaining(b))
	stored, err := s.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)
}

func TestTimeRemainingOnlyForPending(t *testing.T) {
	s, clk := newTestStore(t)
	b := createBooking(t, s, clk)

	confirmed, err := s.Confirm(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "", s.TimeRemaining(confirmed))
}

func TestConfirmTransitions(t *testing.T) {
	t.Run("pending confirms", func(t *testing.T) {
		s, clk := newTestStore(t)
		b := createBooking(t, s, clk)
		got, err := s.Confirm(b.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, got.Status)
	})

	t.Run("expired pending cannot confirm", func(t *testing.T) {
		s, clk := newTestStore(t)
		b := createBooking(t, s, clk)
		clk.Advance(25 * time.Hour)
		_, err := s.Confirm(b.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("confirmed cannot confirm again", func(t *testing.T) {
		s, clk := newTestStore(t)
		b := createBooking(t, s, clk)
		_, err := s.Confirm(b.ID)
		require.NoError(t, err)
		_, err = s.Confirm(b.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown id", func(t *testing.T) {
		s, _ := newTestStore(t)
		_, err := s.Confirm("BKG-missing")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestCancelTransitions(t *testing.T) {
	t.Run("pending cancels", func(t *testing.T) {
		s, clk := newTestStore(t)
		b := createBooking(t, s, clk)
		got, err := s.Cancel(b.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, got.Status)
	})

	t.Run("confirmed cancels", func(t *testing.T) {
		s, clk := newTestStore(t)
		b := createBooking(t, s, clk)
		_, err := s.Confirm(b.ID)
		require.NoError(t, err)
		got, err := s.Cancel(b.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, got.Status)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		s, clk := newTestStore(t)
		b := createBooking(t, s, clk)
		_, err := s.Cancel(b.ID)
		require.NoError(t, err)
		_, err = s.Cancel(b.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		s, clk := newTestStore(t)
		b := createBooking(t, s, clk)
		_, err := s.Confirm(b.ID)
		require.NoError(t, err)
		_, err = s.Complete(b.ID)
		require.NoError(t, err)
		_, err = s.Cancel(b.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	s, clk := newTestStore(t)
	b := createBooking(t, s, clk)

	_, err := s.Complete(b.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.Confirm(b.ID)
	require.NoError(t, err)
	got, err := s.Complete(b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, got.Status)
}

func TestReconcileExpired(t *testing.T) {
	s, clk := newTestStore(t)
	expired := createBooking(t, s, clk)
	clk.Advance(10 * time.Hour)
	fresh := createBooking(t, s, clk)
	confirmed := createBooking(t, s, clk)
	_, err := s.Confirm(confirmed.ID)
	require.NoError(t, err)

	// 25 hours after the first booking; the second and third are only
	// 15 hours old.
	clk.Advance(15 * time.Hour)
	assert.Equal(t, 1, s.ReconcileExpired())

	stored, err := s.GetByID(expired.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, stored.Status)

	stored, err = s.GetByID(fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, stored.Status)

	stored, err = s.GetByID(confirmed.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, stored.Status)

	// A second sweep changes nothing.
	assert.Equal(t, 0, s.ReconcileExpired())
}

func TestListByStatus(t *testing.T) {
	s, clk := newTestStore(t)
	first := createBooking(t, s, clk)
	clk.Advance(time.Hour)
	second := createBooking(t, s, clk)
	_, err := s.Confirm(second.ID)
	require.NoError(t, err)

	all := s.ListByStatus(StatusAll)
	require.Len(t, all, 2)
	// Most recent first.
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	pending := s.ListByStatus(string(model.StatusPending))
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	// Once the first booking's deadline elapses it shows up under the
	// cancelled filter without any reconciliation.
	clk.Advance(24 * time.Hour)
	cancelled := s.ListByStatus(string(model.StatusCancelled))
	require.Len(t, cancelled, 1)
	assert.Equal(t, first.ID, cancelled[0].ID)
}

func TestListByUser(t *testing.T) {
	s, clk := newTestStore(t)
	mine := createBooking(t, s, clk)

	other := testUser()
	other.ID = "user-2"
	_, err := s.Create(CreateBookingInput{
		Room:     testRoom(),
		User:     other,
		CheckIn:  clk.Now().AddDate(0, 0, 7),
		CheckOut: clk.Now().AddDate(0, 0, 9),
		Guests:   1,
	})
	require.NoError(t, err)

	got := s.ListByUser("user-1", StatusAll)
	require.Len(t, got, 1)
	assert.Equal(t, mine.ID, got[0].ID)
}

func TestStats(t *testing.T) {
	s, clk := newTestStore(t)

	// One confirmed booking whose stay covers "now".
	staying, err := s.Create(CreateBookingInput{
		Room:     testRoom(),
		User:     testUser(),
		CheckIn:  clk.Now().AddDate(0, 0, -1),
		CheckOut: clk.Now().AddDate(0, 0, 1),
		Guests:   2,
	})
	require.NoError(t, err)
	_, err = s.Confirm(staying.ID)
	require.NoError(t, err)

	// One future pending booking.
	createBooking(t, s, clk)

	stats := s.Stats(6)
	assert.Equal(t, 2, stats.TotalBookings)
	assert.Equal(t, 1, stats.PendingBookings)
	assert.Equal(t, staying.TotalPrice, stats.TotalRevenue)
	assert.Equal(t, 2, stats.ActiveGuests)
	assert.Equal(t, 16, stats.OccupancyRate) // 1 of 6 rooms
	assert.Equal(t, 6, stats.TotalRooms)
}

package services

import (
	"testing"
	"time"

	"tourbooking/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func newBookingFixture(t *testing.T) (*fixture, *entity.User, *entity.Tour) {
	f := newFixture(t)
	f.bookings.now = fixedClock(bookingNow)
	u := mustUser(t, f.db, "traveller@example.com", false)
	tour := mustTour(t, f.db, entity.Tour{Name: "Bay Cruise", Price: 1200})
	return f, u, tour
}

func TestBookingService_Create(t *testing.T) {
	f, u, tour := newBookingFixture(t)

	b, err := f.bookings.Create(u.ID, &CreateBookingReq{TourID: tour.ID, TravelDate: "2026-10-20", NumPeople: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(3600), b.TotalPrice)
	assert.Equal(t, entity.BookingPending, b.Status)
	assert.True(t, b.BookingDate.Equal(bookingNow))
	assert.Equal(t, "2026-10-20", b.TravelDate.Format("2006-01-02"))
	assert.Equal(t, []string{"booking.created"}, f.notifier.types())

	mine, err := f.bookings.ListForUser(u.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, b.ID, mine[0].ID)
}

func TestBookingService_CreateValidation(t *testing.T) {
	f, u, tour := newBookingFixture(t)

	tests := []struct {
		name string
		req  CreateBookingReq
		want error
	}{
		{"past travel date", CreateBookingReq{TourID: tour.ID, TravelDate: "2026-10-13", NumPeople: 1}, ErrInvalidInput},
		{"bad date format", CreateBookingReq{TourID: tour.ID, TravelDate: "next week", NumPeople: 1}, ErrInvalidInput},
		{"no people", CreateBookingReq{TourID: tour.ID, TravelDate: "2026-10-20", NumPeople: 0}, ErrInvalidInput},
		{"missing tour", CreateBookingReq{TourID: tour.ID + 10, TravelDate: "2026-10-20", NumPeople: 1}, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.bookings.Create(u.ID, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("today is allowed", func(t *testing.T) {
		_, err := f.bookings.Create(u.ID, &CreateBookingReq{TourID: tour.ID, TravelDate: "2026-10-14", NumPeople: 1})
		assert.NoError(t, err)
	})
}

func TestBookingService_DetailAccess(t *testing.T) {
	f, u, tour := newBookingFixture(t)
	other := mustUser(t, f.db, "other@example.com", false)
	admin := mustUser(t, f.db, "admin@example.com", true)

	b, err := f.bookings.Create(u.ID, &CreateBookingReq{TourID: tour.ID, TravelDate: "2026-11-01", NumPeople: 1})
	require.NoError(t, err)

	_, err = f.bookings.Detail(u.ID, entity.RoleUser, b.ID)
	assert.NoError(t, err)
	_, err = f.bookings.Detail(admin.ID, entity.RoleAdmin, b.ID)
	assert.NoError(t, err)
	_, err = f.bookings.Detail(other.ID, entity.RoleUser, b.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.bookings.Detail(u.ID, entity.RoleUser, b.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingService_Transitions(t *testing.T) {
	f, u, tour := newBookingFixture(t)
	other := mustUser(t, f.db, "other@example.com", false)

	b, err := f.bookings.Create(u.ID, &CreateBookingReq{TourID: tour.ID, TravelDate: "2026-11-01", NumPeople: 2})
	require.NoError(t, err)

	_, err = f.bookings.CancelByUser(other.ID, b.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	confirmed, err := f.bookings.AdminConfirm(b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, confirmed.Status)

	_, err = f.bookings.AdminConfirm(b.ID)
	assert.ErrorIs(t, err, ErrConflict)

	cancelled, err := f.bookings.CancelByUser(u.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingCancelled, cancelled.Status)

	_, err = f.bookings.AdminCancel(b.ID)
	assert.ErrorIs(t, err, ErrConflict)
	_, err = f.bookings.AdminConfirm(b.ID)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.bookings.AdminConfirm(b.ID + 50)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{"booking.created", "booking.confirmed", "booking.cancelled"}, f.notifier.types())
}

func TestBookingService_ListByStatus(t *testing.T) {
	f, u, tour := newBookingFixture(t)
	var ids []uint
	for i := 0; i < 3; i++ {
		b, err := f.bookings.Create(u.ID, &CreateBookingReq{TourID: tour.ID, TravelDate: "2026-12-01", NumPeople: 1})
		require.NoError(t, err)
		ids = append(ids, b.ID)
	}
	_, err := f.bookings.AdminConfirm(ids[0])
	require.NoError(t, err)

	pending, err := f.bookings.List(entity.BookingPending, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pending.Total)

	all, err := f.bookings.List("", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)
	assert.Len(t, all.Items, 2)

	_, err = f.bookings.List("shipped", 1, 20)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBookingService_TodayAllowedWestOfUTC(t *testing.T) {
	f, u, tour := newBookingFixture(t)
	west := time.FixedZone("UTC-5", -5*60*60)
	f.bookings.now = fixedClock(time.Date(2026, 10, 14, 9, 30, 0, 0, west))

	b, err := f.bookings.Create(u.ID, &CreateBookingReq{TourID: tour.ID, TravelDate: "2026-10-14", NumPeople: 1})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-14", b.TravelDate.In(west).Format("2006-01-02"))

	_, err = f.bookings.Create(u.ID, &CreateBookingReq{TourID: tour.ID, TravelDate: "13/10/2026", NumPeople: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

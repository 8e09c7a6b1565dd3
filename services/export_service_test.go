package services

import (
	"bytes"
	"testing"

	"tourbooking/entity"
	"tourbooking/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportService_WriteBookingsXLSX(t *testing.T) {
	f, u, tour := newBookingFixture(t)
	_, err := f.bookings.Create(u.ID, &CreateBookingReq{TourID: tour.ID, TravelDate: "2026-10-20", NumPeople: 2})
	require.NoError(t, err)
	second, err := f.bookings.Create(u.ID, &CreateBookingReq{TourID: tour.ID, TravelDate: "2026-10-21", NumPeople: 1})
	require.NoError(t, err)
	_, err = f.bookings.AdminConfirm(second.ID)
	require.NoError(t, err)

	var buf bytes.Buffer
	svc := NewExportService(repository.NewBookingRepository(f.db))
	require.NoError(t, svc.WriteBookingsXLSX(&buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(bookingSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Booking ID", rows[0][0])
	assert.Equal(t, "Bay Cruise", rows[1][3])
	assert.Equal(t, "traveller@example.com", rows[1][4])
	assert.Equal(t, "2400", rows[1][6])
	assert.Equal(t, string(entity.BookingPending), rows[1][7])
	assert.Equal(t, "2026-10-21", rows[2][2])
	assert.Equal(t, string(entity.BookingConfirmed), rows[2][7])
}

func TestExportService_EmptyHasHeaderOnly(t *testing.T) {
	db := newTestDB(t)
	var buf bytes.Buffer
	require.NoError(t, NewExportService(repository.NewBookingRepository(db)).WriteBookingsXLSX(&buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows(bookingSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

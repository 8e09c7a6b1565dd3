package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"tourbooking/configs"
	"tourbooking/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := configs.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, configs.Migrate(db))
	return db
}

func newReportRepo(t *testing.T, db *gorm.DB) *ReportRepository {
	sqlDB, err := db.DB()
	require.NoError(t, err)
	return NewReportRepository(sqlDB, configs.SQLDriverName("sqlite"))
}

func TestReportRepository_Summary(t *testing.T) {
	db := newTestDB(t)
	u1 := entity.User{Name: "a", Email: "a@example.com"}
	u2 := entity.User{Name: "b", Email: "b@example.com"}
	require.NoError(t, db.Create(&u1).Error)
	require.NoError(t, db.Create(&u2).Error)

	cruise := entity.Tour{Name: "Cruise", Price: 1000, Rating: 4.5}
	trek := entity.Tour{Name: "Trek", Price: 300}
	gone := entity.Tour{Name: "Gone", Price: 1}
	require.NoError(t, db.Create(&cruise).Error)
	require.NoError(t, db.Create(&trek).Error)
	require.NoError(t, db.Create(&gone).Error)
	require.NoError(t, db.Delete(&gone).Error)

	bookings := []entity.Booking{
		{UserID: u1.ID, TourID: cruise.ID, NumPeople: 2, TotalPrice: 2000, Status: entity.BookingConfirmed},
		{UserID: u2.ID, TourID: cruise.ID, NumPeople: 1, TotalPrice: 1000, Status: entity.BookingPending},
		{UserID: u2.ID, TourID: cruise.ID, NumPeople: 1, TotalPrice: 1000, Status: entity.BookingConfirmed},
		{UserID: u1.ID, TourID: trek.ID, NumPeople: 1, TotalPrice: 300, Status: entity.BookingCancelled},
	}
	require.NoError(t, db.Create(&bookings).Error)
	require.NoError(t, db.Create(&entity.Review{UserID: u1.ID, TourID: cruise.ID, Rating: 5}).Error)

	s, err := newReportRepo(t, db).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.TotalUsers)
	assert.Equal(t, int64(2), s.TotalTours)
	assert.Equal(t, int64(4), s.TotalBookings)
	assert.Equal(t, int64(1), s.TotalReviews)
	assert.Equal(t, int64(3000), s.Revenue)
	assert.Equal(t, map[string]int64{"pending": 1, "confirmed": 2, "cancelled": 1}, s.ByStatus)

	require.Len(t, s.TopTours, 1)
	assert.Equal(t, "Cruise", s.TopTours[0].Name)
	assert.Equal(t, int64(3), s.TopTours[0].Bookings)
	assert.InDelta(t, 4.5, s.TopTours[0].Rating, 1e-9)
}

func TestReportRepository_EmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	s, err := newReportRepo(t, db).Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, s.Revenue)
	assert.Zero(t, s.TotalBookings)
	assert.Empty(t, s.TopTours)
	assert.Equal(t, int64(0), s.ByStatus["pending"])
}

func TestReviewRepository_AggregateIgnoresDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	tour := entity.Tour{Name: "Cruise"}
	require.NoError(t, db.Create(&tour).Error)

	r1 := entity.Review{TourID: tour.ID, UserID: 1, Rating: 1}
	r2 := entity.Review{TourID: tour.ID, UserID: 2, Rating: 4}
	require.NoError(t, repo.Create(db, &r1))
	require.NoError(t, repo.Create(db, &r2))

	agg, err := repo.Aggregate(nil, tour.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), agg.Count)
	assert.InDelta(t, 2.5, agg.Avg, 1e-9)

	require.NoError(t, repo.Delete(db, r1.ID))
	agg, err = repo.Aggregate(db, tour.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), agg.Count)
	assert.InDelta(t, 4.0, agg.Avg, 1e-9)
}

func TestBookingRepository_UpdateStatusGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	b := entity.Booking{UserID: 1, TourID: 1, NumPeople: 1, Status: entity.BookingPending}
	require.NoError(t, repo.Create(&b))

	n, err := repo.UpdateStatusGuard(db, b.ID, []entity.BookingStatus{entity.BookingConfirmed}, entity.BookingCancelled)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.UpdateStatusGuard(db, b.ID, []entity.BookingStatus{entity.BookingPending}, entity.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.FindByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, got.Status)
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Summary is the admin dashboard payload.
type Summary struct {
	TotalUsers    int64            `db:"total_users" json:"totalUsers"`
	TotalTours    int64            `db:"total_tours" json:"totalTours"`
	TotalBookings int64            `db:"total_bookings" json:"totalBookings"`
	TotalReviews  int64            `db:"total_reviews" json:"totalReviews"`
	Revenue       int64            `db:"revenue" json:"revenue"`
	ByStatus      map[string]int64 `db:"-" json:"bookingsByStatus"`
	TopTours      []TopTour        `db:"-" json:"topTours"`
}

type TopTour struct {
	ID       uint    `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Bookings int64   `db:"bookings" json:"bookings"`
	Rating   float64 `db:"rating" json:"rating"`
}

type statusCount struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

// ReportRepository runs read-only reporting SQL through sqlx on gorm's pool.
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(sqlDB *sql.DB, driverName string) *ReportRepository {
	return &ReportRepository{db: sqlx.NewDb(sqlDB, driverName)}
}

func (r *ReportRepository) Summary(ctx context.Context) (*Summary, error) {
	var s Summary
	const totalsQuery = `
		SELECT
			(SELECT COUNT(*) FROM users WHERE deleted_at IS NULL) AS total_users,
			(SELECT COUNT(*) FROM tours WHERE deleted_at IS NULL) AS total_tours,
			(SELECT COUNT(*) FROM bookings WHERE deleted_at IS NULL) AS total_bookings,
			(SELECT COUNT(*) FROM reviews WHERE deleted_at IS NULL) AS total_reviews,
			(SELECT COALESCE(SUM(total_price), 0) FROM bookings
				WHERE deleted_at IS NULL AND status = ?) AS revenue
	`
	if err := r.db.GetContext(ctx, &s, r.db.Rebind(totalsQuery), "confirmed"); err != nil {
		return nil, fmt.Errorf("ReportRepository.Summary totals: %w", err)
	}

	var rows []statusCount
	const statusQuery = `
		SELECT status, COUNT(*) AS count
		FROM bookings
		WHERE deleted_at IS NULL
		GROUP BY status
	`
	if err := r.db.SelectContext(ctx, &rows, statusQuery); err != nil {
		return nil, fmt.Errorf("ReportRepository.Summary by status: %w", err)
	}
	s.ByStatus = map[string]int64{"pending": 0, "confirmed": 0, "cancelled": 0}
	for _, row := range rows {
		s.ByStatus[row.Status] = row.Count
	}

	top, err := r.TopTours(ctx, 5)
	if err != nil {
		return nil, err
	}
	s.TopTours = top
	return &s, nil
}

// TopTours ranks tours by non-cancelled bookings.
func (r *ReportRepository) TopTours(ctx context.Context, limit int) ([]TopTour, error) {
	top := []TopTour{}
	const q = `
		SELECT t.id, t.name, t.rating, COUNT(b.id) AS bookings
		FROM tours t
		JOIN bookings b ON b.tour_id = t.id AND b.deleted_at IS NULL AND b.status <> ?
		WHERE t.deleted_at IS NULL
		GROUP BY t.id, t.name, t.rating
		ORDER BY bookings DESC, t.id ASC
		LIMIT ?
	`
	if err := r.db.SelectContext(ctx, &top, r.db.Rebind(q), "cancelled", limit); err != nil {
		return nil, fmt.Errorf("ReportRepository.TopTours: %w", err)
	}
	return top, nil
}

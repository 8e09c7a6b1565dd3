package services

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"tourbooking/configs"
	"tourbooking/entity"
	"tourbooking/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := configs.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, configs.Migrate(db))
	return db
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []BookingEvent
}

func (n *recordingNotifier) PublishBooking(ev BookingEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.events))
	for _, ev := range n.events {
		out = append(out, ev.Type)
	}
	return out
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func mustUser(t *testing.T, db *gorm.DB, email string, admin bool) *entity.User {
	t.Helper()
	u := &entity.User{Name: email, Email: email, Password: "x", IsAdmin: admin}
	require.NoError(t, db.Create(u).Error)
	return u
}

func mustTour(t *testing.T, db *gorm.DB, tour entity.Tour) *entity.Tour {
	t.Helper()
	require.NoError(t, db.Create(&tour).Error)
	return &tour
}

type fixture struct {
	db       *gorm.DB
	notifier *recordingNotifier
	tours    *TourService
	bookings *BookingService
	reviews  *ReviewService
}

func newFixture(t *testing.T) *fixture {
	db := newTestDB(t)
	tourRepo := repository.NewTourRepository(db)
	n := &recordingNotifier{}
	return &fixture{
		db:       db,
		notifier: n,
		tours:    NewTourService(db, tourRepo, repository.NewTourImageRepository(db)),
		bookings: NewBookingService(db, repository.NewBookingRepository(db), tourRepo, n),
		reviews:  NewReviewService(db, repository.NewReviewRepository(db), tourRepo),
	}
}

package services

import (
	"time"

	"tourbooking/entity"
	"tourbooking/repository"

	"gorm.io/gorm"
)

// BookingEvent is pushed to admin subscribers on create and on every status change.
type BookingEvent struct {
	Type    string         `json:"type"` // booking.created | booking.<status>
	Booking entity.Booking `json:"booking"`
	At      time.Time      `json:"at"`
}

type BookingNotifier interface {
	PublishBooking(ev BookingEvent)
}

type noopNotifier struct{}

func (noopNotifier) PublishBooking(BookingEvent) {}

type BookingService struct {
	DB       *gorm.DB
	Repo     *repository.BookingRepository
	TourRepo *repository.TourRepository
	Notifier BookingNotifier

	now func() time.Time
}

func NewBookingService(
	db *gorm.DB,
	repo *repository.BookingRepository,
	tourRepo *repository.TourRepository,
	notifier BookingNotifier,
) *BookingService {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &BookingService{DB: db, Repo: repo, TourRepo: tourRepo, Notifier: notifier, now: time.Now}
}

// ----- DTOs from Controller -----
type CreateBookingReq struct {
	TourID     uint   `json:"tourId" binding:"required"`
	TravelDate string `json:"travelDate" binding:"required"`
	NumPeople  int    `json:"numPeople" binding:"required,min=1"`
}

type BookingPage struct {
	Items []entity.Booking `json:"items"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Total int64            `json:"total"`
}

// parseDateFlexible reads date-only layouts in loc so "today" means the server's calendar day.
func parseDateFlexible(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, l := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.ParseInLocation(l, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalid("travelDate must be YYYY-MM-DD or RFC3339")
}

// ----- Create -----
func (s *BookingService) Create(userID uint, req *CreateBookingReq) (*entity.Booking, error) {
	if req.NumPeople < 1 {
		return nil, invalid("numPeople must be >= 1")
	}
	now := s.now()
	travel, err := parseDateFlexible(req.TravelDate, now.Location())
	if err != nil {
		return nil, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if travel.Before(today) {
		return nil, invalid("travelDate is in the past")
	}

	tour, err := s.TourRepo.FindByID(req.TourID)
	if err != nil {
		return nil, notFound(err, "tour")
	}

	b := &entity.Booking{
		UserID:      userID,
		TourID:      tour.ID,
		BookingDate: now,
		TravelDate:  travel,
		NumPeople:   req.NumPeople,
		TotalPrice:  tour.Price * int64(req.NumPeople),
		Status:      entity.BookingPending,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}
	b.Tour = *tour
	s.publish("booking.created", b)
	return b, nil
}

// ----- List & Detail -----
func (s *BookingService) ListForUser(userID uint) ([]entity.Booking, error) {
	return s.Repo.ListForUser(userID)
}

// Detail returns the booking to its owner or to an admin.
func (s *BookingService) Detail(userID uint, role string, id uint) (*entity.Booking, error) {
	b, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, notFound(err, "booking")
	}
	if b.UserID != userID && role != entity.RoleAdmin {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *BookingService) List(status entity.BookingStatus, page, limit int) (*BookingPage, error) {
	if status != "" && !status.Valid() {
		return nil, invalid("unknown status")
	}
	items, total, err := s.Repo.List(status, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return &BookingPage{Items: items, Page: page, Limit: limit, Total: total}, nil
}

func (s *BookingService) publish(kind string, b *entity.Booking) {
	s.Notifier.PublishBooking(BookingEvent{Type: kind, Booking: *b, At: s.now()})
}

package services

import (
	"fmt"
	"strings"

	"tourbooking/entity"
	"tourbooking/repository"

	"gorm.io/gorm"
)

// ReviewService keeps Tour.Rating/ReviewCount in step with the reviews table.
type ReviewService struct {
	DB       *gorm.DB
	Repo     *repository.ReviewRepository
	TourRepo *repository.TourRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, tourRepo *repository.TourRepository) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, TourRepo: tourRepo}
}

type CreateReviewReq struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type TourReviews struct {
	Items     []entity.Review      `json:"items"`
	Aggregate repository.Aggregate `json:"aggregate"`
}

// Create inserts the review then recalculates the tour average in the same transaction.
func (s *ReviewService) Create(userID, tourID uint, req *CreateReviewReq) (*entity.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, invalid("rating must be between 1 and 5")
	}
	rev := &entity.Review{
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
		UserID:  userID,
		TourID:  tourID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entity.Tour{}).Where("id = ?", tourID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return notFoundErr("tour")
		}
		if err := s.Repo.Create(tx, rev); err != nil {
			return fmt.Errorf("ReviewService.Create: insert: %w", err)
		}
		return s.recalc(tx, tourID)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

// Delete ลบรีวิว (เจ้าของหรือ admin) แล้วคำนวณ rating ใหม่
func (s *ReviewService) Delete(userID uint, role string, reviewID uint) error {
	rev, err := s.Repo.FindByID(reviewID)
	if err != nil {
		return notFound(err, "review")
	}
	if rev.UserID != userID && role != entity.RoleAdmin {
		return ErrForbidden
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Delete(tx, rev.ID); err != nil {
			return err
		}
		return s.recalc(tx, rev.TourID)
	})
}

func (s *ReviewService) recalc(tx *gorm.DB, tourID uint) error {
	agg, err := s.Repo.Aggregate(tx, tourID)
	if err != nil {
		return fmt.Errorf("ReviewService.recalc: aggregate: %w", err)
	}
	if err := s.TourRepo.UpdateAggregate(tx, tourID, agg.Avg, agg.Count); err != nil {
		return fmt.Errorf("ReviewService.recalc: update tour: %w", err)
	}
	return nil
}

func (s *ReviewService) ListForTour(tourID uint, limit, offset int) (*TourReviews, error) {
	ok, err := s.TourRepo.Exists(tourID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, notFoundErr("tour")
	}
	items, err := s.Repo.ListForTour(tourID, limit, offset)
	if err != nil {
		return nil, err
	}
	agg, err := s.Repo.Aggregate(nil, tourID)
	if err != nil {
		return nil, err
	}
	return &TourReviews{Items: items, Aggregate: agg}, nil
}

func (s *ReviewService) ListForUser(userID uint, limit, offset int) ([]entity.Review, error) {
	return s.Repo.ListForUser(userID, limit, offset)
}

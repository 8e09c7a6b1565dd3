package repository

import (
	"tourbooking/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

// Aggregate is the rating summary of one tour.
type Aggregate struct {
	Avg   float64 `json:"avgRating"`
	Count int64   `json:"total"`
}

func (r *ReviewRepository) Create(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var rev entity.Review
	if err := r.DB.First(&rev, id).Error; err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Review{}, id).Error
}

func (r *ReviewRepository) ListForTour(tourID uint, limit, offset int) ([]entity.Review, error) {
	reviews := []entity.Review{}
	err := r.DB.Where("tour_id = ?", tourID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListForUser(userID uint, limit, offset int) ([]entity.Review, error) {
	reviews := []entity.Review{}
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

// Aggregate คำนวณ AVG/COUNT ของรีวิวทัวร์ (ส่ง tx มาเมื่ออยู่ใน transaction)
func (r *ReviewRepository) Aggregate(tx *gorm.DB, tourID uint) (Aggregate, error) {
	if tx == nil {
		tx = r.DB
	}
	var a Aggregate
	err := tx.Model(&entity.Review{}).
		Where("tour_id = ?", tourID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&a).Error
	return a, err
}

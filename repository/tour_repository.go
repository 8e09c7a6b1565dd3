package repository

import (
	"strings"

	"tourbooking/entity"

	"gorm.io/gorm"
)

// TourFilter holds the optional catalogue search criteria. Zero values mean "no filter".
type TourFilter struct {
	Query         string
	Location      string
	DestinationID uint
	MinPrice      *int64
	MaxPrice      *int64
	MinRating     float64
	Featured      *bool
	Sort          string
	Limit         int
	Offset        int
}

type TourRepository struct {
	DB *gorm.DB
}

func NewTourRepository(db *gorm.DB) *TourRepository {
	return &TourRepository{DB: db}
}

func (r *TourRepository) applyFilter(q *gorm.DB, f TourFilter) *gorm.DB {
	if kw := strings.TrimSpace(f.Query); kw != "" {
		like := "%" + strings.ToLower(kw) + "%"
		q = q.Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?)", like, like, like)
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(loc)+"%")
	}
	if f.DestinationID > 0 {
		q = q.Where("destination_id = ?", f.DestinationID)
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.MinRating > 0 {
		q = q.Where("rating >= ?", f.MinRating)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	return q
}

func sortClause(sort string) string {
	switch sort {
	case "price_asc":
		return "price ASC, id ASC"
	case "price_desc":
		return "price DESC, id DESC"
	case "rating":
		return "rating DESC, review_count DESC, id DESC"
	default:
		return "created_at DESC, id DESC"
	}
}

// Search ค้นหาทัวร์ตาม filter พร้อมจำนวนทั้งหมด (ก่อน limit)
func (r *TourRepository) Search(f TourFilter) ([]entity.Tour, int64, error) {
	var total int64
	if err := r.applyFilter(r.DB.Model(&entity.Tour{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tours := []entity.Tour{}
	q := r.applyFilter(r.DB.Model(&entity.Tour{}), f).Order(sortClause(f.Sort))
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	if err := q.Find(&tours).Error; err != nil {
		return nil, 0, err
	}
	return tours, total, nil
}

func (r *TourRepository) Featured(limit int) ([]entity.Tour, error) {
	tours := []entity.Tour{}
	err := r.DB.Where("featured = ?", true).
		Order("rating DESC, id DESC").
		Limit(limit).
		Find(&tours).Error
	return tours, err
}

func (r *TourRepository) FindByID(id uint) (*entity.Tour, error) {
	var tour entity.Tour
	if err := r.DB.Preload("Images").First(&tour, id).Error; err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *TourRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&entity.Tour{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TourRepository) Create(tour *entity.Tour) error {
	return r.DB.Create(tour).Error
}

// editableColumns excludes rating/review_count, which only UpdateAggregate writes.
var editableColumns = []string{"name", "description", "price", "duration", "location", "featured", "destination_id"}

// Save writes the editable columns of an existing tour, zero values included.
func (r *TourRepository) Save(tour *entity.Tour) error {
	return r.DB.Model(tour).Select(editableColumns).Updates(tour).Error
}

func (r *TourRepository) Delete(tx *gorm.DB, id uint) (int64, error) {
	res := tx.Delete(&entity.Tour{}, id)
	return res.RowsAffected, res.Error
}

func (r *TourRepository) CountByDestination(destinationID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Tour{}).Where("destination_id = ?", destinationID).Count(&count).Error
	return count, err
}

// UpdateAggregate เขียน rating/review_count ใหม่ให้ทัวร์ (ใช้ภายใน transaction)
func (r *TourRepository) UpdateAggregate(tx *gorm.DB, tourID uint, avg float64, count int64) error {
	return tx.Model(&entity.Tour{}).Where("id = ?", tourID).
		Updates(map[string]any{"rating": avg, "review_count": count}).Error
}

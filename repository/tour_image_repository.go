package repository

import (
	"tourbooking/entity"

	"gorm.io/gorm"
)

type TourImageRepository struct {
	DB *gorm.DB
}

func NewTourImageRepository(db *gorm.DB) *TourImageRepository {
	return &TourImageRepository{DB: db}
}

func (r *TourImageRepository) ListByTour(tourID uint) ([]entity.TourImage, error) {
	images := []entity.TourImage{}
	err := r.DB.Where("tour_id = ?", tourID).Order("id ASC").Find(&images).Error
	return images, err
}

func (r *TourImageRepository) Create(img *entity.TourImage) error {
	return r.DB.Create(img).Error
}

func (r *TourImageRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.TourImage{}, id)
	return res.RowsAffected, res.Error
}

func (r *TourImageRepository) DeleteByTour(tx *gorm.DB, tourID uint) error {
	return tx.Where("tour_id = ?", tourID).Delete(&entity.TourImage{}).Error
}

package repository

import (
	"tourbooking/entity"

	"gorm.io/gorm"
)

type DestinationRepository struct {
	DB *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{DB: db}
}

func (r *DestinationRepository) FindAll() ([]entity.Destination, error) {
	dests := []entity.Destination{}
	err := r.DB.Order("province ASC, name ASC").Find(&dests).Error
	return dests, err
}

// FindByID preloads the tours of the destination.
func (r *DestinationRepository) FindByID(id uint) (*entity.Destination, error) {
	var dest entity.Destination
	if err := r.DB.Preload("Tours").First(&dest, id).Error; err != nil {
		return nil, err
	}
	return &dest, nil
}

func (r *DestinationRepository) Create(dest *entity.Destination) error {
	return r.DB.Create(dest).Error
}

func (r *DestinationRepository) Save(dest *entity.Destination) error {
	return r.DB.Omit("Tours").Save(dest).Error
}

func (r *DestinationRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Destination{}, id)
	return res.RowsAffected, res.Error
}

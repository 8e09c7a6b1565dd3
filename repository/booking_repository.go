package repository

import (
	"tourbooking/entity"

	"gorm.io/gorm"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) Create(b *entity.Booking) error {
	return r.DB.Create(b).Error
}

func (r *BookingRepository) FindByID(id uint) (*entity.Booking, error) {
	var b entity.Booking
	if err := r.DB.Preload("Tour").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListForUser(userID uint) ([]entity.Booking, error) {
	bookings := []entity.Booking{}
	err := r.DB.Preload("Tour").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&bookings).Error
	return bookings, err
}

// List ใช้ฝั่ง admin (status ว่าง = ทั้งหมด)
func (r *BookingRepository) List(status entity.BookingStatus, limit, offset int) ([]entity.Booking, int64, error) {
	q := r.DB.Model(&entity.Booking{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	bookings := []entity.Booking{}
	q = r.DB.Preload("Tour").Preload("User")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("id DESC").Limit(limit).Offset(offset).Find(&bookings).Error
	return bookings, total, err
}

// ListAll loads every booking with tour and user for exports.
func (r *BookingRepository) ListAll() ([]entity.Booking, error) {
	bookings := []entity.Booking{}
	err := r.DB.Preload("Tour").Preload("User").Order("id ASC").Find(&bookings).Error
	return bookings, err
}

// UpdateStatusGuard moves a booking to `to` only while its status is one of `from`.
// Returns rows affected; 0 means the booking was missing or in another state.
func (r *BookingRepository) UpdateStatusGuard(tx *gorm.DB, id uint, from []entity.BookingStatus, to entity.BookingStatus) (int64, error) {
	res := tx.Model(&entity.Booking{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

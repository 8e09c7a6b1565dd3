package repository

import (
	"tourbooking/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(p *entity.Payment) error {
	return r.DB.Create(p).Error
}

func (r *PaymentRepository) FindByTxnRef(txnRef string) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Preload("Booking").Where("txn_ref = ?", txnRef).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindPendingByBooking returns the open checkout of a booking, if any.
func (r *PaymentRepository) FindPendingByBooking(bookingID uint) (*entity.Payment, error) {
	var p entity.Payment
	err := r.DB.Where("booking_id = ? AND status = ?", bookingID, entity.PaymentPending).
		Order("id DESC").First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Settle moves a pending payment to status; 0 rows means it was already settled.
func (r *PaymentRepository) Settle(tx *gorm.DB, id uint, status entity.PaymentStatus, updates map[string]any) (int64, error) {
	cols := map[string]any{"status": status}
	for k, v := range updates {
		cols[k] = v
	}
	res := tx.Model(&entity.Payment{}).
		Where("id = ? AND status = ?", id, entity.PaymentPending).
		Updates(cols)
	return res.RowsAffected, res.Error
}

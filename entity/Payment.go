package entity

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	Amount   int64         `json:"amount"`
	TxnRef   string        `gorm:"size:64;uniqueIndex;not null" json:"txnRef"`
	Provider string        `json:"provider"`
	Status   PaymentStatus `gorm:"size:20;index;not null;default:pending" json:"status"`
	PaidAt   *time.Time    `json:"paidAt,omitempty"`

	BookingID uint    `gorm:"index" json:"bookingId"`
	Booking   Booking `json:"-"` // preload เฉพาะตอน callback
}

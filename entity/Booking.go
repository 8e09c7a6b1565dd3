package entity

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	gorm.Model
	BookingDate time.Time     `json:"bookingDate"`
	TravelDate  time.Time     `json:"travelDate"`
	NumPeople   int           `gorm:"not null" json:"numPeople"`
	TotalPrice  int64         `gorm:"not null" json:"totalPrice"`
	Status      BookingStatus `gorm:"size:20;index;not null;default:pending" json:"status"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	TourID uint `gorm:"index" json:"tourId"`
	Tour   Tour `json:"-"` // preload เมื่อจำเป็น

	Payments []Payment `json:"-"`
}

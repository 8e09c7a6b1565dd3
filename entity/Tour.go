package entity

import (
	"gorm.io/gorm"
)

type Tour struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       int64   `gorm:"index" json:"price"`
	Duration    string  `json:"duration"` // free text e.g. "3 days 2 nights"
	Location    string  `gorm:"index" json:"location"`
	Rating      float64 `gorm:"not null;default:0" json:"rating"`
	ReviewCount int     `gorm:"not null;default:0" json:"reviewCount"`
	Featured    bool    `gorm:"index;not null;default:false" json:"featured"`

	DestinationID *uint        `gorm:"index" json:"destinationId,omitempty"`
	Destination   *Destination `json:"-"`

	// preload เฉพาะตอน detail
	Images   []TourImage `json:"images,omitempty"`
	Bookings []Booking   `json:"-"`
	Reviews  []Review    `json:"-"`
}

package entity

import (
	"gorm.io/gorm"
)

type TourImage struct {
	gorm.Model
	TourID uint   `gorm:"index;not null" json:"tourId"`
	Tour   Tour   `json:"-"`
	URL    string `gorm:"not null" json:"url"`
}

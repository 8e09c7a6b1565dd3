package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`
	TourID uint `gorm:"index" json:"tourId"`
	Tour   Tour `json:"-"`
}

package entity

import (
	"gorm.io/gorm"
)

type Destination struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Province string `gorm:"index" json:"province"`

	Tours []Tour `json:"tours,omitempty"`
}

package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash
	Phone    string `json:"phone"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"isAdmin"`

	// Relations — preload เฉพาะตอนจำเป็น
	Bookings []Booking `json:"-"`
	Reviews  []Review  `json:"-"`
}

// Role is the JWT role derived from the admin flag.
func (u *User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

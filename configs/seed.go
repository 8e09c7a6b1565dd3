package configs

import (
	"log"
	"strings"

	"tourbooking/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// สร้าง admin ครั้งแรก
func SeedAdmin(database *gorm.DB, email, pass string) error {
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := database.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️ admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Admin",
		Email:    email,
		Password: string(hash),
		IsAdmin:  true,
	}
	return database.Create(&admin).Error
}

type seedTour struct {
	tour   entity.Tour
	dest   int
	images []string
}

// SeedDemo inserts the demo catalogue when no tour exists yet.
func SeedDemo(database *gorm.DB) error {
	var count int64
	if err := database.Model(&entity.Tour{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	dests := []entity.Destination{
		{Name: "Ha Long Bay", Province: "Quang Ninh"},
		{Name: "Hoi An Ancient Town", Province: "Quang Nam"},
		{Name: "Sa Pa", Province: "Lao Cai"},
	}
	tours := []seedTour{
		{
			tour: entity.Tour{
				Name:        "Ha Long Bay Overnight Cruise",
				Description: "Two days among the limestone karsts with kayaking and a cave visit.",
				Price:       3500000,
				Duration:    "2 days 1 night",
				Location:    "Ha Long, Quang Ninh",
				Featured:    true,
			},
			dest:   0,
			images: []string{"/images/halong-1.jpg", "/images/halong-2.jpg"},
		},
		{
			tour: entity.Tour{
				Name:        "Hoi An Lantern Walk",
				Description: "Evening walking tour of the old town with a lantern-making workshop.",
				Price:       650000,
				Duration:    "4 hours",
				Location:    "Hoi An, Quang Nam",
				Featured:    true,
			},
			dest:   1,
			images: []string{"/images/hoian-1.jpg"},
		},
		{
			tour: entity.Tour{
				Name:        "Sa Pa Rice Terrace Trek",
				Description: "Guided trek through Muong Hoa valley with a homestay night.",
				Price:       2200000,
				Duration:    "3 days 2 nights",
				Location:    "Sa Pa, Lao Cai",
			},
			dest:   2,
			images: []string{"/images/sapa-1.jpg"},
		},
	}

	err := database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&dests).Error; err != nil {
			return err
		}
		for _, st := range tours {
			t := st.tour
			t.DestinationID = &dests[st.dest].ID
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
			for _, url := range st.images {
				if err := tx.Create(&entity.TourImage{TourID: t.ID, URL: url}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Println("✅ Demo tours seeded")
	return nil
}

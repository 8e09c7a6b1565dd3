package configs

import (
	"fmt"
	"log"
	"os"
	"time"

	"tourbooking/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// GORM logger: ตัด record-not-found logs
func newGormLogger() gormLogger.Interface {
	return gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

// Open returns a gorm connection for the given driver ("sqlite" or "postgres").
func Open(driver, source string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite", "sqlite3", "":
		dialector = sqlite.Open(source)
	case "postgres":
		dialector = postgres.Open(source)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	return gorm.Open(dialector, &gorm.Config{Logger: newGormLogger()})
}

func ConnectionDB(cfg *Config) {
	database, err := Open(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	log.Printf("✅ Connected to %s", cfg.DBDriver)
	db = database
}

// SQLDriverName maps DB_DRIVER to the database/sql driver name gorm registered.
func SQLDriverName(driver string) string {
	if driver == "postgres" {
		return "pgx"
	}
	return "sqlite3"
}

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&entity.User{},
		&entity.Destination{}, &entity.Tour{}, &entity.TourImage{},
		&entity.Booking{}, &entity.Payment{},
		&entity.Review{},
	)
}

func SetupDatabase() {
	if err := Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}

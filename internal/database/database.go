package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"workboard/internal/config"
	"workboard/internal/repository"
)

var DB *gorm.DB

// Connect opens the sqlite database file that backs state persistence. A
// local file plays the role browser local storage played for the UI build:
// durable, single-user, no server.
func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	return nil
}

func Migrate() error {
	if err := DB.AutoMigrate(&repository.StateRecord{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}

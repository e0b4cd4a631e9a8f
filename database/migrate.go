package database

import (
	"fmt"

	"homeserve_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.ServiceCategory{},
		&models.User{},
		&models.Provider{},
		&models.Booking{},
		&models.Review{},
		&models.Session{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}

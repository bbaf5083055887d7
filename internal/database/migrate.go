package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/larder/backend/internal/models"
)

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

package database

import (
	"fmt"

	"github.com/pourtrait/pourtrait-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection used by the drink store.
func Connect(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// Migrate bootstraps the GeneratedDrinks and VoteAudit tables. AutoMigrate is
// idempotent, so running it on every boot is the schema "ensure" step.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.GeneratedDrink{}, &models.VoteAudit{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

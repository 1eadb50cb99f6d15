package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Stashed/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.Profile{},
		&models.Container{},
		&models.Category{},
		&models.Item{},
		&models.Image{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

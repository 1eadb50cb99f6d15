package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"Stashed/internal/models"
	"Stashed/internal/repository"
)

func setupServiceDB(t *testing.T) *gorm.DB {
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

func newTestLogService() LogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return LogService{Log: log}
}

// fakeBlobStore records saves and deletes so tests can assert on blob
// lifecycle without touching the filesystem.
type fakeBlobStore struct {
	mu      sync.Mutex
	saves   []string
	deletes []string
	saveErr error
}

func (f *fakeBlobStore) Save(_ context.Context, ownerID uint, filename string, content io.Reader, _ int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	if _, err := io.Copy(io.Discard, content); err != nil {
		return "", err
	}
	path := fmt.Sprintf("%d/%d-%s", ownerID, len(f.saves)+1, filename)
	f.saves = append(f.saves, path)
	return path, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, storagePath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, storagePath)
	return nil
}

// seedTenantData creates a container and category for an owner, the minimum
// an item needs to exist.
func seedTenantData(t *testing.T, db *gorm.DB, ownerID uint) (*models.Container, *models.Category) {
	t.Helper()
	container := &models.Container{OwnerID: ownerID, Name: "Garage"}
	if err := repository.NewContainerRepository(db).Create(context.Background(), container); err != nil {
		t.Fatalf("seed container: %v", err)
	}
	category := &models.Category{OwnerID: ownerID, Name: "Tools"}
	if err := repository.NewCategoryRepository(db).Create(context.Background(), category); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return container, category
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"Stashed/internal/models"
)

type ProfileRepository interface {
	FindOrCreateBySubject(ctx context.Context, subject string) (*models.Profile, error)
	DeleteCascade(ctx context.Context, ownerID uint) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// FindOrCreateBySubject resolves the tenant row for an external subject,
// creating it on first authenticated access.
func (r *ProfileRepositoryImpl) FindOrCreateBySubject(ctx context.Context, subject string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).
		Where(models.Profile{Subject: subject}).
		FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteCascade removes the profile and every row it owns, in dependency
// order so the RESTRICT foreign keys never fire. Mirrors the identity
// provider's account deletion.
func (r *ProfileRepositoryImpl) DeleteCascade(ctx context.Context, ownerID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", ownerID).Delete(&models.Image{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", ownerID).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", ownerID).Delete(&models.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", ownerID).Delete(&models.Container{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Profile{}, ownerID).Error
	})
}

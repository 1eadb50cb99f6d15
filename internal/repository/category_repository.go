package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"Stashed/internal/apperrors"
	"Stashed/internal/models"
)

type CategoryRepository interface {
	OwnedRepository[models.Category]
	List(ctx context.Context, ownerID uint, opts ListOptions) ([]models.Category, error)
	NamesByID(ctx context.Context, ownerID uint, ids []uint) (map[uint]string, error)
	FindByNameKey(ctx context.Context, ownerID uint, name string, excludeID uint) (*models.Category, error)
	DeleteGuarded(ctx context.Context, ownerID, id uint) error
}

type CategoryRepositoryImpl struct {
	OwnedRepository[models.Category]
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{
		OwnedRepository: NewGenericRepository[models.Category](db),
		db:              db,
	}
}

func (r *CategoryRepositoryImpl) List(ctx context.Context, ownerID uint, opts ListOptions) ([]models.Category, error) {
	var categories []models.Category
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if opts.NameContains != "" {
		query = query.Where("name LIKE ?", "%"+opts.NameContains+"%")
	}
	query = query.Order(orderClause(opts))
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepositoryImpl) NamesByID(ctx context.Context, ownerID uint, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		names[category.ID] = category.Name
	}
	return names, nil
}

// FindByNameKey resolves a category by the canonical form of name, skipping
// excludeID so an update does not collide with itself. Returns nil when no
// match exists.
func (r *CategoryRepositoryImpl) FindByNameKey(ctx context.Context, ownerID uint, name string, excludeID uint) (*models.Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	var category models.Category
	query := r.db.WithContext(ctx).Where("owner_id = ? AND name_key = ?", ownerID, key)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteGuarded mirrors the container delete path: dependent-item count and
// removal in a single transaction, RESTRICT foreign key as backstop.
func (r *CategoryRepositoryImpl) DeleteGuarded(ctx context.Context, ownerID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("owner_id = ?", ownerID).First(&category, id).Error; err != nil {
			return err
		}
		count, err := countDependentItems(tx, ownerID, "category_id", id)
		if err != nil {
			return err
		}
		if count > 0 {
			return &apperrors.ConflictError{
				Reason: apperrors.ReasonHasDependents,
				Name:   category.Name,
				Count:  count,
			}
		}
		return tx.Delete(&models.Category{}, category.ID).Error
	})
}

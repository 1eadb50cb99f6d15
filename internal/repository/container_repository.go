package repository

import (
	"context"

	"gorm.io/gorm"

	"Stashed/internal/apperrors"
	"Stashed/internal/models"
)

type ContainerRepository interface {
	OwnedRepository[models.Container]
	List(ctx context.Context, ownerID uint, opts ListOptions) ([]models.Container, error)
	NamesByID(ctx context.Context, ownerID uint, ids []uint) (map[uint]string, error)
	DeleteGuarded(ctx context.Context, ownerID, id uint) error
}

type ContainerRepositoryImpl struct {
	OwnedRepository[models.Container]
	db *gorm.DB
}

func NewContainerRepository(db *gorm.DB) ContainerRepository {
	return &ContainerRepositoryImpl{
		OwnedRepository: NewGenericRepository[models.Container](db),
		db:              db,
	}
}

func (r *ContainerRepositoryImpl) List(ctx context.Context, ownerID uint, opts ListOptions) ([]models.Container, error) {
	var containers []models.Container
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if opts.NameContains != "" {
		query = query.Where("name LIKE ?", "%"+opts.NameContains+"%")
	}
	query = query.Order(orderClause(opts))
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	if err := query.Find(&containers).Error; err != nil {
		return nil, err
	}
	return containers, nil
}

func (r *ContainerRepositoryImpl) NamesByID(ctx context.Context, ownerID uint, ids []uint) (map[uint]string, error) {
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var containers []models.Container
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("owner_id = ? AND id IN ?", ownerID, ids).
		Find(&containers).Error
	if err != nil {
		return nil, err
	}
	for _, container := range containers {
		names[container.ID] = container.Name
	}
	return names, nil
}

// DeleteGuarded removes a container unless items still reference it. The
// dependent count and the delete run in one transaction so a concurrent item
// creation cannot slip between check and removal; the RESTRICT foreign key
// is the storage-level backstop. Image metadata for the container is removed
// in the same transaction.
func (r *ContainerRepositoryImpl) DeleteGuarded(ctx context.Context, ownerID, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var container models.Container
		if err := tx.Where("owner_id = ?", ownerID).First(&container, id).Error; err != nil {
			return err
		}
		count, err := countDependentItems(tx, ownerID, "container_id", id)
		if err != nil {
			return err
		}
		if count > 0 {
			return &apperrors.ConflictError{
				Reason: apperrors.ReasonHasDependents,
				Name:   container.Name,
				Count:  count,
			}
		}
		if err := deleteImagesForParent(tx, ownerID, models.KindContainer, id); err != nil {
			return err
		}
		return tx.Delete(&models.Container{}, container.ID).Error
	})
}

// countDependentItems is the referential-integrity check shared by the
// container and category delete paths.
func countDependentItems(tx *gorm.DB, ownerID uint, column string, id uint) (int64, error) {
	var count int64
	err := tx.Model(&models.Item{}).
		Where("owner_id = ? AND "+column+" = ?", ownerID, id).
		Count(&count).Error
	return count, err
}

func deleteImagesForParent(tx *gorm.DB, ownerID uint, kind models.ParentKind, parentID uint) error {
	return tx.Where("owner_id = ? AND parent_kind = ? AND parent_id = ?", ownerID, kind, parentID).
		Delete(&models.Image{}).Error
}

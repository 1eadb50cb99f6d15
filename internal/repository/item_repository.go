package repository

import (
	"context"

	"gorm.io/gorm"

	"Stashed/internal/models"
)

type ItemRepository interface {
	OwnedRepository[models.Item]
	List(ctx context.Context, ownerID uint, opts ListOptions) ([]models.Item, error)
	CountCheckedOut(ctx context.Context, ownerID uint) (int64, error)
	Recent(ctx context.Context, ownerID uint, limit int) ([]models.Item, error)
	DeleteCascade(ctx context.Context, ownerID, id uint) ([]models.Image, error)
}

type ItemRepositoryImpl struct {
	OwnedRepository[models.Item]
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &ItemRepositoryImpl{
		OwnedRepository: NewGenericRepository[models.Item](db),
		db:              db,
	}
}

func (r *ItemRepositoryImpl) List(ctx context.Context, ownerID uint, opts ListOptions) ([]models.Item, error) {
	var items []models.Item
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if opts.NameContains != "" {
		query = query.Where("name LIKE ?", "%"+opts.NameContains+"%")
	}
	if opts.CategoryID != nil {
		query = query.Where("category_id = ?", *opts.CategoryID)
	}
	if opts.ContainerID != nil {
		query = query.Where("container_id = ?", *opts.ContainerID)
	}
	if opts.IsIn != nil {
		query = query.Where("is_in = ?", *opts.IsIn)
	}
	query = query.Order(orderClause(opts))
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit).Offset(opts.Offset)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepositoryImpl) CountCheckedOut(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Item{}).
		Where("owner_id = ? AND is_in = ?", ownerID, false).
		Count(&count).Error
	return count, err
}

// Recent returns the newest items for the owner, ties on created_at broken
// by id descending so the feed is deterministic.
func (r *ItemRepositoryImpl) Recent(ctx context.Context, ownerID uint, limit int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteCascade removes an item together with its image metadata and returns
// the removed image rows so the caller can drop their blobs. The rows are
// read inside the delete transaction, so an attach racing the delete either
// lands before it and is in the returned set, or loses the parent and is
// left for the janitor.
func (r *ItemRepositoryImpl) DeleteCascade(ctx context.Context, ownerID, id uint) ([]models.Image, error) {
	var images []models.Image
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.Where("owner_id = ?", ownerID).First(&item, id).Error; err != nil {
			return err
		}
		err := tx.Where("owner_id = ? AND parent_kind = ? AND parent_id = ?", ownerID, models.KindItem, item.ID).
			Find(&images).Error
		if err != nil {
			return err
		}
		if err := deleteImagesForParent(tx, ownerID, models.KindItem, item.ID); err != nil {
			return err
		}
		return tx.Delete(&models.Item{}, item.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Stashed/internal/apperrors"
	"Stashed/internal/models"
)

// slotOffset shifts display orders out of the 1..5 band during a reorder so
// the unique slot index never sees an intermediate duplicate.
const slotOffset = models.MaxImagesPerParent

// maxSlotRetries bounds how often an attach recomputes its slot after losing
// a race on the unique index.
const maxSlotRetries = models.MaxImagesPerParent

type ImageRepository interface {
	Attach(ctx context.Context, image *models.Image) error
	ListForParent(ctx context.Context, ownerID uint, kind models.ParentKind, parentID uint) ([]models.Image, error)
	Reorder(ctx context.Context, ownerID uint, kind models.ParentKind, parentID uint, orders map[uint]int) error
	Detach(ctx context.Context, ownerID uint, kind models.ParentKind, parentID, imageID uint) (*models.Image, error)
	ThumbnailsFor(ctx context.Context, ownerID uint, kind models.ParentKind, parentIDs []uint) (map[uint]string, error)
	FindOrphans(ctx context.Context) ([]models.Image, error)
	Remove(ctx context.Context, id uint) error
}

type ImageRepositoryImpl struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &ImageRepositoryImpl{db: db}
}

// Attach inserts image metadata into the lowest free display slot of its
// parent. The count and the insert run in one transaction; the composite
// unique index is the authoritative guard, so when two attaches race for the
// same slot the loser recounts and takes the next free one. The cap can
// never be exceeded because a full parent always recounts to 5.
func (r *ImageRepositoryImpl) Attach(ctx context.Context, image *models.Image) error {
	for attempt := 0; attempt < maxSlotRetries; attempt++ {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var taken []int
			err := tx.Model(&models.Image{}).
				Where("parent_kind = ? AND parent_id = ?", image.ParentKind, image.ParentID).
				Order("display_order").
				Pluck("display_order", &taken).Error
			if err != nil {
				return err
			}
			if len(taken) >= models.MaxImagesPerParent {
				return &apperrors.ConflictError{
					Reason: apperrors.ReasonAttachmentLimit,
					Count:  models.MaxImagesPerParent,
				}
			}
			image.ID = 0
			image.DisplayOrder = lowestFreeSlot(taken)
			return tx.Create(image).Error
		})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return err
	}
	return &apperrors.ConflictError{
		Reason: apperrors.ReasonAttachmentLimit,
		Count:  models.MaxImagesPerParent,
	}
}

func lowestFreeSlot(taken []int) int {
	used := make(map[int]bool, len(taken))
	for _, slot := range taken {
		used[slot] = true
	}
	for slot := 1; slot <= models.MaxImagesPerParent; slot++ {
		if !used[slot] {
			return slot
		}
	}
	return models.MaxImagesPerParent
}

func (r *ImageRepositoryImpl) ListForParent(ctx context.Context, ownerID uint, kind models.ParentKind, parentID uint) ([]models.Image, error) {
	var images []models.Image
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND parent_kind = ? AND parent_id = ?", ownerID, kind, parentID).
		Order("display_order ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

// Reorder applies a full permutation of the parent's current attachment ids
// onto display orders 1..N. The set must match the current attachments
// exactly. Renumbering goes through an offset band first so the unique slot
// index holds at every statement.
func (r *ImageRepositoryImpl) Reorder(ctx context.Context, ownerID uint, kind models.ParentKind, parentID uint, orders map[uint]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.Image
		err := tx.Where("owner_id = ? AND parent_kind = ? AND parent_id = ?", ownerID, kind, parentID).
			Find(&existing).Error
		if err != nil {
			return err
		}
		if len(existing) == 0 || len(existing) != len(orders) {
			return &apperrors.InvalidReferenceError{Field: "images"}
		}
		seen := make(map[int]bool, len(orders))
		for _, image := range existing {
			slot, ok := orders[image.ID]
			if !ok || slot < 1 || slot > len(existing) || seen[slot] {
				return &apperrors.InvalidReferenceError{Field: "images"}
			}
			seen[slot] = true
		}
		for _, image := range existing {
			err := tx.Model(&models.Image{}).Where("id = ?", image.ID).
				Update("display_order", orders[image.ID]+slotOffset).Error
			if err != nil {
				return err
			}
		}
		for _, image := range existing {
			err := tx.Model(&models.Image{}).Where("id = ?", image.ID).
				Update("display_order", orders[image.ID]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Detach removes one attachment and returns it so the caller can drop the
// blob. Gaps left by the removal stay until the next reorder, with one
// exception: slot 1 is the thumbnail, so when it empties while other
// attachments remain, the lowest-ordered survivor is promoted into it.
func (r *ImageRepositoryImpl) Detach(ctx context.Context, ownerID uint, kind models.ParentKind, parentID, imageID uint) (*models.Image, error) {
	var detached models.Image
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("owner_id = ? AND parent_kind = ? AND parent_id = ?", ownerID, kind, parentID).
			First(&detached, imageID).Error
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.Image{}, detached.ID).Error; err != nil {
			return err
		}
		if detached.DisplayOrder != 1 {
			return nil
		}
		var next models.Image
		err = tx.Where("parent_kind = ? AND parent_id = ?", kind, parentID).
			Order("display_order ASC").
			First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&models.Image{}).Where("id = ?", next.ID).
			Update("display_order", 1).Error
	})
	if err != nil {
		return nil, err
	}
	return &detached, nil
}

// ThumbnailsFor returns the slot-1 storage path per parent id, for parents
// that have one.
func (r *ImageRepositoryImpl) ThumbnailsFor(ctx context.Context, ownerID uint, kind models.ParentKind, parentIDs []uint) (map[uint]string, error) {
	thumbnails := make(map[uint]string, len(parentIDs))
	if len(parentIDs) == 0 {
		return thumbnails, nil
	}
	var images []models.Image
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND parent_kind = ? AND display_order = 1 AND parent_id IN ?", ownerID, kind, parentIDs).
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	for _, image := range images {
		thumbnails[image.ParentID] = image.StoragePath
	}
	return thumbnails, nil
}

// FindOrphans returns image rows whose parent row no longer exists. The
// polymorphic parent has no foreign key, so a crash between a parent delete
// and its image cascade can leave these behind.
func (r *ImageRepositoryImpl) FindOrphans(ctx context.Context) ([]models.Image, error) {
	var orphans []models.Image
	itemIDs := r.db.Model(&models.Item{}).Select("id")
	containerIDs := r.db.Model(&models.Container{}).Select("id")
	err := r.db.WithContext(ctx).
		Where("parent_kind = ? AND parent_id NOT IN (?)", models.KindItem, itemIDs).
		Or("parent_kind = ? AND parent_id NOT IN (?)", models.KindContainer, containerIDs).
		Find(&orphans).Error
	if err != nil {
		return nil, err
	}
	return orphans, nil
}

func (r *ImageRepositoryImpl) Remove(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Image{}, id).Error
}

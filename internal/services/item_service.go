package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"Stashed/internal/apperrors"
	"Stashed/internal/blob"
	"Stashed/internal/models"
	"Stashed/internal/repository"
	"Stashed/internal/validation"
)

// CreateItemInput carries the fields accepted on item creation. IsIn
// defaults to true (in storage) when unset.
type CreateItemInput struct {
	Name        string
	Description string
	CategoryID  uint
	ContainerID uint
	IsIn        *bool
	Quantity    *int
}

// UpdateItemInput carries partial updates; nil fields stay unchanged.
type UpdateItemInput struct {
	Name        *string
	Description *string
	CategoryID  *uint
	ContainerID *uint
	IsIn        *bool
	Quantity    *int
}

type ItemService interface {
	CreateItem(ctx context.Context, ownerID uint, input CreateItemInput) (*models.Item, error)
	GetItemByID(ctx context.Context, ownerID, id uint) (*models.Item, error)
	UpdateItem(ctx context.Context, ownerID, id uint, input UpdateItemInput) (*models.Item, error)
	DeleteItem(ctx context.Context, ownerID, id uint) error
	GetItems(ctx context.Context, ownerID uint, opts repository.ListOptions) ([]models.Item, error)
}

type itemServiceImpl struct {
	itemRepo      repository.ItemRepository
	categoryRepo  repository.CategoryRepository
	containerRepo repository.ContainerRepository
	blobStore     blob.Store
	logService    LogService
}

func NewItemService(
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
	containerRepo repository.ContainerRepository,
	blobStore blob.Store,
	logService LogService,
) ItemService {
	return &itemServiceImpl{
		itemRepo:      itemRepo,
		categoryRepo:  categoryRepo,
		containerRepo: containerRepo,
		blobStore:     blobStore,
		logService:    logService,
	}
}

func (s *itemServiceImpl) CreateItem(ctx context.Context, ownerID uint, input CreateItemInput) (*models.Item, error) {
	trimmedName, err := validation.Name("name", input.Name)
	if err != nil {
		return nil, err
	}
	description, err := validation.Description("description", input.Description)
	if err != nil {
		return nil, err
	}
	if err := validation.Quantity("quantity", input.Quantity); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, ownerID, &input.CategoryID, &input.ContainerID); err != nil {
		return nil, err
	}
	isIn := true
	if input.IsIn != nil {
		isIn = *input.IsIn
	}
	item := &models.Item{
		OwnerID:     ownerID,
		Name:        trimmedName,
		Description: description,
		CategoryID:  input.CategoryID,
		ContainerID: input.ContainerID,
		IsIn:        isIn,
		Quantity:    input.Quantity,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, s.mapReferenceViolation(ctx, ownerID, item, err)
	}
	return item, nil
}

func (s *itemServiceImpl) GetItemByID(ctx context.Context, ownerID, id uint) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, asNotFound(err, "item")
	}
	return item, nil
}

func (s *itemServiceImpl) UpdateItem(ctx context.Context, ownerID, id uint, input UpdateItemInput) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, asNotFound(err, "item")
	}
	if input.Name != nil {
		trimmed, err := validation.Name("name", *input.Name)
		if err != nil {
			return nil, err
		}
		item.Name = trimmed
	}
	if input.Description != nil {
		checked, err := validation.Description("description", *input.Description)
		if err != nil {
			return nil, err
		}
		item.Description = checked
	}
	if input.Quantity != nil {
		if err := validation.Quantity("quantity", input.Quantity); err != nil {
			return nil, err
		}
		item.Quantity = input.Quantity
	}
	if err := s.checkReferences(ctx, ownerID, input.CategoryID, input.ContainerID); err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		item.CategoryID = *input.CategoryID
	}
	if input.ContainerID != nil {
		item.ContainerID = *input.ContainerID
	}
	if input.IsIn != nil {
		item.IsIn = *input.IsIn
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, s.mapReferenceViolation(ctx, ownerID, item, err)
	}
	return item, nil
}

// DeleteItem removes the item row and its image metadata, then drops the
// blobs best-effort. The blob set comes from the delete transaction itself,
// so an image attached while the delete runs is never missed. A blob left
// behind by a failed delete is logged; the metadata rows are already gone so
// nothing references it.
func (s *itemServiceImpl) DeleteItem(ctx context.Context, ownerID, id uint) error {
	images, err := s.itemRepo.DeleteCascade(ctx, ownerID, id)
	if err != nil {
		return asNotFound(err, "item")
	}
	for _, image := range images {
		if err := s.blobStore.Delete(ctx, image.StoragePath); err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"owner_id":     ownerID,
				"item_id":      id,
				"storage_path": image.StoragePath,
			}).WithError(err).Warn("could not delete blob for removed item")
		}
	}
	return nil
}

func (s *itemServiceImpl) GetItems(ctx context.Context, ownerID uint, opts repository.ListOptions) ([]models.Item, error) {
	return s.itemRepo.List(ctx, ownerID, opts)
}

// checkReferences verifies category and container ids resolve to rows owned
// by the caller. A foreign-owned row reports the same outcome as a missing
// one.
func (s *itemServiceImpl) checkReferences(ctx context.Context, ownerID uint, categoryID, containerID *uint) error {
	if categoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, ownerID, *categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.InvalidReferenceError{Field: "category_id"}
			}
			return err
		}
	}
	if containerID != nil {
		if _, err := s.containerRepo.FindByID(ctx, ownerID, *containerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.InvalidReferenceError{Field: "container_id"}
			}
			return err
		}
	}
	return nil
}

// mapReferenceViolation handles the rare case where a referenced row was
// deleted between the ownership check and the write and the RESTRICT
// foreign key fired.
func (s *itemServiceImpl) mapReferenceViolation(ctx context.Context, ownerID uint, item *models.Item, err error) error {
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		return err
	}
	if _, findErr := s.categoryRepo.FindByID(ctx, ownerID, item.CategoryID); errors.Is(findErr, gorm.ErrRecordNotFound) {
		return &apperrors.InvalidReferenceError{Field: "category_id"}
	}
	return &apperrors.InvalidReferenceError{Field: "container_id"}
}

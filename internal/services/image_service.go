package services

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"Stashed/internal/apperrors"
	"Stashed/internal/blob"
	"Stashed/internal/models"
	"Stashed/internal/repository"
)

// ImageService is the attachment manager. Parents are polymorphic (item or
// container), so existence and ownership of the parent are validated here
// before any metadata mutation.
type ImageService interface {
	Upload(ctx context.Context, ownerID uint, kind models.ParentKind, parentID uint, filename string, content io.Reader, size int64) (*models.Image, error)
	ListForParent(ctx context.Context, ownerID uint, kind models.ParentKind, parentID uint) ([]models.Image, error)
	Reorder(ctx context.Context, ownerID uint, kind models.ParentKind, parentID uint, orders map[uint]int) error
	Detach(ctx context.Context, ownerID uint, kind models.ParentKind, parentID, imageID uint) error
}

type imageServiceImpl struct {
	imageRepo     repository.ImageRepository
	itemRepo      repository.ItemRepository
	containerRepo repository.ContainerRepository
	blobStore     blob.Store
	logService    LogService
}

func NewImageService(
	imageRepo repository.ImageRepository,
	itemRepo repository.ItemRepository,
	containerRepo repository.ContainerRepository,
	blobStore blob.Store,
	logService LogService,
) ImageService {
	return &imageServiceImpl{
		imageRepo:     imageRepo,
		itemRepo:      itemRepo,
		containerRepo: containerRepo,
		blobStore:     blobStore,
		logService:    logService,
	}
}

// Upload stores the blob first and attaches metadata second, so a failed
// upload never leaves a metadata row pointing at nothing. When the attach
// fails instead (limit reached, parent gone) the stored blob is removed as
// compensation.
func (s *imageServiceImpl) Upload(ctx context.Context, ownerID uint, kind models.ParentKind, parentID uint, filename string, content io.Reader, size int64) (*models.Image, error) {
	if err := s.checkParent(ctx, ownerID, kind, parentID); err != nil {
		return nil, err
	}
	storagePath, err := s.blobStore.Save(ctx, ownerID, filename, content, size)
	if err != nil {
		return nil, err
	}
	image := &models.Image{
		OwnerID:     ownerID,
		ParentKind:  kind,
		ParentID:    parentID,
		StoragePath: storagePath,
	}
	if err := s.imageRepo.Attach(ctx, image); err != nil {
		if deleteErr := s.blobStore.Delete(ctx, storagePath); deleteErr != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"owner_id":     ownerID,
				"storage_path": storagePath,
			}).WithError(deleteErr).Warn("could not remove blob after failed attach")
		}
		return nil, err
	}
	return image, nil
}

func (s *imageServiceImpl) ListForParent(ctx context.Context, ownerID uint, kind models.ParentKind, parentID uint) ([]models.Image, error) {
	if err := s.checkParent(ctx, ownerID, kind, parentID); err != nil {
		return nil, err
	}
	return s.imageRepo.ListForParent(ctx, ownerID, kind, parentID)
}

func (s *imageServiceImpl) Reorder(ctx context.Context, ownerID uint, kind models.ParentKind, parentID uint, orders map[uint]int) error {
	if err := s.checkParent(ctx, ownerID, kind, parentID); err != nil {
		return err
	}
	return s.imageRepo.Reorder(ctx, ownerID, kind, parentID, orders)
}

func (s *imageServiceImpl) Detach(ctx context.Context, ownerID uint, kind models.ParentKind, parentID, imageID uint) error {
	if err := s.checkParent(ctx, ownerID, kind, parentID); err != nil {
		return err
	}
	detached, err := s.imageRepo.Detach(ctx, ownerID, kind, parentID, imageID)
	if err != nil {
		return asNotFound(err, "image")
	}
	if err := s.blobStore.Delete(ctx, detached.StoragePath); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"owner_id":     ownerID,
			"image_id":     imageID,
			"storage_path": detached.StoragePath,
		}).WithError(err).Warn("could not delete blob for detached image")
	}
	return nil
}

func (s *imageServiceImpl) checkParent(ctx context.Context, ownerID uint, kind models.ParentKind, parentID uint) error {
	var err error
	switch kind {
	case models.KindItem:
		_, err = s.itemRepo.FindByID(ctx, ownerID, parentID)
	case models.KindContainer:
		_, err = s.containerRepo.FindByID(ctx, ownerID, parentID)
	default:
		return &apperrors.ValidationError{Field: "parent_kind", Message: "must be item or container"}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &apperrors.InvalidReferenceError{Field: "parent_id"}
	}
	return err
}

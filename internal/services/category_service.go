package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Stashed/internal/apperrors"
	"Stashed/internal/models"
	"Stashed/internal/repository"
	"Stashed/internal/validation"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, ownerID uint, name string) (*models.Category, error)
	GetCategoryByID(ctx context.Context, ownerID, id uint) (*models.Category, error)
	UpdateCategory(ctx context.Context, ownerID, id uint, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, ownerID, id uint) error
	GetCategories(ctx context.Context, ownerID uint, opts repository.ListOptions) ([]models.Category, error)
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, ownerID uint, name string) (*models.Category, error) {
	trimmedName, err := validation.Name("name", name)
	if err != nil {
		return nil, err
	}
	if err := s.checkNameAvailable(ctx, ownerID, trimmedName, 0); err != nil {
		return nil, err
	}
	category := &models.Category{OwnerID: ownerID, Name: trimmedName}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		// The unique index on (owner_id, name_key) is the authoritative
		// guard; the pre-check above only exists for the nicer message.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.ConflictError{Reason: apperrors.ReasonDuplicateName, Name: trimmedName}
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) GetCategoryByID(ctx context.Context, ownerID, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, asNotFound(err, "category")
	}
	return category, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, ownerID, id uint, name string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, asNotFound(err, "category")
	}
	trimmedName, err := validation.Name("name", name)
	if err != nil {
		return nil, err
	}
	if err := s.checkNameAvailable(ctx, ownerID, trimmedName, category.ID); err != nil {
		return nil, err
	}
	category.Name = trimmedName
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.ConflictError{Reason: apperrors.ReasonDuplicateName, Name: trimmedName}
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, ownerID, id uint) error {
	return asNotFound(s.categoryRepo.DeleteGuarded(ctx, ownerID, id), "category")
}

func (s *categoryServiceImpl) GetCategories(ctx context.Context, ownerID uint, opts repository.ListOptions) ([]models.Category, error) {
	return s.categoryRepo.List(ctx, ownerID, opts)
}

func (s *categoryServiceImpl) checkNameAvailable(ctx context.Context, ownerID uint, name string, excludeID uint) error {
	existing, err := s.categoryRepo.FindByNameKey(ctx, ownerID, name, excludeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return &apperrors.ConflictError{Reason: apperrors.ReasonDuplicateName, Name: existing.Name}
	}
	return nil
}

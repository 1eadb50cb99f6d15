package services

import (
	"context"

	"Stashed/internal/models"
	"Stashed/internal/repository"
	"Stashed/internal/validation"
)

type ContainerService interface {
	CreateContainer(ctx context.Context, ownerID uint, name, description string) (*models.Container, error)
	GetContainerByID(ctx context.Context, ownerID, id uint) (*models.Container, error)
	UpdateContainer(ctx context.Context, ownerID, id uint, name, description *string) (*models.Container, error)
	DeleteContainer(ctx context.Context, ownerID, id uint) error
	GetContainers(ctx context.Context, ownerID uint, opts repository.ListOptions) ([]models.Container, error)
}

type containerServiceImpl struct {
	containerRepo repository.ContainerRepository
}

func NewContainerService(containerRepo repository.ContainerRepository) ContainerService {
	return &containerServiceImpl{containerRepo: containerRepo}
}

func (s *containerServiceImpl) CreateContainer(ctx context.Context, ownerID uint, name, description string) (*models.Container, error) {
	trimmedName, err := validation.Name("name", name)
	if err != nil {
		return nil, err
	}
	checkedDescription, err := validation.Description("description", description)
	if err != nil {
		return nil, err
	}
	container := &models.Container{
		OwnerID:     ownerID,
		Name:        trimmedName,
		Description: checkedDescription,
	}
	if err := s.containerRepo.Create(ctx, container); err != nil {
		return nil, err
	}
	return container, nil
}

func (s *containerServiceImpl) GetContainerByID(ctx context.Context, ownerID, id uint) (*models.Container, error) {
	container, err := s.containerRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, asNotFound(err, "container")
	}
	return container, nil
}

func (s *containerServiceImpl) UpdateContainer(ctx context.Context, ownerID, id uint, name, description *string) (*models.Container, error) {
	container, err := s.containerRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, asNotFound(err, "container")
	}
	if name != nil {
		trimmed, err := validation.Name("name", *name)
		if err != nil {
			return nil, err
		}
		container.Name = trimmed
	}
	if description != nil {
		checked, err := validation.Description("description", *description)
		if err != nil {
			return nil, err
		}
		container.Description = checked
	}
	if err := s.containerRepo.Update(ctx, container); err != nil {
		return nil, err
	}
	return container, nil
}

func (s *containerServiceImpl) DeleteContainer(ctx context.Context, ownerID, id uint) error {
	return asNotFound(s.containerRepo.DeleteGuarded(ctx, ownerID, id), "container")
}

func (s *containerServiceImpl) GetContainers(ctx context.Context, ownerID uint, opts repository.ListOptions) ([]models.Container, error) {
	return s.containerRepo.List(ctx, ownerID, opts)
}

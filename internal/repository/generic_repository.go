package repository

import (
	"context"

	"gorm.io/gorm"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) OwnedRepository[T] {
	return &GenericRepositoryImpl[T]{db: db}
}

func (r *GenericRepositoryImpl[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *GenericRepositoryImpl[T]) FindByID(ctx context.Context, ownerID, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&entity, id).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *GenericRepositoryImpl[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *GenericRepositoryImpl[T]) Count(ctx context.Context, ownerID uint) (int64, error) {
	var entity T
	var count int64
	err := r.db.WithContext(ctx).Model(&entity).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

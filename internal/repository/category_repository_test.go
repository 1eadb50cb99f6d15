package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Stashed/internal/apperrors"
	"Stashed/internal/models"
)

func TestCategoryRepository_CreateSetsNameKey(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)

	category := &models.Category{OwnerID: 1, Name: "Power Tools"}
	err := categoryRepo.Create(context.Background(), category)

	assert.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "power tools", category.NameKey)
}

func TestCategoryRepository_DuplicateNameDiffersOnlyByCase(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)

	err := categoryRepo.Create(context.Background(), &models.Category{OwnerID: 1, Name: "Tools"})
	require.NoError(t, err)

	err = categoryRepo.Create(context.Background(), &models.Category{OwnerID: 1, Name: "TOOLS"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCategoryRepository_SameNameAllowedAcrossOwners(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)

	assert.NoError(t, categoryRepo.Create(context.Background(), &models.Category{OwnerID: 1, Name: "Tools"}))
	assert.NoError(t, categoryRepo.Create(context.Background(), &models.Category{OwnerID: 2, Name: "tools"}))
}

func TestCategoryRepository_FindByNameKey(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)

	category := &models.Category{OwnerID: 1, Name: "Garden"}
	require.NoError(t, categoryRepo.Create(context.Background(), category))

	found, err := categoryRepo.FindByNameKey(context.Background(), 1, "  GARDEN ", 0)
	assert.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, category.ID, found.ID)

	// Excluding itself reports no collision, as an update re-check must.
	found, err = categoryRepo.FindByNameKey(context.Background(), 1, "garden", category.ID)
	assert.NoError(t, err)
	assert.Nil(t, found)

	// Another owner's namespace is empty.
	found, err = categoryRepo.FindByNameKey(context.Background(), 2, "garden", 0)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestCategoryRepository_FindByIDScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)

	category := &models.Category{OwnerID: 1, Name: "Tools"}
	require.NoError(t, categoryRepo.Create(context.Background(), category))

	_, err := categoryRepo.FindByID(context.Background(), 2, category.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryRepository_DeleteGuarded(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	containerRepo := NewContainerRepository(db)
	itemRepo := NewItemRepository(db)

	category := &models.Category{OwnerID: 1, Name: "Tools"}
	require.NoError(t, categoryRepo.Create(context.Background(), category))
	container := &models.Container{OwnerID: 1, Name: "Garage"}
	require.NoError(t, containerRepo.Create(context.Background(), container))
	item := &models.Item{OwnerID: 1, Name: "Hammer", CategoryID: category.ID, ContainerID: container.ID, IsIn: true}
	require.NoError(t, itemRepo.Create(context.Background(), item))

	err := categoryRepo.DeleteGuarded(context.Background(), 1, category.ID)
	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, apperrors.ReasonHasDependents, conflict.Reason)
	assert.Equal(t, "Tools", conflict.Name)
	assert.Equal(t, int64(1), conflict.Count)

	_, err = itemRepo.DeleteCascade(context.Background(), 1, item.ID)
	require.NoError(t, err)
	assert.NoError(t, categoryRepo.DeleteGuarded(context.Background(), 1, category.ID))

	_, err = categoryRepo.FindByID(context.Background(), 1, category.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryRepository_DeleteGuardedNotFoundForForeignOwner(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)

	category := &models.Category{OwnerID: 1, Name: "Tools"}
	require.NoError(t, categoryRepo.Create(context.Background(), category))

	err := categoryRepo.DeleteGuarded(context.Background(), 2, category.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = categoryRepo.FindByID(context.Background(), 1, category.ID)
	assert.NoError(t, err)
}

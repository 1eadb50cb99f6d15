package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stashed/internal/apperrors"
	"Stashed/internal/repository"
)

func newCategoryServiceUnderTest(t *testing.T) CategoryService {
	t.Helper()
	db := setupServiceDB(t)
	return NewCategoryService(repository.NewCategoryRepository(db))
}

func TestCategoryService_CreateCategoryTrims(t *testing.T) {
	service := newCategoryServiceUnderTest(t)

	category, err := service.CreateCategory(context.Background(), 1, "  Power Tools ")

	assert.NoError(t, err)
	assert.Equal(t, "Power Tools", category.Name)
}

func TestCategoryService_CreateCategoryRejectsCaseInsensitiveDuplicate(t *testing.T) {
	service := newCategoryServiceUnderTest(t)

	_, err := service.CreateCategory(context.Background(), 1, "Tools")
	require.NoError(t, err)

	_, err = service.CreateCategory(context.Background(), 1, "  TOOLS ")

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, apperrors.ReasonDuplicateName, conflict.Reason)
	assert.Equal(t, "Tools", conflict.Name)
}

func TestCategoryService_CreateCategoryAllowsSameNameForOtherOwner(t *testing.T) {
	service := newCategoryServiceUnderTest(t)

	_, err := service.CreateCategory(context.Background(), 1, "Tools")
	require.NoError(t, err)
	_, err = service.CreateCategory(context.Background(), 2, "tools")
	assert.NoError(t, err)
}

func TestCategoryService_CreateCategoryValidatesName(t *testing.T) {
	service := newCategoryServiceUnderTest(t)

	_, err := service.CreateCategory(context.Background(), 1, "   ")
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)

	_, err = service.CreateCategory(context.Background(), 1, strings.Repeat("x", 256))
	require.ErrorAs(t, err, &validationErr)
}

func TestCategoryService_UpdateCategoryKeepingOwnNameIsNotAConflict(t *testing.T) {
	service := newCategoryServiceUnderTest(t)

	category, err := service.CreateCategory(context.Background(), 1, "Tools")
	require.NoError(t, err)

	// Re-casing your own name must not trip the uniqueness check.
	updated, err := service.UpdateCategory(context.Background(), 1, category.ID, "TOOLS")
	assert.NoError(t, err)
	assert.Equal(t, "TOOLS", updated.Name)
}

func TestCategoryService_UpdateCategoryRejectsTakenName(t *testing.T) {
	service := newCategoryServiceUnderTest(t)

	_, err := service.CreateCategory(context.Background(), 1, "Tools")
	require.NoError(t, err)
	garden, err := service.CreateCategory(context.Background(), 1, "Garden")
	require.NoError(t, err)

	_, err = service.UpdateCategory(context.Background(), 1, garden.ID, "tools")

	var conflict *apperrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, apperrors.ReasonDuplicateName, conflict.Reason)
}

func TestCategoryService_UpdateCategoryNotFound(t *testing.T) {
	service := newCategoryServiceUnderTest(t)

	_, err := service.UpdateCategory(context.Background(), 1, 999, "Tools")

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "category", notFound.Kind)
}

func TestCategoryService_DeleteCategoryNotFound(t *testing.T) {
	service := newCategoryServiceUnderTest(t)

	err := service.DeleteCategory(context.Background(), 1, 999)

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

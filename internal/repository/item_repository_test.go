package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"Stashed/internal/models"
)

type itemFixture struct {
	container *models.Container
	category  *models.Category
}

func newItemFixture(t *testing.T, db *gorm.DB, ownerID uint) itemFixture {
	t.Helper()
	container := &models.Container{OwnerID: ownerID, Name: "Garage"}
	require.NoError(t, NewContainerRepository(db).Create(context.Background(), container))
	category := &models.Category{OwnerID: ownerID, Name: "Tools"}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))
	return itemFixture{container: container, category: category}
}

func (f itemFixture) item(ownerID uint, name string, isIn bool) *models.Item {
	return &models.Item{
		OwnerID:     ownerID,
		Name:        name,
		CategoryID:  f.category.ID,
		ContainerID: f.container.ID,
		IsIn:        isIn,
	}
}

func TestItemRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)
	fixture := newItemFixture(t, db, 1)

	item := fixture.item(1, "Hammer", true)
	assert.NoError(t, itemRepo.Create(context.Background(), item))
	assert.NotZero(t, item.ID)

	found, err := itemRepo.FindByID(context.Background(), 1, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Hammer", found.Name)
	assert.True(t, found.IsIn)
}

func TestItemRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)
	fixture := newItemFixture(t, db, 1)

	require.NoError(t, itemRepo.Create(context.Background(), fixture.item(1, "Hammer", true)))
	require.NoError(t, itemRepo.Create(context.Background(), fixture.item(1, "Hand saw", false)))
	require.NoError(t, itemRepo.Create(context.Background(), fixture.item(1, "Drill", true)))

	out := false
	items, err := itemRepo.List(context.Background(), 1, ListOptions{IsIn: &out})
	assert.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Hand saw", items[0].Name)

	items, err = itemRepo.List(context.Background(), 1, ListOptions{NameContains: "Ha", SortBy: "name"})
	assert.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Hammer", items[0].Name)

	items, err = itemRepo.List(context.Background(), 1, ListOptions{CategoryID: &fixture.category.ID, ContainerID: &fixture.container.ID})
	assert.NoError(t, err)
	assert.Len(t, items, 3)

	// Other owners see nothing.
	items, err = itemRepo.List(context.Background(), 2, ListOptions{})
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemRepository_CountCheckedOut(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)
	fixture := newItemFixture(t, db, 1)

	require.NoError(t, itemRepo.Create(context.Background(), fixture.item(1, "Hammer", true)))
	require.NoError(t, itemRepo.Create(context.Background(), fixture.item(1, "Saw", false)))
	require.NoError(t, itemRepo.Create(context.Background(), fixture.item(1, "Drill", false)))

	count, err := itemRepo.CountCheckedOut(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestItemRepository_RecentBreaksTiesByIDDescending(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)
	fixture := newItemFixture(t, db, 1)

	var ids []uint
	for _, name := range []string{"One", "Two", "Three"} {
		item := fixture.item(1, name, true)
		require.NoError(t, itemRepo.Create(context.Background(), item))
		ids = append(ids, item.ID)
	}
	// Force a creation-time tie so only the id ordering remains.
	sameMoment := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&models.Item{}).Where("1 = 1").Update("created_at", sameMoment).Error)

	recent, err := itemRepo.Recent(context.Background(), 1, 2)
	assert.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, ids[2], recent[0].ID)
	assert.Equal(t, ids[1], recent[1].ID)
}

func TestItemRepository_DeleteCascadeRemovesImages(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)
	imageRepo := NewImageRepository(db)
	fixture := newItemFixture(t, db, 1)

	item := fixture.item(1, "Hammer", true)
	require.NoError(t, itemRepo.Create(context.Background(), item))
	require.NoError(t, imageRepo.Attach(context.Background(), &models.Image{
		OwnerID: 1, ParentKind: models.KindItem, ParentID: item.ID, StoragePath: "1/a.jpg",
	}))

	removed, err := itemRepo.DeleteCascade(context.Background(), 1, item.ID)
	require.NoError(t, err)
	// The removed image metadata comes back from the same transaction, so
	// the caller can always clean up every blob the delete stranded.
	require.Len(t, removed, 1)
	assert.Equal(t, "1/a.jpg", removed[0].StoragePath)

	_, err = itemRepo.FindByID(context.Background(), 1, item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	images, err := imageRepo.ListForParent(context.Background(), 1, models.KindItem, item.ID)
	assert.NoError(t, err)
	assert.Empty(t, images)
}

func TestItemRepository_DeleteCascadeScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	itemRepo := NewItemRepository(db)
	fixture := newItemFixture(t, db, 1)

	item := fixture.item(1, "Hammer", true)
	require.NoError(t, itemRepo.Create(context.Background(), item))

	_, err := itemRepo.DeleteCascade(context.Background(), 2, item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = itemRepo.FindByID(context.Background(), 1, item.ID)
	assert.NoError(t, err)
}

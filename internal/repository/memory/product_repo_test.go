package memory_test

import (
	"context"
	"testing"

	"github.com/inventory-hub/go-backend/internal/domain"
	"github.com/inventory-hub/go-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addProduct(t *testing.T, repo *memory.ProductRepo, name, category string, price int64, quantity int32) int64 {
	t.Helper()

	id, err := repo.Add(context.Background(), domain.NewProduct(0, name, category, price, quantity))
	require.NoError(t, err)
	return id
}

func TestProductRepo_AddAssignsIdentity(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	id, err := repo.Add(ctx, domain.NewProduct(0, "Pen", "Stationery", 150, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Pen", got.Name)
	assert.Equal(t, "Stationery", got.Category)
	assert.Equal(t, int64(150), got.Price)
	assert.Equal(t, int32(100), got.Quantity)
	assert.True(t, got.IsActive)
	assert.False(t, got.CreatedDate.IsZero())
}

func TestProductRepo_SoftDeleteInvisibility(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	id := addProduct(t, repo, "Pen", "Stationery", 150, 100)

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	found, err := repo.Search(ctx, "pen")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestProductRepo_DeleteIdempotence(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	id := addProduct(t, repo, "Pen", "Stationery", 150, 100)

	first, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, first)

	second, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, second)
}

func TestProductRepo_UpdatePreservesIdentity(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	id := addProduct(t, repo, "Pen", "Stationery", 150, 100)

	before, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, before)

	updated, err := repo.Update(ctx, domain.NewProduct(id, "Gel Pen", "Office", 199, 50))
	require.NoError(t, err)
	assert.True(t, updated)

	after, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, id, after.ID)
	assert.Equal(t, "Gel Pen", after.Name)
	assert.Equal(t, "Office", after.Category)
	assert.Equal(t, int64(199), after.Price)
	assert.Equal(t, int32(50), after.Quantity)
	assert.Equal(t, before.CreatedDate, after.CreatedDate)
}

func TestProductRepo_UpdateDoesNotResurrect(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	id := addProduct(t, repo, "Pen", "Stationery", 150, 100)

	_, err := repo.Delete(ctx, id)
	require.NoError(t, err)

	// Обновление неактивной записи затрагивает строку, но не возвращает видимость
	updated, err := repo.Update(ctx, domain.NewProduct(id, "Gel Pen", "Office", 199, 50))
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepo_SearchCaseInsensitiveSubstring(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	widgetID := addProduct(t, repo, "Widget", "Tools", 100, 5)
	gadgetID := addProduct(t, repo, "Gadget", "Tools", 200, 3)

	byCategory, err := repo.Search(ctx, "tool")
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	assert.Equal(t, widgetID, byCategory[0].ID)
	assert.Equal(t, gadgetID, byCategory[1].ID)

	byName, err := repo.Search(ctx, "widg")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, widgetID, byName[0].ID)

	none, err := repo.Search(ctx, "hammer")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductRepo_GetByIDAbsent(t *testing.T) {
	repo := memory.NewProductRepo()

	got, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepo_GetAllInsertionOrder(t *testing.T) {
	repo := memory.NewProductRepo()
	ctx := context.Background()

	first := addProduct(t, repo, "Widget", "Tools", 100, 5)
	second := addProduct(t, repo, "Gadget", "Tools", 200, 3)
	third := addProduct(t, repo, "Pen", "Stationery", 150, 100)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{first, second, third}, []int64{all[0].ID, all[1].ID, all[2].ID})
}

func TestProductRepo_UpdateUnknownID(t *testing.T) {
	repo := memory.NewProductRepo()

	updated, err := repo.Update(context.Background(), domain.NewProduct(42, "X", "Y", 1, 1))
	require.NoError(t, err)
	assert.False(t, updated)
}

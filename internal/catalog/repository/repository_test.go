package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepoint/oms/internal/catalog/domain"
	"github.com/tradepoint/oms/pkg/textstore"
)

func testStore(t *testing.T) *textstore.Store {
	t.Helper()
	store, err := textstore.Open(textstore.Config{DataDir: t.TempDir()})
	require.NoError(t, err)
	return store
}

func testProduct(name string) *domain.Product {
	return &domain.Product{
		Name:          name,
		Description:   "test product",
		Category:      "Electronics",
		Price:         99.99,
		Stock:         10,
		MinStockLevel: 2,
		IsActive:      true,
	}
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo, err := NewFileProductRepository(testStore(t))
	require.NoError(t, err)

	first := testProduct("Laptop")
	second := testProduct("Mouse")
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestFindByIDReturnsCopy(t *testing.T) {
	repo, err := NewFileProductRepository(testStore(t))
	require.NoError(t, err)
	require.NoError(t, repo.Create(testProduct("Laptop")))

	found, err := repo.FindByID(1)
	require.NoError(t, err)

	found.Stock = 0

	again, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 10, again.Stock, "mutating a returned product must not touch the stored one")
}

func TestFindByIDUnknown(t *testing.T) {
	repo, err := NewFileProductRepository(testStore(t))
	require.NoError(t, err)

	_, err = repo.FindByID(42)

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdate(t *testing.T) {
	repo, err := NewFileProductRepository(testStore(t))
	require.NoError(t, err)
	p := testProduct("Laptop")
	require.NoError(t, repo.Create(p))

	p.Price = 89.99
	require.NoError(t, repo.Update(p))

	found, err := repo.FindByID(p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 89.99, found.Price, 1e-9)

	t.Run("Unknown product", func(t *testing.T) {
		ghost := testProduct("Ghost")
		ghost.ID = 42
		assert.ErrorIs(t, repo.Update(ghost), domain.ErrProductNotFound)
	})
}

func TestDelete(t *testing.T) {
	repo, err := NewFileProductRepository(testStore(t))
	require.NoError(t, err)
	p := testProduct("Laptop")
	require.NoError(t, repo.Create(p))

	require.NoError(t, repo.Delete(p.ID))

	_, err = repo.FindByID(p.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, repo.Delete(p.ID), domain.ErrProductNotFound)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	store := testStore(t)

	repo, err := NewFileProductRepository(store)
	require.NoError(t, err)
	require.NoError(t, repo.Create(testProduct("Laptop")))
	require.NoError(t, repo.Create(testProduct("Mouse")))
	require.NoError(t, repo.Delete(1))

	reopened, err := NewFileProductRepository(store)
	require.NoError(t, err)

	all, err := reopened.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Mouse", all[0].Name)

	t.Run("Next ID continues after the highest stored ID", func(t *testing.T) {
		third := testProduct("Keyboard")
		require.NoError(t, reopened.Create(third))
		assert.Equal(t, 3, third.ID)
	})
}

func TestLoadSkipsUndecodableRecords(t *testing.T) {
	store := testStore(t)
	require.NoError(t, store.Save("products.txt", []string{
		"1|Laptop|d|Electronics|999.99|5|1|1",
		"garbage line",
		"2|Mouse|d|Electronics|29.99|10|2|1",
	}))

	repo, err := NewFileProductRepository(store)
	require.NoError(t, err)

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/runocole/geomart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllProducts(t *testing.T) {
	repo := NewStaticRepository()

	products, err := repo.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.True(t, p.Category.Valid(), "product %s has unknown category %q", p.ID, p.Category)
		assert.GreaterOrEqual(t, p.Price, 0.0)
	}
}

func TestGetProduct(t *testing.T) {
	repo := NewStaticRepository()

	p, err := repo.GetProduct(context.Background(), "ts-leica-ts07")
	require.NoError(t, err)
	assert.Equal(t, "Leica TS07 Total Station", p.Name)
	assert.Equal(t, domain.CategoryTotalStation, p.Category)
}

func TestGetProduct_NotFound(t *testing.T) {
	repo := NewStaticRepository()

	_, err := repo.GetProduct(context.Background(), "no-such-product")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProductNotFound))
}

func TestGetByCategory(t *testing.T) {
	repo := NewStaticRepository()

	stations, err := repo.GetByCategory(context.Background(), domain.CategoryTotalStation)
	require.NoError(t, err)
	require.NotEmpty(t, stations)
	for _, p := range stations {
		assert.Equal(t, domain.CategoryTotalStation, p.Category)
	}

	none, err := repo.GetByCategory(context.Background(), domain.Category("unknown"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

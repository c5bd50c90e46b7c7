package catalog

import (
	"context"
	"errors"

	"github.com/runocole/geomart/internal/domain"
)

// Repository defines the interface for catalog reads.
// Consumers define this interface, not the static implementation.
type Repository interface {
	GetAllProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	GetByCategory(ctx context.Context, c domain.Category) ([]*domain.Product, error)
}

var ErrProductNotFound = errors.New("product not found")

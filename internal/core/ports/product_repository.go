package ports

import (
	"context"

	"cafeteria/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for menu products.
type ProductRepository interface {
	// Add persists a new product and returns it with its assigned id.
	Add(ctx context.Context, aggregate *product.Product) (*product.Product, error)

	// Update persists every field of an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get returns *errs.ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id int64) (*product.Product, error)
}

package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for menu products.
type ProductRepository interface {
	// Add persists a new product to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product,
	// including its availability flag.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier regardless of
	// availability. Returns ObjectNotFoundError when the id is absent;
	// availability is the caller's concern (see product.EnsureOrderable).
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}

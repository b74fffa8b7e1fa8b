package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Every read method works over active orders only: soft-deleted orders are
// silently excluded even when their id matches, so a deleted order is
// indistinguishable from one that never existed. The records themselves are
// retained for auditing; nothing in this contract removes rows.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// including its soft-delete mark.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetActive retrieves an active order by its unique identifier.
	// Returns ObjectNotFoundError when the id is absent or the order
	// has been soft-deleted.
	GetActive(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all active orders in stable placement order.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllActiveInPreparation retrieves all active orders currently
	// being prepared. Used by the kitchen sweep to find orders to mark ready.
	GetAllActiveInPreparation(ctx context.Context) ([]*order.Order, error)
}

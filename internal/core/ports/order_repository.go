package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The repository is a dumb ledger: it stores and retrieves orders without
// any authorization decisions. Visibility filtering beyond status
// exclusion belongs to the access policy and the read-side queries.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Only the status ever changes after creation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllForShop retrieves all orders placed at the given shop in
	// insertion order, excluding any order whose status is in exclude.
	GetAllForShop(ctx context.Context, shopName string, exclude []order.Status) ([]*order.Order, error)

	// GetAllForBuyer retrieves all orders placed by the given buyer
	// across all shops in insertion order, excluding statuses in exclude.
	GetAllForBuyer(ctx context.Context, buyerUsername string, exclude []order.Status) ([]*order.Order, error)
}

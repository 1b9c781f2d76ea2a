package ports

import (
	"context"

	"marketplace/internal/core/domain/model/buyer"
	"marketplace/internal/core/domain/model/kernel"
)

// BuyerRepository defines the persistence contract for buyer aggregates.
// Usernames are unique within the buyer namespace.
type BuyerRepository interface {
	// Add persists a new buyer aggregate to storage.
	Add(ctx context.Context, aggregate *buyer.Buyer) error

	// Get retrieves a buyer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*buyer.Buyer, error)

	// GetByUsername retrieves a buyer by its unique username.
	GetByUsername(ctx context.Context, username string) (*buyer.Buyer, error)
}

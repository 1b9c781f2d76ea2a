package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/merchant"
)

// MerchantRepository defines the persistence contract for merchant
// aggregates. Usernames and shop names are unique; merchants are never
// deleted.
type MerchantRepository interface {
	// Add persists a new merchant aggregate to storage.
	Add(ctx context.Context, aggregate *merchant.Merchant) error

	// Get retrieves a merchant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error)

	// GetByUsername retrieves a merchant by its unique username.
	GetByUsername(ctx context.Context, username string) (*merchant.Merchant, error)

	// GetByShopName retrieves the merchant owning the given shop.
	GetByShopName(ctx context.Context, shopName string) (*merchant.Merchant, error)
}

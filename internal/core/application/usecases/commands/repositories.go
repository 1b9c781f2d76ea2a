// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MerchantRepoFactory provides access to the merchant repository
	// within a transaction.
	MerchantRepoFactory interface {
		MerchantRepository() ports.MerchantRepository
	}

	// BuyerRepoFactory provides access to the buyer repository within a
	// transaction.
	BuyerRepoFactory interface {
		BuyerRepository() ports.BuyerRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MerchantUoW manages transactions for merchant-only operations,
	// such as merchant registration.
	MerchantUoW interface {
		TxManager
		MerchantRepoFactory
	}

	// MerchantUoWFactory creates new merchant unit of work instances.
	MerchantUoWFactory interface {
		Create() MerchantUoW
	}

	// BuyerUoW manages transactions for buyer-only operations, such as
	// buyer registration.
	BuyerUoW interface {
		TxManager
		BuyerRepoFactory
	}

	// BuyerUoWFactory creates new buyer unit of work instances.
	BuyerUoWFactory interface {
		Create() BuyerUoW
	}

	// OrderUoW manages transactions for order operations. Order commands
	// also resolve the owning merchant (shop existence on placement,
	// ownership on mutation), so the merchant repository is included.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MerchantRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

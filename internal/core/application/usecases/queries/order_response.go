// Package queries contains read-only operations for retrieving system
// state. Implements the Query side of the CQRS pattern: handlers bypass
// the aggregates and read projections straight from the database.
package queries

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderResponse is the read-side view of an order shared by the
// merchant dashboard and buyer history queries.
type OrderResponse struct {
	ID            kernel.UUID
	ShopName      string
	BuyerUsername string
	Items         []order.LineItem
	Status        order.Status
}

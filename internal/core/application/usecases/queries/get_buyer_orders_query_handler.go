package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler reads a buyer's order history from the
// database.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for buyer history
// queries.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle returns the buyer's orders across all shops, oldest first,
// excluding deleted orders.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			shop_name,
			buyer_username,
			items,
			status
		FROM orders
		WHERE buyer_username = ?
		  AND status != ?
		ORDER BY seq
	`, query.BuyerUsername(), order.Deleted).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

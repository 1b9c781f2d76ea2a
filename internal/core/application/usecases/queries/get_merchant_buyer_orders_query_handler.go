package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetMerchantBuyerOrdersQueryHandler reads one buyer's open orders at the
// merchant's shop.
type GetMerchantBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantBuyerOrdersQueryHandler creates a handler for per-buyer
// dashboard queries.
func NewGetMerchantBuyerOrdersQueryHandler(db *gorm.DB) GetMerchantBuyerOrdersQueryHandler {
	return GetMerchantBuyerOrdersQueryHandler{db: db}
}

// Handle returns the buyer's orders at the merchant's shop, oldest first,
// with the same exclusions as the full dashboard.
func (h GetMerchantBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantBuyerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.shop_name,
			o.buyer_username,
			o.items,
			o.status
		FROM orders o
		JOIN merchants m ON m.shop_name = o.shop_name
		WHERE m.username = ?
		  AND o.buyer_username = ?
		  AND o.status NOT IN (?, ?)
		ORDER BY o.seq
	`, query.MerchantUsername(), query.BuyerUsername(), order.Completed, order.Deleted).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

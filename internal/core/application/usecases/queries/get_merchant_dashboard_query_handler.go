package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMerchantDashboardQueryHandler reads the merchant's open orders from
// the database. The shop is resolved through the merchants table, so a
// merchant can never see another shop's orders.
type GetMerchantDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantDashboardQueryHandler creates a handler for dashboard
// queries.
func NewGetMerchantDashboardQueryHandler(db *gorm.DB) GetMerchantDashboardQueryHandler {
	return GetMerchantDashboardQueryHandler{db: db}
}

// Handle returns the orders of the merchant's shop, oldest first,
// excluding completed and deleted orders.
func (h GetMerchantDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantDashboardQuery,
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
		  AND o.status NOT IN (?, ?)
		ORDER BY o.seq
	`, query.MerchantUsername(), order.Completed, order.Deleted).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

// scanOrderRows decodes rows of (id, shop_name, buyer_username, items,
// status) into order views. Shared by all order-listing queries.
func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id      uuid.UUID
			resp    OrderResponse
			rawItem []byte
			status  int
		)

		if err := rows.Scan(&id, &resp.ShopName, &resp.BuyerUsername, &rawItem, &status); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ID = orderID

		items, err := order.ParseItems(rawItem)
		if err != nil {
			return nil, err
		}
		resp.Items = items
		resp.Status = order.Status(status)

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShopsQueryHandler lists shops in merchant registration order.
type GetShopsQueryHandler struct {
	db *gorm.DB
}

// NewGetShopsQueryHandler creates a handler for the shop catalog query.
func NewGetShopsQueryHandler(db *gorm.DB) GetShopsQueryHandler {
	return GetShopsQueryHandler{db: db}
}

// Handle returns all shop names, oldest registration first.
func (h GetShopsQueryHandler) Handle(
	ctx context.Context,
	query GetShopsQuery,
) ([]GetShopsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shops := make([]GetShopsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT shop_name
		FROM merchants
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shop GetShopsQueryResponse
		if err = rows.Scan(&shop.ShopName); err != nil {
			return nil, err
		}
		shops = append(shops, shop)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shops, nil
}

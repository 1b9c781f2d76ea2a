// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It handles the conversion between order domain
// aggregates and their relational representation.
package orderrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Seq is a bigserial primary key so listings come back in
// insertion order; the public identity is the unique UUID column.
type OrderDTO struct {
	Seq           int64     `gorm:"primaryKey;autoIncrement"`
	ID            uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ShopName      string    `gorm:"index"`
	BuyerUsername string    `gorm:"index"`
	Items         []byte    `gorm:"type:jsonb"`
	Status        int       `gorm:"index"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
// Items are stored as the canonical JSON document.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := order.EncodeItems(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		ShopName:      aggregate.ShopName(),
		BuyerUsername: aggregate.BuyerUsername(),
		Items:         items,
		Status:        int(aggregate.Status()),
	}, nil
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items, err := order.ParseItems(dto.Items)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.ShopName, dto.BuyerUsername, items, order.Status(dto.Status))
}

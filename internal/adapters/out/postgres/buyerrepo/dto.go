// Package buyerrepo provides data transfer objects and mapping functions
// for buyer persistence.
package buyerrepo

import (
	"marketplace/internal/core/domain/model/buyer"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BuyerDTO represents the database structure for persisting buyer
// aggregates.
type BuyerDTO struct {
	Seq      int64     `gorm:"primaryKey;autoIncrement"`
	ID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Username string    `gorm:"uniqueIndex"`
	Secret   string
}

// TableName overrides GORM's default naming convention to use "buyers".
func (BuyerDTO) TableName() string {
	return "buyers"
}

func fromDomain(aggregate *buyer.Buyer) BuyerDTO {
	return BuyerDTO{
		ID:       aggregate.ID().Bytes(),
		Username: aggregate.Username(),
		Secret:   aggregate.Secret(),
	}
}

func toDomain(dto BuyerDTO) (*buyer.Buyer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return buyer.RestoreBuyer(id, dto.Username, dto.Secret)
}

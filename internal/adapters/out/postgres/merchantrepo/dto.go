// Package merchantrepo provides data transfer objects and mapping
// functions for merchant persistence.
package merchantrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/merchant"

	"github.com/google/uuid"
)

// MerchantDTO represents the database structure for persisting merchant
// aggregates. Username and shop name carry unique indexes; the database
// is the last line of defense for the uniqueness rules the registration
// handler checks first.
type MerchantDTO struct {
	Seq      int64     `gorm:"primaryKey;autoIncrement"`
	ID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Username string    `gorm:"uniqueIndex"`
	Secret   string
	ShopName string `gorm:"uniqueIndex"`
}

// TableName overrides GORM's default naming convention to use
// "merchants".
func (MerchantDTO) TableName() string {
	return "merchants"
}

func fromDomain(aggregate *merchant.Merchant) MerchantDTO {
	return MerchantDTO{
		ID:       aggregate.ID().Bytes(),
		Username: aggregate.Username(),
		Secret:   aggregate.Secret(),
		ShopName: aggregate.ShopName(),
	}
}

func toDomain(dto MerchantDTO) (*merchant.Merchant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return merchant.RestoreMerchant(id, dto.Username, dto.Secret, dto.ShopName)
}

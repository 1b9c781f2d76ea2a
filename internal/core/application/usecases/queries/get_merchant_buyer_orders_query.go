package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrGetMerchantBuyerOrdersQueryIsNotConstructed = errors.New(
		"GetMerchantBuyerOrdersQuery must be created via NewGetMerchantBuyerOrdersQuery constructor",
	)
	ErrBuyerUsernameIsRequired = errors.New("buyer username is required")
)

// GetMerchantBuyerOrdersQuery retrieves the dashboard view narrowed to a
// single buyer, for merchants reviewing one customer's open orders.
type GetMerchantBuyerOrdersQuery struct { //nolint:recvcheck //using for validation
	merchantUsername string
	buyerUsername    string

	guard guard.ConstructorGuard
}

// NewGetMerchantBuyerOrdersQuery creates a per-buyer dashboard query.
func NewGetMerchantBuyerOrdersQuery(merchantUsername, buyerUsername string) (GetMerchantBuyerOrdersQuery, error) {
	if merchantUsername == "" {
		return GetMerchantBuyerOrdersQuery{}, ErrMerchantUsernameIsRequired
	}
	if buyerUsername == "" {
		return GetMerchantBuyerOrdersQuery{}, ErrBuyerUsernameIsRequired
	}

	return GetMerchantBuyerOrdersQuery{
		merchantUsername: merchantUsername,
		buyerUsername:    buyerUsername,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantBuyerOrdersQueryIsNotConstructed)
}

// MerchantUsername returns the merchant whose shop is being viewed.
func (q GetMerchantBuyerOrdersQuery) MerchantUsername() string {
	return q.merchantUsername
}

// BuyerUsername returns the buyer the view is narrowed to.
func (q GetMerchantBuyerOrdersQuery) BuyerUsername() string {
	return q.buyerUsername
}

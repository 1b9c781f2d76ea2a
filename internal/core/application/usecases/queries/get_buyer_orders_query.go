package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery retrieves a buyer's order history across every
// shop. Deleted orders are excluded; completed ones remain visible so the
// buyer can see what was fulfilled.
type GetBuyerOrdersQuery struct { //nolint:recvcheck //using for validation
	buyerUsername string

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates an order history query for the given
// buyer.
func NewGetBuyerOrdersQuery(buyerUsername string) (GetBuyerOrdersQuery, error) {
	if buyerUsername == "" {
		return GetBuyerOrdersQuery{}, ErrBuyerUsernameIsRequired
	}

	return GetBuyerOrdersQuery{
		buyerUsername: buyerUsername,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// BuyerUsername returns the buyer whose history is requested.
func (q GetBuyerOrdersQuery) BuyerUsername() string {
	return q.buyerUsername
}

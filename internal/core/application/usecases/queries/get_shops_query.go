package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrGetShopsQueryIsNotConstructed = errors.New(
	"GetShopsQuery must be created via NewGetShopsQuery constructor",
)

// GetShopsQuery retrieves every shop on the marketplace. This is the
// buyer-facing catalog; it needs no authentication beyond a valid buyer
// session and takes no parameters.
type GetShopsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShopsQuery creates a query to list all shops.
func NewGetShopsQuery() GetShopsQuery {
	return GetShopsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShopsQuery) Validate() error {
	return q.guard.Validate(ErrGetShopsQueryIsNotConstructed)
}

// GetShopsQueryResponse holds one shop name.
type GetShopsQueryResponse struct {
	ShopName string
}

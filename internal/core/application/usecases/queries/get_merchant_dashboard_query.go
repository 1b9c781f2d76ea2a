package queries

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var (
	ErrGetMerchantDashboardQueryIsNotConstructed = errors.New(
		"GetMerchantDashboardQuery must be created via NewGetMerchantDashboardQuery constructor",
	)
	ErrMerchantUsernameIsRequired = errors.New("merchant username is required")
)

// GetMerchantDashboardQuery retrieves the actionable orders of a
// merchant's shop. Completed and deleted orders are excluded: the
// dashboard shows work that still needs a decision, not history.
type GetMerchantDashboardQuery struct { //nolint:recvcheck //using for validation
	merchantUsername string

	guard guard.ConstructorGuard
}

// NewGetMerchantDashboardQuery creates a dashboard query for the given
// merchant.
func NewGetMerchantDashboardQuery(merchantUsername string) (GetMerchantDashboardQuery, error) {
	if merchantUsername == "" {
		return GetMerchantDashboardQuery{}, ErrMerchantUsernameIsRequired
	}

	return GetMerchantDashboardQuery{
		merchantUsername: merchantUsername,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMerchantDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantDashboardQueryIsNotConstructed)
}

// MerchantUsername returns the merchant whose shop is being viewed.
func (q GetMerchantDashboardQuery) MerchantUsername() string {
	return q.merchantUsername
}

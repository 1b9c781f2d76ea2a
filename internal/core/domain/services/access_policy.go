package services

import (
	"time"

	"marketplace/internal/core/domain/model/merchant"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/session"

	"marketplace/internal/pkg/errs"
)

// AccessPolicy is the domain service deciding what an authenticated
// principal may read or mutate. It is the single choke point for every
// visibility and ownership decision; the order ledger itself performs no
// authorization.
//
// Rules:
//   - A merchant may list or mutate only orders placed at their own shop.
//   - The merchant dashboard excludes completed and deleted orders.
//   - A buyer sees only their own orders, and never deleted ones.
//   - Any operation without a live session of the required role is
//     unauthorized and must not touch the ledger.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// RequireRole validates that the session is properly constructed, not
// expired at the given instant, and carries the required role. A failure
// means the caller must be rejected before any store access.
func (p AccessPolicy) RequireRole(s session.Session, role session.Role, now time.Time) error {
	if err := s.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause("session required", err)
	}
	if s.IsExpired(now) {
		return errs.NewUnauthorizedError("session expired")
	}
	if s.Role() != role {
		return errs.NewUnauthorizedError("wrong role for operation")
	}
	return nil
}

// AuthorizeMerchantOrder checks that the merchant owns the shop the order
// was placed at. Returns an unauthorized error on mismatch; the order must
// then be left untouched.
func (p AccessPolicy) AuthorizeMerchantOrder(m *merchant.Merchant, o *order.Order) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.BelongsToShop(m.ShopName()) {
		return errs.NewUnauthorizedError("order belongs to another shop")
	}
	return nil
}

// MerchantDashboardExclusions returns the statuses hidden from a
// merchant's default dashboard view: completed orders leave the active
// dashboard and deleted orders are tombstoned.
func (p AccessPolicy) MerchantDashboardExclusions() []order.Status {
	return []order.Status{order.Completed, order.Deleted}
}

// BuyerHistoryExclusions returns the statuses hidden from a buyer's order
// history: only the deleted tombstone.
func (p AccessPolicy) BuyerHistoryExclusions() []order.Status {
	return []order.Status{order.Deleted}
}

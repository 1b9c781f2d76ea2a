package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a buyer's request for a set of line items from one
// shop. It is the aggregate root that manages the order lifecycle from
// placement through status transitions to soft deletion.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must reference a shop name and a buyer username
//   - Must carry at least one valid line item
//   - Items never change after creation; only the status does
//   - Status transitions follow the state machine under the active mode
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// shopName references the shop the order was placed at
	shopName string

	// buyerUsername references the buyer who placed the order
	buyerUsername string

	// items is the immutable ordered sequence of requested line items
	items []LineItem

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order placed by a buyer. The order starts in
// Pending status. All parameters are validated; the items sequence must be
// non-empty.
func NewOrder(id kernel.UUID, shopName, buyerUsername string, items []LineItem) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setShopName(shopName),
		o.setBuyerUsername(buyerUsername),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// current status. Used by repositories when mapping stored records back to
// the domain.
func RestoreOrder(
	id kernel.UUID,
	shopName, buyerUsername string,
	items []LineItem,
	status Status,
) (*Order, error) {
	o, err := NewOrder(id, shopName, buyerUsername, items)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Called when reconstructing orders from persistence to
// preserve data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ShopName returns the shop the order was placed at.
func (o *Order) ShopName() string {
	return o.shopName
}

// BuyerUsername returns the buyer who placed the order.
func (o *Order) BuyerUsername() string {
	return o.buyerUsername
}

// Items returns a copy of the line items, preserving their order.
// The aggregate's own sequence cannot be mutated through the returned
// slice.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// BelongsToShop reports whether the order was placed at the given shop.
func (o *Order) BelongsToShop(shopName string) bool {
	return o.shopName == shopName
}

// ChangeStatus transitions the order to a new status under the given
// transition mode. The transition is validated against the state machine;
// on failure the order is left unchanged.
func (o *Order) ChangeStatus(next Status, mode TransitionMode) error {
	if err := o.status.CanTransitionTo(next, mode); err != nil {
		return err
	}

	o.status = next
	return nil
}

// MarkDeleted soft-deletes the order by setting the Deleted tombstone.
// Deletion is allowed from any status and is idempotent: deleting an
// already-deleted order succeeds without effect.
func (o *Order) MarkDeleted() error {
	if o.status == Deleted {
		return nil
	}

	o.status = Deleted
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setShopName(shopName string) error {
	if shopName == "" {
		return errs.NewValueIsRequiredError("shopName")
	}
	o.shopName = shopName
	return nil
}

func (o *Order) setBuyerUsername(buyerUsername string) error {
	if buyerUsername == "" {
		return errs.NewValueIsRequiredError("buyerUsername")
	}
	o.buyerUsername = buyerUsername
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if item.Name() == "" || item.Quantity() <= 0 {
			return errs.NewValueIsInvalidError("items")
		}
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

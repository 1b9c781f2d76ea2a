package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrBuyerUsernameIsRequired = errors.New("buyer username is required")
)

// PlaceOrderCommand represents a buyer's request to place an order at a
// shop. Items are validated up front; the shop itself is resolved by the
// handler at write time.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	shopName      string
	buyerUsername string
	items         []order.LineItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. The item list
// must be non-empty and every item must have a name and a positive
// quantity.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	shopName, buyerUsername string,
	items []order.ItemPair,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShopName(shopName),
		cmd.setBuyerUsername(buyerUsername),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ShopName returns the shop the order targets.
func (c PlaceOrderCommand) ShopName() string {
	return c.shopName
}

// BuyerUsername returns the ordering buyer's username.
func (c PlaceOrderCommand) BuyerUsername() string {
	return c.buyerUsername
}

// Items returns the validated order lines.
func (c PlaceOrderCommand) Items() []order.LineItem {
	return c.items
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setShopName(shopName string) error {
	if shopName == "" {
		return ErrShopNameIsRequired
	}

	c.shopName = shopName
	return nil
}

func (c *PlaceOrderCommand) setBuyerUsername(buyerUsername string) error {
	if buyerUsername == "" {
		return ErrBuyerUsernameIsRequired
	}

	c.buyerUsername = buyerUsername
	return nil
}

func (c *PlaceOrderCommand) setItems(pairs []order.ItemPair) error {
	items, err := order.NewLineItems(pairs)
	if err != nil {
		return err
	}

	c.items = items
	return nil
}

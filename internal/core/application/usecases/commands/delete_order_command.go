package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a merchant's request to delete one of
// their orders. Deletion is a tombstone, not a row removal.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	merchantUsername string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a delete command.
func NewDeleteOrderCommand(orderID kernel.UUID, merchantUsername string) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMerchantUsername(merchantUsername),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MerchantUsername returns the acting merchant's username.
func (c DeleteOrderCommand) MerchantUsername() string {
	return c.merchantUsername
}

func (c *DeleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DeleteOrderCommand) setMerchantUsername(merchantUsername string) error {
	if merchantUsername == "" {
		return ErrMerchantUsernameIsRequired
	}

	c.merchantUsername = merchantUsername
	return nil
}

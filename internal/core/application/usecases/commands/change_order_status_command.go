package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrMerchantUsernameIsRequired = errors.New("merchant username is required")
)

// ChangeOrderStatusCommand represents a merchant's request to move one of
// their orders to a new status.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	merchantUsername string
	newStatus        order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status-change command. The target
// status must be one of the recognized statuses; whether the move is
// allowed from the order's current status is decided by the aggregate.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	merchantUsername string,
	newStatus order.Status,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMerchantUsername(merchantUsername),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MerchantUsername returns the acting merchant's username.
func (c ChangeOrderStatusCommand) MerchantUsername() string {
	return c.merchantUsername
}

// NewStatus returns the requested target status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setMerchantUsername(merchantUsername string) error {
	if merchantUsername == "" {
		return ErrMerchantUsernameIsRequired
	}

	c.merchantUsername = merchantUsername
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

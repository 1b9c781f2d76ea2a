package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// DeleteOrderCommandHandler tombstones an order. Deleting an already
// deleted order succeeds without changing anything, so retries are safe.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteOrderCommandHandler creates a delete handler.
func NewDeleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle marks the order deleted after verifying the acting merchant owns
// the shop it was placed at.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	m, err := uow.MerchantRepository().GetByUsername(ctx, cmd.MerchantUsername())
	if err != nil {
		return err
	}

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.policy.AuthorizeMerchantOrder(m, o); err != nil {
		return err
	}

	if err = o.MarkDeleted(); err != nil {
		return err
	}

	if err = orders.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler handles status changes on orders.
// Ownership is checked against the acting merchant's shop before the
// aggregate decides whether the transition itself is allowed.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
	mode       order.TransitionMode
}

// NewChangeOrderStatusCommandHandler creates a status-change handler.
// The transition mode selects strict lifecycle enforcement or free
// overwrites; deleted orders stay deleted in both modes.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.AccessPolicy,
	mode order.TransitionMode,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		mode:       mode,
	}
}

// Handle moves the order to the command's target status.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = o.ChangeStatus(cmd.NewStatus(), h.mode); err != nil {
		return err
	}

	if err = orders.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

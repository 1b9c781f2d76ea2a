package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles order placement. The shop is resolved
// inside the same transaction that inserts the order, so an order can
// never reference a shop that does not exist.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates a pending order at the command's shop. Fails with a
// not-found error if no merchant owns a shop with that name.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	if _, err := uow.MerchantRepository().GetByShopName(ctx, cmd.ShopName()); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.ShopName(), cmd.BuyerUsername(), cmd.Items())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

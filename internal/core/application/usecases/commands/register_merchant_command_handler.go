package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/merchant"
	"marketplace/internal/pkg/errs"
)

// RegisterMerchantCommandHandler handles merchant registration.
// Enforces username and shop name uniqueness inside one transaction, so a
// conflict leaves the store unchanged.
type RegisterMerchantCommandHandler struct {
	uowFactory MerchantUoWFactory
}

// NewRegisterMerchantCommandHandler creates a handler for merchant
// registration. Requires a MerchantUoWFactory for transactional
// persistence.
func NewRegisterMerchantCommandHandler(uowFactory MerchantUoWFactory) RegisterMerchantCommandHandler {
	return RegisterMerchantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Fails with an already-exists
// error if the username or shop name is taken.
func (h *RegisterMerchantCommandHandler) Handle(ctx context.Context, cmd RegisterMerchantCommand) error {
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

	repo := uow.MerchantRepository()

	if _, err := repo.GetByUsername(ctx, cmd.Username()); err == nil {
		return errs.NewObjectAlreadyExistsError("username", cmd.Username())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if _, err := repo.GetByShopName(ctx, cmd.ShopName()); err == nil {
		return errs.NewObjectAlreadyExistsError("shopName", cmd.ShopName())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	m, err := merchant.NewMerchant(cmd.MerchantID(), cmd.Username(), cmd.Secret(), cmd.ShopName())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

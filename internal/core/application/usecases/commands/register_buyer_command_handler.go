package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/buyer"
	"marketplace/internal/pkg/errs"
)

// RegisterBuyerCommandHandler handles buyer registration.
type RegisterBuyerCommandHandler struct {
	uowFactory BuyerUoWFactory
}

// NewRegisterBuyerCommandHandler creates a handler for buyer registration.
func NewRegisterBuyerCommandHandler(uowFactory BuyerUoWFactory) RegisterBuyerCommandHandler {
	return RegisterBuyerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Fails with an already-exists
// error if the username is taken by another buyer.
func (h *RegisterBuyerCommandHandler) Handle(ctx context.Context, cmd RegisterBuyerCommand) error {
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

	repo := uow.BuyerRepository()

	if _, err := repo.GetByUsername(ctx, cmd.Username()); err == nil {
		return errs.NewObjectAlreadyExistsError("username", cmd.Username())
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	b, err := buyer.NewBuyer(cmd.BuyerID(), cmd.Username(), cmd.Secret())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, b); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

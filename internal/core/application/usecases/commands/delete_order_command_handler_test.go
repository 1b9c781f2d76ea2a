package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := pendingOrderAt(t, "Corner Deli")
	m := merchantOwning(t, "alice", "Corner Deli")
	cmd, _ := commands.NewDeleteOrderCommand(o.ID(), "alice")

	merchants := new(MockMerchantRepository)
	orders := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MerchantRepository").Return(merchants).Once(),
		merchants.On("GetByUsername", mock.Anything, "alice").Return(m, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orders.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, services.NewAccessPolicy())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Deleted, o.Status())
	merchants.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_AlreadyDeletedIsIdempotent(t *testing.T) {
	ctx := t.Context()
	o := pendingOrderAt(t, "Corner Deli")
	require.NoError(t, o.MarkDeleted())
	m := merchantOwning(t, "alice", "Corner Deli")
	cmd, _ := commands.NewDeleteOrderCommand(o.ID(), "alice")

	merchants := new(MockMerchantRepository)
	orders := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MerchantRepository").Return(merchants).Once(),
		merchants.On("GetByUsername", mock.Anything, "alice").Return(m, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orders.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, services.NewAccessPolicy())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Deleted, o.Status())
}

func TestDeleteOrderCommandHandler_Handle_ForeignShopOrder(t *testing.T) {
	ctx := t.Context()
	o := pendingOrderAt(t, "Corner Deli")
	m := merchantOwning(t, "mallory", "Other Shop")
	cmd, _ := commands.NewDeleteOrderCommand(o.ID(), "mallory")

	merchants := new(MockMerchantRepository)
	orders := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MerchantRepository").Return(merchants).Once(),
		merchants.On("GetByUsername", mock.Anything, "mallory").Return(m, nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory, services.NewAccessPolicy())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, order.Pending, o.Status())
}

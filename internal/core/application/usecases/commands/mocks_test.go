package commands_test

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/buyer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/merchant"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/session"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockMerchantRepository struct{ mock.Mock }

func (m *MockMerchantRepository) Add(ctx context.Context, aggregate *merchant.Merchant) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMerchantRepository) Get(ctx context.Context, id kernel.UUID) (*merchant.Merchant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*merchant.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) GetByUsername(ctx context.Context, username string) (*merchant.Merchant, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*merchant.Merchant), args.Error(1)
}

func (m *MockMerchantRepository) GetByShopName(ctx context.Context, shopName string) (*merchant.Merchant, error) {
	args := m.Called(ctx, shopName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*merchant.Merchant), args.Error(1)
}

type MockBuyerRepository struct{ mock.Mock }

func (m *MockBuyerRepository) Add(ctx context.Context, aggregate *buyer.Buyer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBuyerRepository) Get(ctx context.Context, id kernel.UUID) (*buyer.Buyer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*buyer.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) GetByUsername(ctx context.Context, username string) (*buyer.Buyer, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*buyer.Buyer), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllForShop(
	ctx context.Context, shopName string, exclude []order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, shopName, exclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllForBuyer(
	ctx context.Context, buyerUsername string, exclude []order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, buyerUsername, exclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Put(s session.Session) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockSessionStore) Get(token string) (session.Session, error) {
	args := m.Called(token)
	return args.Get(0).(session.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(token string) {
	m.Called(token)
}

func (m *MockSessionStore) DeleteExpired(now time.Time) int {
	args := m.Called(now)
	return args.Int(0)
}

type MockMerchantUoW struct{ mock.Mock }

func (m *MockMerchantUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMerchantUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMerchantUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMerchantUoW) MerchantRepository() ports.MerchantRepository {
	args := m.Called()
	return args.Get(0).(ports.MerchantRepository)
}

type MockMerchantUoWFactory struct{ mock.Mock }

func (m *MockMerchantUoWFactory) Create() commands.MerchantUoW {
	args := m.Called()
	return args.Get(0).(commands.MerchantUoW)
}

type MockBuyerUoW struct{ mock.Mock }

func (m *MockBuyerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBuyerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBuyerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBuyerUoW) BuyerRepository() ports.BuyerRepository {
	args := m.Called()
	return args.Get(0).(ports.BuyerRepository)
}

type MockBuyerUoWFactory struct{ mock.Mock }

func (m *MockBuyerUoWFactory) Create() commands.BuyerUoW {
	args := m.Called()
	return args.Get(0).(commands.BuyerUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) MerchantRepository() ports.MerchantRepository {
	args := m.Called()
	return args.Get(0).(ports.MerchantRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

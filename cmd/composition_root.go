package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/sessionstore"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

const defaultSessionTTL = 30 * time.Minute

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	sessionStore   *sessionstore.InMemorySessionStore
	policy         services.AccessPolicy
	sessionTTL     time.Duration
	transitionMode order.TransitionMode
	logger         *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	sessionTTL := defaultSessionTTL
	if config.SessionTTL != "" {
		parsed, err := time.ParseDuration(config.SessionTTL)
		if err != nil {
			return CompositionRoot{}, fmt.Errorf("parse session TTL: %w", err)
		}
		sessionTTL = parsed
	}

	transitionMode, err := order.TransitionModeFromString(config.OrderTransitionMode)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("parse order transition mode: %w", err)
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		sessionStore:   sessionstore.NewInMemorySessionStore(),
		policy:         services.NewAccessPolicy(),
		sessionTTL:     sessionTTL,
		transitionMode: transitionMode,
		logger:         logger,
	}, nil
}

func (c *CompositionRoot) SessionStore() *sessionstore.InMemorySessionStore {
	return c.sessionStore
}

func (c *CompositionRoot) AccessPolicy() services.AccessPolicy {
	return c.policy
}

func (c *CompositionRoot) CreateRegisterMerchantCommandHandler() commands.RegisterMerchantCommandHandler {
	var f commands.MerchantUoWFactory = FuncMerchantUoWFactory(func() commands.MerchantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterMerchantCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterBuyerCommandHandler() commands.RegisterBuyerCommandHandler {
	var f commands.BuyerUoWFactory = FuncBuyerUoWFactory(func() commands.BuyerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterBuyerCommandHandler(f)
}

func (c *CompositionRoot) CreateLogInCommandHandler() commands.LogInCommandHandler {
	uow := c.uowFactory.Create()
	return commands.NewLogInCommandHandler(
		uow.MerchantRepository(),
		uow.BuyerRepository(),
		c.sessionStore,
		c.sessionTTL,
	)
}

func (c *CompositionRoot) CreateLogOutCommandHandler() commands.LogOutCommandHandler {
	return commands.NewLogOutCommandHandler(c.sessionStore)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.policy, c.transitionMode)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateGetShopsQueryHandler() queries.GetShopsQueryHandler {
	return queries.NewGetShopsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMerchantDashboardQueryHandler() queries.GetMerchantDashboardQueryHandler {
	return queries.NewGetMerchantDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMerchantBuyerOrdersQueryHandler() queries.GetMerchantBuyerOrdersQueryHandler {
	return queries.NewGetMerchantBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBuyerOrdersQueryHandler() queries.GetBuyerOrdersQueryHandler {
	return queries.NewGetBuyerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessionStore, c.logger)
}

type FuncMerchantUoWFactory func() commands.MerchantUoW

func (f FuncMerchantUoWFactory) Create() commands.MerchantUoW {
	return f()
}

type FuncBuyerUoWFactory func() commands.BuyerUoW

func (f FuncBuyerUoWFactory) Create() commands.BuyerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

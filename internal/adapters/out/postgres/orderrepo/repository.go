package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Only the status column
// ever changes after creation, but the full row is written for
// simplicity.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForShop retrieves all orders placed at the given shop in
// insertion order, skipping excluded statuses.
func (r *GormOrderRepository) GetAllForShop(
	ctx context.Context, shopName string, exclude []order.Status,
) ([]*order.Order, error) {
	return r.list(ctx, "shop_name = ?", shopName, exclude)
}

// GetAllForBuyer retrieves all orders placed by the given buyer in
// insertion order, skipping excluded statuses.
func (r *GormOrderRepository) GetAllForBuyer(
	ctx context.Context, buyerUsername string, exclude []order.Status,
) ([]*order.Order, error) {
	return r.list(ctx, "buyer_username = ?", buyerUsername, exclude)
}

func (r *GormOrderRepository) list(
	ctx context.Context, cond string, arg string, exclude []order.Status,
) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Where(cond, arg)
	if len(exclude) > 0 {
		excluded := make([]int, 0, len(exclude))
		for _, s := range exclude {
			excluded = append(excluded, int(s))
		}
		query = query.Where("status NOT IN ?", excluded)
	}

	var dtos []OrderDTO
	if err := query.Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

package buyerrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/buyer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBuyerRepository implements BuyerRepository using GORM.
type GormBuyerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBuyerRepository creates a new GORM buyer repository.
func NewGormBuyerRepository(db *gorm.DB, tracker aggregateTracker) *GormBuyerRepository {
	return &GormBuyerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new buyer to the database.
func (r *GormBuyerRepository) Add(ctx context.Context, aggregate *buyer.Buyer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a buyer by ID.
func (r *GormBuyerRepository) Get(ctx context.Context, id kernel.UUID) (*buyer.Buyer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BuyerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("buyer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves a buyer by its unique username.
func (r *GormBuyerRepository) GetByUsername(ctx context.Context, username string) (*buyer.Buyer, error) {
	var dto BuyerDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}

	return toDomain(dto)
}

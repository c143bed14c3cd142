package orderrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

// Add saves a new order and its boxes.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update writes every order column, including a cleared trip link, and the
// delivery flag of each box.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for _, box := range dto.Boxes {
		if err := db.Model(&BoxDTO{}).
			Where("id = ?", box.ID).
			Update("was_delivered", box.WasDelivered).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its boxes by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withBoxes(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany loads the orders in one query and returns them in the order of ids.
// The rows are locked in id order until the transaction ends.
func (r *GormOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	if len(ids) == 0 {
		return []*order.Order{}, nil
	}

	var dtos []OrderDTO
	if err := r.withBoxes(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ANY(?::uuid[])", pq.Array(kernel.UUIDStrings(ids))).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]OrderDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID.String()] = dto
	}

	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id.String()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// GetAllByTrip retrieves the orders scheduled on a trip, locking their rows
// until the transaction ends.
func (r *GormOrderRepository) GetAllByTrip(ctx context.Context, tripID kernel.UUID) ([]*order.Order, error) {
	if err := tripID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.withBoxes(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("trip_id = ?", tripID.Bytes()).
		Order("id").
		Find(&dtos).Error; err != nil {
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

func (r *GormOrderRepository) withBoxes(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Boxes", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

package depotrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/depot"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDepotRepository implements DepotRepository using GORM.
type GormDepotRepository struct {
	db *gorm.DB
}

func NewGormDepotRepository(db *gorm.DB) *GormDepotRepository {
	return &GormDepotRepository{db: db}
}

func (r *GormDepotRepository) Add(ctx context.Context, aggregate *depot.Depot) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormDepotRepository) Get(ctx context.Context, id kernel.UUID) (*depot.Depot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DepotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("depot", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

package ports

import (
	"context"

	"logistics/internal/core/domain/model/depot"
	"logistics/internal/core/domain/model/kernel"
)

type DepotRepository interface {
	Add(ctx context.Context, aggregate *depot.Depot) error
	Get(ctx context.Context, id kernel.UUID) (*depot.Depot, error)
}

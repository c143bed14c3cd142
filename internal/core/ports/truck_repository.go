package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/truck"
)

type TruckRepository interface {
	Add(ctx context.Context, aggregate *truck.Truck) error
	Update(ctx context.Context, aggregate *truck.Truck) error
	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetForUpdate reads the truck and locks its row until the surrounding
	// transaction ends, so two trips cannot reserve the same truck.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*truck.Truck, error)
}

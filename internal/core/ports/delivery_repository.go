package ports

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
)

type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error
	Update(ctx context.Context, aggregate *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetPendingByTrip returns the trip's deliveries that have no delivered_at yet.
	GetPendingByTrip(ctx context.Context, tripID kernel.UUID) ([]*delivery.Delivery, error)
}

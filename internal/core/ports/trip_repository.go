package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trip"
)

type TripRepository interface {
	Add(ctx context.Context, aggregate *trip.Trip) error
	Update(ctx context.Context, aggregate *trip.Trip) error
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// GetForUpdate reads the trip and locks its row until the surrounding
	// transaction ends, so two lifecycle calls on one trip run one after the other.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*trip.Trip, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

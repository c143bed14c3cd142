// Package ports defines the contracts between the trip lifecycle core and its
// infrastructure: repositories, the unit of work, the geocoder, the road
// network provider and the route renderer.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their boxes.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status, trip link and box delivery flags.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany returns the orders in the order of ids. Any missing id fails the
	// whole call with an ObjectNotFoundError. The rows stay locked until the
	// surrounding transaction ends.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// GetAllByTrip returns every order linked to the trip and locks their rows
	// until the surrounding transaction ends.
	GetAllByTrip(ctx context.Context, tripID kernel.UUID) ([]*order.Order, error)
}

package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one lifecycle operation. Every
// repository it hands out writes through the transaction opened by Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	TripRepository() TripRepository
	TruckRepository() TruckRepository
	DepotRepository() DepotRepository
	DeliveryRepository() DeliveryRepository
}

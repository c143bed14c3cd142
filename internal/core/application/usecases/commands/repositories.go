// Package commands contains the trip lifecycle operations that modify state.
// Every handler runs its reads, checks and writes inside one unit of work so a
// failure part way leaves no order, trip, truck or delivery half updated.
package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	DepotRepoFactory interface {
		DepotRepository() ports.DepotRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// UoW spans every aggregate a lifecycle operation touches.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   trip, err := uow.TripRepository().Get(ctx, tripID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		TripRepoFactory
		TruckRepoFactory
		DepotRepoFactory
		DeliveryRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}

	// RoutePlanner sequences a trip's stops. Implemented by services.RoutePlanner.
	RoutePlanner interface {
		PlanRoute(ctx context.Context, origin kernel.Address, stops []kernel.Address) (services.RoutePlan, error)
	}
)

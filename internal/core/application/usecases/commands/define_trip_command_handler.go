package commands

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// DefineTripResult is the planned trip and the route that sized it.
type DefineTripResult struct {
	TripID kernel.UUID
	Plan   services.RoutePlan
}

// DefineTripCommandHandler creates a Planned trip from a selection of pending orders.
//
// The selection is all or nothing: one non-pending order fails the call before
// any route is planned, and nothing is written unless every step succeeds.
type DefineTripCommandHandler struct {
	uowFactory UoWFactory
	planner    RoutePlanner
}

func NewDefineTripCommandHandler(uowFactory UoWFactory, planner RoutePlanner) (*DefineTripCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if planner == nil {
		return nil, errs.NewValueIsRequiredError("planner")
	}
	return &DefineTripCommandHandler{uowFactory: uowFactory, planner: planner}, nil
}

func (h *DefineTripCommandHandler) Handle(ctx context.Context, command DefineTripCommand) (DefineTripResult, error) {
	if err := command.Validate(); err != nil {
		return DefineTripResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DefineTripResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DepotRepository().Get(ctx, command.DepotID())
	if err != nil {
		return DefineTripResult{}, err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetMany(ctx, command.OrderIDs())
	if err != nil {
		return DefineTripResult{}, err
	}
	if len(orders) == 0 {
		return DefineTripResult{}, errs.NewValueIsRequiredErrorWithCause("orderIDs", errors.New("no valid pending orders selected"))
	}

	var weightKg, volumeM3 float64
	stops := make([]kernel.Address, 0, len(orders))
	for _, o := range orders {
		if o.Status() != order.Pending {
			return DefineTripResult{}, errs.NewStatusError(
				"order",
				fmt.Sprintf("order %s is %s, only pending orders can be selected", o.ID(), o.Status()),
			)
		}
		weightKg += o.TotalWeightKg()
		volumeM3 += o.TotalVolumeM3()
		stops = append(stops, o.Destination())
	}

	plan, err := h.planner.PlanRoute(ctx, d.Address(), stops)
	if err != nil {
		return DefineTripResult{}, err
	}

	t, err := trip.NewTrip(kernel.NewUUID(), d.ID(), weightKg, volumeM3, plan.Route.TotalDistanceKm)
	if err != nil {
		return DefineTripResult{}, err
	}
	if err = uow.TripRepository().Add(ctx, t); err != nil {
		return DefineTripResult{}, err
	}

	for _, o := range orders {
		if err = o.Schedule(t.ID()); err != nil {
			return DefineTripResult{}, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return DefineTripResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return DefineTripResult{}, err
	}

	return DefineTripResult{TripID: t.ID(), Plan: plan}, nil
}

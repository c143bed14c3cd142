package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/pkg/errs"
)

// EndTripCommandHandler completes an in-transit trip.
//
// Checks run in this order: trip from the given depot, trip in transit, no
// unconfirmed delivery left. Every order of the trip is then swept to
// Delivered with all of its boxes, which is a no-op for orders already
// confirmed one by one, and the truck is freed.
type EndTripCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func NewEndTripCommandHandler(uowFactory UoWFactory) (*EndTripCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	return &EndTripCommandHandler{uowFactory: uowFactory, now: time.Now}, nil
}

func (h *EndTripCommandHandler) Handle(ctx context.Context, command EndTripCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tripRepo := uow.TripRepository()
	t, err := tripRepo.GetForUpdate(ctx, command.TripID())
	if err != nil {
		return err
	}
	if err = t.EnsureBelongsTo(command.DepotID()); err != nil {
		return err
	}
	if t.Status() != trip.InTransit {
		return errs.NewStatusError("trip", fmt.Sprintf("%s trip cannot be ended, it must be in transit", t.Status()))
	}

	pending, err := uow.DeliveryRepository().GetPendingByTrip(ctx, t.ID())
	if err != nil {
		return err
	}
	if len(pending) > 0 {
		ids := make([]kernel.UUID, 0, len(pending))
		for _, d := range pending {
			ids = append(ids, d.ID())
		}
		return errs.NewRemainingDeliveriesError(kernel.UUIDStrings(ids))
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllByTrip(ctx, t.ID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err = o.MarkDelivered(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = t.Complete(h.now()); err != nil {
		return err
	}
	if err = tripRepo.Update(ctx, t); err != nil {
		return err
	}

	if t.Truck() == nil {
		return errors.New("in transit trip has no truck")
	}
	truckRepo := uow.TruckRepository()
	tr, err := truckRepo.Get(ctx, *t.Truck())
	if err != nil {
		return err
	}
	tr.Release()
	if err = truckRepo.Update(ctx, tr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

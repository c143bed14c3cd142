package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// StartTripCommandHandler loads a planned trip on a truck.
//
// A Completed or Cancelled trip fails with a StatusError before anything else
// is checked. Otherwise checks run in this order: truck not already active,
// cargo within the truck's payload and volume, trip from the given depot, trip
// still planned. The truck, trip and order rows stay locked until the
// transaction ends so a concurrent start cannot reserve or ship them too.
type StartTripCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func NewStartTripCommandHandler(uowFactory UoWFactory) (*StartTripCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	return &StartTripCommandHandler{uowFactory: uowFactory, now: time.Now}, nil
}

func (h *StartTripCommandHandler) Handle(ctx context.Context, command StartTripCommand) error {
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

	// trip before truck, the same order every lifecycle handler locks in
	tripRepo := uow.TripRepository()
	t, err := tripRepo.GetForUpdate(ctx, command.TripID())
	if err != nil {
		return err
	}
	truckRepo := uow.TruckRepository()
	tr, err := truckRepo.GetForUpdate(ctx, command.TruckID())
	if err != nil {
		return err
	}

	if t.Status().IsTerminal() {
		_, err = t.Status().Start()
		return err
	}
	if tr.IsActive() {
		return errs.NewStatusError("truck", "already being used")
	}
	if err = tr.CanCarry(t.TotalWeightKg(), t.TotalVolumeM3()); err != nil {
		return err
	}
	if err = t.EnsureBelongsTo(command.DepotID()); err != nil {
		return err
	}
	if _, err = t.Status().Start(); err != nil {
		return err
	}

	carbon, err := tr.CarbonFor(t.DistanceKm())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()
	orders, err := orderRepo.GetAllByTrip(ctx, t.ID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err = o.Ship(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		d, err := delivery.NewDelivery(kernel.NewUUID(), t.ID(), o.StoreID(), o.ID())
		if err != nil {
			return err
		}
		if err = deliveryRepo.Add(ctx, d); err != nil {
			return err
		}
	}

	if err = t.Start(tr.ID(), carbon, h.now()); err != nil {
		return err
	}
	if err = tripRepo.Update(ctx, t); err != nil {
		return err
	}

	if err = tr.Reserve(); err != nil {
		return err
	}
	if err = truckRepo.Update(ctx, tr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

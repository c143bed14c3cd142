package commands

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/trip"
	"logistics/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler marks a delivery done and its order Delivered.
//
// Checks run in this order: trip in transit, truck assigned to the trip,
// delivery part of the trip.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

func NewConfirmDeliveryCommandHandler(uowFactory UoWFactory) (*ConfirmDeliveryCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	return &ConfirmDeliveryCommandHandler{uowFactory: uowFactory, now: time.Now}, nil
}

func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, command ConfirmDeliveryCommand) error {
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

	t, err := uow.TripRepository().GetForUpdate(ctx, command.TripID())
	if err != nil {
		return err
	}
	if _, err = uow.TruckRepository().Get(ctx, command.TruckID()); err != nil {
		return err
	}
	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, command.DeliveryID())
	if err != nil {
		return err
	}

	if t.Status() != trip.InTransit {
		return errs.NewStatusError("trip", fmt.Sprintf("%s trip cannot receive deliveries, it must be in transit", t.Status()))
	}
	if !t.IsAssignedTo(command.TruckID()) {
		return errs.NewBelongError("truck", "trip")
	}
	if err = d.EnsureBelongsTo(t.ID()); err != nil {
		return err
	}

	d.Confirm(h.now())
	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, d.OrderID())
	if err != nil {
		return err
	}
	if err = o.MarkDelivered(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

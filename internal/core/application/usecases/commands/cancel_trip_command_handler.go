package commands

import (
	"context"

	"logistics/internal/pkg/errs"
)

// CancelTripCommandHandler cancels a planned trip and returns its orders to Pending.
// Planned trips have no deliveries yet, so none are cleaned up.
type CancelTripCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelTripCommandHandler(uowFactory UoWFactory) (*CancelTripCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	return &CancelTripCommandHandler{uowFactory: uowFactory}, nil
}

func (h *CancelTripCommandHandler) Handle(ctx context.Context, command CancelTripCommand) error {
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
	if err = t.Cancel(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllByTrip(ctx, t.ID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if err = o.Unschedule(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = tripRepo.Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

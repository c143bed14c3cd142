package commands

import (
	"context"

	"logistics/internal/pkg/errs"
)

// DeleteTripCommandHandler removes a planned or cancelled trip. Orders of a
// planned trip go back to Pending first. Started trips are kept for history.
type DeleteTripCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteTripCommandHandler(uowFactory UoWFactory) (*DeleteTripCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	return &DeleteTripCommandHandler{uowFactory: uowFactory}, nil
}

func (h *DeleteTripCommandHandler) Handle(ctx context.Context, command DeleteTripCommand) error {
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
	if err = t.EnsureDeletable(); err != nil {
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

	if err = tripRepo.Delete(ctx, t.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrStartTripCommandIsNotConstructed = errors.New(
	"StartTripCommand must be created via NewStartTripCommand constructor",
)

// StartTripCommand dispatches a planned trip with a truck from the trip's depot.
type StartTripCommand struct {
	truckID kernel.UUID
	tripID  kernel.UUID
	depotID kernel.UUID

	guard guard.ConstructorGuard
}

func NewStartTripCommand(truckID, tripID, depotID kernel.UUID) (StartTripCommand, error) {
	if err := errors.Join(
		requireID("truckID", truckID),
		requireID("tripID", tripID),
		requireID("depotID", depotID),
	); err != nil {
		return StartTripCommand{}, err
	}

	return StartTripCommand{
		truckID: truckID,
		tripID:  tripID,
		depotID: depotID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c StartTripCommand) Validate() error {
	return c.guard.Validate(ErrStartTripCommandIsNotConstructed)
}

func (c StartTripCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c StartTripCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c StartTripCommand) DepotID() kernel.UUID {
	return c.depotID
}

func requireID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}

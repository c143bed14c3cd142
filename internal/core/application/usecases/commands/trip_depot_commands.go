package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrEndTripCommandIsNotConstructed = errors.New(
		"EndTripCommand must be created via NewEndTripCommand constructor",
	)
	ErrCancelTripCommandIsNotConstructed = errors.New(
		"CancelTripCommand must be created via NewCancelTripCommand constructor",
	)
	ErrDeleteTripCommandIsNotConstructed = errors.New(
		"DeleteTripCommand must be created via NewDeleteTripCommand constructor",
	)
)

// EndTripCommand closes an in-transit trip of a depot once every delivery is confirmed.
type EndTripCommand struct {
	tripID  kernel.UUID
	depotID kernel.UUID

	guard guard.ConstructorGuard
}

func NewEndTripCommand(tripID, depotID kernel.UUID) (EndTripCommand, error) {
	if err := errors.Join(requireID("tripID", tripID), requireID("depotID", depotID)); err != nil {
		return EndTripCommand{}, err
	}
	return EndTripCommand{tripID: tripID, depotID: depotID, guard: guard.NewConstructorGuard()}, nil
}

func (c EndTripCommand) Validate() error {
	return c.guard.Validate(ErrEndTripCommandIsNotConstructed)
}

func (c EndTripCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c EndTripCommand) DepotID() kernel.UUID {
	return c.depotID
}

// CancelTripCommand withdraws a planned trip of a depot and frees its orders.
type CancelTripCommand struct {
	tripID  kernel.UUID
	depotID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelTripCommand(tripID, depotID kernel.UUID) (CancelTripCommand, error) {
	if err := errors.Join(requireID("tripID", tripID), requireID("depotID", depotID)); err != nil {
		return CancelTripCommand{}, err
	}
	return CancelTripCommand{tripID: tripID, depotID: depotID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelTripCommand) Validate() error {
	return c.guard.Validate(ErrCancelTripCommandIsNotConstructed)
}

func (c CancelTripCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c CancelTripCommand) DepotID() kernel.UUID {
	return c.depotID
}

// DeleteTripCommand removes a trip that never left the depot.
type DeleteTripCommand struct {
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteTripCommand(tripID kernel.UUID) (DeleteTripCommand, error) {
	if err := requireID("tripID", tripID); err != nil {
		return DeleteTripCommand{}, err
	}
	return DeleteTripCommand{tripID: tripID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteTripCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTripCommandIsNotConstructed)
}

func (c DeleteTripCommand) TripID() kernel.UUID {
	return c.tripID
}

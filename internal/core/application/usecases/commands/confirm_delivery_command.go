package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand records that the truck running a trip dropped off one order.
type ConfirmDeliveryCommand struct {
	tripID     kernel.UUID
	truckID    kernel.UUID
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(tripID, truckID, deliveryID kernel.UUID) (ConfirmDeliveryCommand, error) {
	if err := errors.Join(
		requireID("tripID", tripID),
		requireID("truckID", truckID),
		requireID("deliveryID", deliveryID),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		tripID:     tripID,
		truckID:    truckID,
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c ConfirmDeliveryCommand) TruckID() kernel.UUID {
	return c.truckID
}

func (c ConfirmDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

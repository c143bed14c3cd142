// Package delivery provides the Delivery entity: one leg of a started trip,
// linking the trip to a store and the order dropped there.
//
// A delivery is done once DeliveredAt is set. Deliveries are created when a
// trip starts, one per order on the trip.
package delivery

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

type Delivery struct {
	id          kernel.UUID
	tripID      kernel.UUID
	storeID     kernel.UUID
	orderID     kernel.UUID
	deliveredAt *time.Time

	isConstructed bool
}

// NewDelivery creates an unconfirmed delivery.
func NewDelivery(id, tripID, storeID, orderID kernel.UUID) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		requireID("tripID", tripID),
		requireID("storeID", storeID),
		requireID("orderID", orderID),
	); err != nil {
		return nil, err
	}
	return &Delivery{
		id:            id,
		tripID:        tripID,
		storeID:       storeID,
		orderID:       orderID,
		isConstructed: true,
	}, nil
}

// RestoreDelivery rebuilds a delivery read from storage.
func RestoreDelivery(id, tripID, storeID, orderID kernel.UUID, deliveredAt *time.Time) *Delivery {
	return &Delivery{
		id:            id,
		tripID:        tripID,
		storeID:       storeID,
		orderID:       orderID,
		deliveredAt:   deliveredAt,
		isConstructed: true,
	}
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) TripID() kernel.UUID {
	return d.tripID
}

func (d *Delivery) StoreID() kernel.UUID {
	return d.storeID
}

func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

func (d *Delivery) IsDelivered() bool {
	return d.deliveredAt != nil
}

// EnsureBelongsTo fails with a BelongError when the delivery is a leg of another trip.
func (d *Delivery) EnsureBelongsTo(tripID kernel.UUID) error {
	if !d.tripID.IsEqual(tripID) {
		return errs.NewBelongError("delivery", "trip")
	}
	return nil
}

// Confirm records the drop-off time. A confirmed delivery keeps its first timestamp.
func (d *Delivery) Confirm(now time.Time) {
	if d.deliveredAt != nil {
		return
	}
	d.deliveredAt = &now
}

func requireID(param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	return nil
}

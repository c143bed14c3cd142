package order

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a store's shipment. It is the aggregate root for its boxes and
// keeps its cargo totals equal to the sum of the boxes.
type Order struct {
	id          kernel.UUID
	storeID     kernel.UUID
	destination kernel.Address

	totalWeightKg float64
	totalVolumeM3 float64
	boxes         []*Box

	status Status
	tripID *kernel.UUID

	isConstructed bool
}

// NewOrder creates a Pending order for a store. The destination is the store's
// address. Totals are computed from boxes.
func NewOrder(id, storeID kernel.UUID, destination kernel.Address, boxes []*Box) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStoreID(storeID),
		order.setDestination(destination),
		order.setBoxes(boxes),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order read from storage. Totals are taken as stored.
func RestoreOrder(
	id, storeID kernel.UUID,
	destination kernel.Address,
	totalWeightKg, totalVolumeM3 float64,
	status Status,
	tripID *kernel.UUID,
	boxes []*Box,
) (*Order, error) {
	if err := errors.Join(status.Validate(), status.ValidateCanHaveTrip(tripID != nil)); err != nil {
		return nil, err
	}
	return &Order{
		id:            id,
		storeID:       storeID,
		destination:   destination,
		totalWeightKg: totalWeightKg,
		totalVolumeM3: totalVolumeM3,
		boxes:         boxes,
		status:        status,
		tripID:        tripID,
		isConstructed: true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// Destination returns the address of the store the order is delivered to.
func (o *Order) Destination() kernel.Address {
	return o.destination
}

func (o *Order) TotalWeightKg() float64 {
	return o.totalWeightKg
}

func (o *Order) TotalVolumeM3() float64 {
	return o.totalVolumeM3
}

func (o *Order) TotalBoxes() int {
	return len(o.boxes)
}

func (o *Order) Boxes() []*Box {
	return o.boxes
}

func (o *Order) Status() Status {
	return o.status
}

// Trip returns the trip the order is scheduled on, nil while Pending.
func (o *Order) Trip() *kernel.UUID {
	return o.tripID
}

// Schedule links a Pending order to a planned trip.
func (o *Order) Schedule(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Schedule()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.tripID = &tripID
	return nil
}

// Ship marks a Scheduled order as loaded on a started trip.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// MarkDelivered completes the order and flags every box as delivered.
// Calling it on a Delivered order is a no-op.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	for _, b := range o.boxes {
		b.markDelivered()
	}
	return nil
}

// Unschedule returns a Scheduled order to Pending and clears its trip link.
func (o *Order) Unschedule() error {
	newStatus, err := o.status.Unschedule()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.tripID = nil
	return nil
}

// Cancel withdraws a Pending order.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.tripID = nil
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("storeID", err)
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setBoxes(boxes []*Box) error {
	var weight, volume float64
	for i, b := range boxes {
		if err := b.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("boxes[%d]", i), err)
		}
		weight += b.PayloadKg()
		volume += b.VolumeM3()
	}
	o.boxes = boxes
	o.totalWeightKg = weight
	o.totalVolumeM3 = volume
	return nil
}

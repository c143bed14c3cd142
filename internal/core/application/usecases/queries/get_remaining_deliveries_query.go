package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetRemainingDeliveriesQueryIsNotConstructed = errors.New(
		"GetRemainingDeliveriesQuery must be created via NewGetRemainingDeliveriesQuery constructor",
	)
)

// GetRemainingDeliveriesQuery lists the deliveries of a trip that are not
// confirmed yet. A trip can only be ended once the list is empty.
type GetRemainingDeliveriesQuery struct {
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetRemainingDeliveriesQuery(tripID kernel.UUID) (GetRemainingDeliveriesQuery, error) {
	if err := tripID.Validate(); err != nil {
		return GetRemainingDeliveriesQuery{}, errs.NewValueIsRequiredErrorWithCause("tripID", err)
	}
	return GetRemainingDeliveriesQuery{tripID: tripID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRemainingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetRemainingDeliveriesQueryIsNotConstructed)
}

func (q GetRemainingDeliveriesQuery) TripID() kernel.UUID {
	return q.tripID
}

// RemainingDeliveryResponse is an unconfirmed delivery and where it goes.
type RemainingDeliveryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	StoreID     kernel.UUID
	Street      string
	Number      string
	City        string
	State       string
	TotalBoxes  int
	TotalWeight float64
}

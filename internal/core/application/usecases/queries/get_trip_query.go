// Package queries contains the read side of the trip lifecycle. Queries read
// straight from the database into flat read models and never change state.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetTripQueryIsNotConstructed = errors.New(
		"GetTripQuery must be created via NewGetTripQuery constructor",
	)
)

// GetTripQuery reads one trip.
//
// Example:
//
//	query, err := NewGetTripQuery(tripID)
//	if err != nil {
//	    return err
//	}
//	trip, err := handler.Handle(ctx, query)
type GetTripQuery struct {
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTripQuery(tripID kernel.UUID) (GetTripQuery, error) {
	if err := tripID.Validate(); err != nil {
		return GetTripQuery{}, errs.NewValueIsRequiredErrorWithCause("tripID", err)
	}
	return GetTripQuery{tripID: tripID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTripQuery) Validate() error {
	return q.guard.Validate(ErrGetTripQueryIsNotConstructed)
}

func (q GetTripQuery) TripID() kernel.UUID {
	return q.tripID
}

// TripResponse is the read model of a trip. Status is the stored trip code
// (Plan, InTr, Comp, Canc).
type TripResponse struct {
	ID            kernel.UUID
	DepotID       kernel.UUID
	TruckID       *kernel.UUID
	Status        string
	TotalWeightKg float64
	TotalVolumeM3 float64
	DistanceKm    float64
	CarbonKgCO2   *float64
	DepartureAt   *time.Time
	ArrivalAt     *time.Time
	TotalOrders   int
}

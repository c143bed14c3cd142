package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var (
	ErrSimulateTripQueryIsNotConstructed = errors.New(
		"SimulateTripQuery must be created via NewSimulateTripQuery constructor",
	)
)

// SimulateTripQuery asks how long a trip would take with a given truck in a
// given traffic condition, departing now.
type SimulateTripQuery struct {
	tripID  kernel.UUID
	truckID kernel.UUID
	traffic services.Traffic

	guard guard.ConstructorGuard
}

// NewSimulateTripQuery fails with a StatusError when traffic is not light,
// medium or heavy.
func NewSimulateTripQuery(tripID, truckID kernel.UUID, traffic string) (SimulateTripQuery, error) {
	t, trafficErr := services.ParseTraffic(traffic)
	if err := errors.Join(tripID.Validate(), truckID.Validate(), trafficErr); err != nil {
		return SimulateTripQuery{}, err
	}
	return SimulateTripQuery{
		tripID:  tripID,
		truckID: truckID,
		traffic: t,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q SimulateTripQuery) Validate() error {
	return q.guard.Validate(ErrSimulateTripQueryIsNotConstructed)
}

func (q SimulateTripQuery) TripID() kernel.UUID {
	return q.tripID
}

func (q SimulateTripQuery) TruckID() kernel.UUID {
	return q.truckID
}

func (q SimulateTripQuery) Traffic() services.Traffic {
	return q.traffic
}

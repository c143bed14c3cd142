package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// SimulateTripQueryHandler loads the trip and the truck and runs the trip
// simulator. Nothing is written.
type SimulateTripQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	simulator  services.TripSimulator
	now        func() time.Time
}

func NewSimulateTripQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	simulator services.TripSimulator,
) (*SimulateTripQueryHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	return &SimulateTripQueryHandler{
		uowFactory: uowFactory,
		simulator:  simulator,
		now:        time.Now,
	}, nil
}

func (h *SimulateTripQueryHandler) Handle(ctx context.Context, query SimulateTripQuery) (services.Simulation, error) {
	if err := query.Validate(); err != nil {
		return services.Simulation{}, err
	}

	// Reads only, so no transaction is opened.
	uow := h.uowFactory.Create()

	t, err := uow.TripRepository().Get(ctx, query.TripID())
	if err != nil {
		return services.Simulation{}, err
	}

	tr, err := uow.TruckRepository().Get(ctx, query.TruckID())
	if err != nil {
		return services.Simulation{}, err
	}

	return h.simulator.Simulate(t, tr, query.Traffic(), h.now())
}

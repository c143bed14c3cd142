package metrics

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
)

// RoutePlanner is the planning contract the instrumented planner decorates.
type RoutePlanner interface {
	PlanRoute(ctx context.Context, origin kernel.Address, stops []kernel.Address) (services.RoutePlan, error)
}

// InstrumentedRoutePlanner records the duration and outcome of every plan.
type InstrumentedRoutePlanner struct {
	next    RoutePlanner
	metrics *Metrics
	now     func() time.Time
}

func NewInstrumentedRoutePlanner(next RoutePlanner, m *Metrics) *InstrumentedRoutePlanner {
	return &InstrumentedRoutePlanner{next: next, metrics: m, now: time.Now}
}

func (p *InstrumentedRoutePlanner) PlanRoute(
	ctx context.Context,
	origin kernel.Address,
	stops []kernel.Address,
) (services.RoutePlan, error) {
	started := p.now()
	plan, err := p.next.PlanRoute(ctx, origin, stops)
	p.metrics.RecordRoutePlanning(err == nil, p.now().Sub(started))
	return plan, err
}

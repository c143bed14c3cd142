package metrics

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trip"
	"logistics/internal/core/domain/services"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlanner struct {
	err error
}

func (s stubPlanner) PlanRoute(context.Context, kernel.Address, []kernel.Address) (services.RoutePlan, error) {
	return services.RoutePlan{}, s.err
}

func TestMetrics_AggregatesCommitted(t *testing.T) {
	m := New("")

	planned, err := trip.NewTrip(kernel.NewUUID(), kernel.NewUUID(), 10, 0.1, 12.5)
	require.NoError(t, err)
	started, err := trip.NewTrip(kernel.NewUUID(), kernel.NewUUID(), 10, 0.1, 12.5)
	require.NoError(t, err)
	require.NoError(t, started.Start(kernel.NewUUID(), 9.38, time.Now()))

	pending, err := delivery.NewDelivery(kernel.NewUUID(), started.ID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	confirmed, err := delivery.NewDelivery(kernel.NewUUID(), started.ID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	confirmed.Confirm(time.Now())

	m.AggregatesCommitted(t.Context(), []any{planned, started, pending, confirmed, "ignored"})

	assert.InDelta(t, 1, testutil.ToFloat64(m.TripTransitions.WithLabelValues("Planned")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TripTransitions.WithLabelValues("InTransit")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.DeliveriesConfirmed), 0)
}

func TestInstrumentedRoutePlanner(t *testing.T) {
	m := New("")

	_, err := NewInstrumentedRoutePlanner(stubPlanner{}, m).PlanRoute(t.Context(), kernel.Address{}, nil)
	require.NoError(t, err)

	boom := errors.New("geocoder down")
	_, err = NewInstrumentedRoutePlanner(stubPlanner{err: boom}, m).PlanRoute(t.Context(), kernel.Address{}, nil)
	require.ErrorIs(t, err, boom)

	assert.Equal(t, 2, testutil.CollectAndCount(m.RoutePlanningDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("logistics")
	m.RecordHTTPRequest("GET", "/api/v1/trips/:id", 200, 15*time.Millisecond)
	m.RecordRoadGraphsEvicted(3)
	m.SetCircuitBreakerState("nominatim", 2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `logistics_http_requests_total{method="GET",path="/api/v1/trips/:id",status="200"} 1`)
	assert.Contains(t, body, "logistics_road_graphs_evicted_total 3")
	assert.Contains(t, body, `logistics_circuit_breaker_state{name="nominatim"} 2`)
}

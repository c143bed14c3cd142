// Package metrics exposes the service's Prometheus metrics: HTTP traffic,
// committed lifecycle transitions, route planning latency and the geocoder
// circuit breaker state.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/trip"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const DefaultNamespace = "logistics"

// Metrics holds every collector of the service on its own registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	TripTransitions     *prometheus.CounterVec
	OrderTransitions    *prometheus.CounterVec
	DeliveriesConfirmed prometheus.Counter

	RoutePlanningDuration *prometheus.HistogramVec
	RoadGraphsEvicted     prometheus.Counter

	CircuitBreakerState *prometheus.GaugeVec
}

func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{registry: registry}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	m.TripTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trip_transitions_total",
			Help:      "Committed trip writes by resulting status",
		},
		[]string{"status"},
	)

	m.OrderTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Committed order writes by resulting status",
		},
		[]string{"status"},
	)

	m.DeliveriesConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_confirmed_total",
			Help:      "Committed delivery confirmations",
		},
	)

	// planning includes geocoding and road graph downloads, so buckets reach minutes
	m.RoutePlanningDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "route_planning_duration_seconds",
			Help:      "Route planning duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"outcome"},
	)

	m.RoadGraphsEvicted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "road_graphs_evicted_total",
			Help:      "Road graphs dropped from the cache after their TTL",
		},
	)

	m.CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.TripTransitions,
		m.OrderTransitions,
		m.DeliveriesConfirmed,
		m.RoutePlanningDuration,
		m.RoadGraphsEvicted,
		m.CircuitBreakerState,
	)

	return m
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (m *Metrics) RecordRoutePlanning(success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	m.RoutePlanningDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *Metrics) RecordRoadGraphsEvicted(count int) {
	m.RoadGraphsEvicted.Add(float64(count))
}

func (m *Metrics) SetCircuitBreakerState(name string, state int) {
	m.CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// AggregatesCommitted counts the trips, orders and confirmed deliveries of a
// committed unit of work.
func (m *Metrics) AggregatesCommitted(_ context.Context, aggregates []any) {
	for _, a := range aggregates {
		switch v := a.(type) {
		case *trip.Trip:
			m.TripTransitions.WithLabelValues(v.Status().String()).Inc()
		case *order.Order:
			m.OrderTransitions.WithLabelValues(v.Status().String()).Inc()
		case *delivery.Delivery:
			if v.IsDelivered() {
				m.DeliveriesConfirmed.Inc()
			}
		}
	}
}

package geocoding

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

var ErrCircuitOpen = errors.New("geocoder circuit breaker is open")

const (
	defaultMaxRequests       uint32        = 3
	defaultInterval          time.Duration = 60 * time.Second
	defaultOpenTimeout       time.Duration = 30 * time.Second
	defaultFailureThreshold  uint32        = 5
	defaultFailureRatio      float64       = 0.5
	defaultMinRequestsToTrip uint32        = 10
)

// BreakerConfig holds the circuit breaker settings of the geocoder.
type BreakerConfig struct {
	Name              string
	MaxRequests       uint32        // requests allowed while half-open
	Interval          time.Duration // closed-state counter reset period, 0 never resets
	Timeout           time.Duration // open to half-open delay
	FailureThreshold  uint32        // consecutive failures that open the circuit
	FailureRatio      float64
	MinRequestsToTrip uint32

	// OnStateChange is called after every transition when set.
	OnStateChange func(name string, to gobreaker.State)
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:              "nominatim",
		MaxRequests:       defaultMaxRequests,
		Interval:          defaultInterval,
		Timeout:           defaultOpenTimeout,
		FailureThreshold:  defaultFailureThreshold,
		FailureRatio:      defaultFailureRatio,
		MinRequestsToTrip: defaultMinRequestsToTrip,
	}
}

func newBreaker(cfg BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.ConsecutiveFailures >= cfg.FailureThreshold {
				return true
			}
			if counts.Requests >= cfg.MinRequestsToTrip {
				ratio := float64(counts.TotalFailures) / float64(counts.Requests)
				return ratio >= cfg.FailureRatio
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
			if cfg.OnStateChange != nil {
				cfg.OnStateChange(name, to)
			}
		},
	})
}

// execute runs fn through the breaker and maps its rejections to ErrCircuitOpen.
func execute(cb *gobreaker.CircuitBreaker, fn func() (interface{}, error)) (interface{}, error) {
	result, err := cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %s", ErrCircuitOpen, cb.Name())
	}
	return result, err
}

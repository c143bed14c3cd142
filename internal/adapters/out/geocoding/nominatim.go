// Package geocoding resolves addresses to coordinates through a Nominatim
// compatible search API. Calls go through a circuit breaker and transient
// failures are retried with exponential backoff.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/sony/gobreaker"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org"
	DefaultUserAgent = "logistics-trip-planner"
	DefaultTimeout   = 20 * time.Second

	defaultMaxAttempts    = 4
	defaultInitialBackoff = 200 * time.Millisecond
)

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	MaxAttempts    int
	InitialBackoff time.Duration

	Breaker BreakerConfig
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Body)
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimGeocoder implements ports.Geocoder. It is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string

	maxAttempts    int
	initialBackoff time.Duration

	cb     *gobreaker.CircuitBreaker
	logger *slog.Logger
}

func NewNominatimGeocoder(cfg Config, logger *slog.Logger) (*NominatimGeocoder, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = defaultInitialBackoff
	}
	if cfg.Breaker.Name == "" {
		cfg.Breaker = DefaultBreakerConfig()
	}

	logger = logger.With("component", "geocoder")
	return &NominatimGeocoder{
		session:        &http.Client{Timeout: cfg.Timeout},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:      cfg.UserAgent,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		cb:             newBreaker(cfg.Breaker, logger),
		logger:         logger,
	}, nil
}

// Geocode returns the best match for query, or nil when nothing matches.
func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (*kernel.Coordinates, error) {
	query = strings.Join(strings.Fields(query), " ")
	if query == "" {
		return nil, errs.NewValueIsRequiredError("query")
	}

	result, err := execute(g.cb, func() (interface{}, error) {
		return g.search(ctx, query)
	})
	if err != nil {
		g.logger.WarnContext(ctx, "geocode failed", "query", query, "error", err)
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}

	results := result.([]searchResult)
	if len(results) == 0 {
		g.logger.DebugContext(ctx, "no geocode match", "query", query)
		return nil, nil
	}

	c, err := toCoordinates(results[0])
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}
	return &c, nil
}

func (g *NominatimGeocoder) search(ctx context.Context, query string) ([]searchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	endpoint := g.baseURL + "/search?" + params.Encode()

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", g.userAgent)
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return results, nil
}

func (g *NominatimGeocoder) do(req *http.Request) (*http.Response, error) {
	resp, err := g.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries network errors, 429 and 5xx responses with exponential
// backoff while respecting context cancellation.
func (g *NominatimGeocoder) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	backoff := g.initialBackoff

	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, err
		}

		resp, err := g.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isTransient(err) || attempt == g.maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}

	return nil, lastErr
}

func isTransient(err error) bool {
	var he *httpStatusError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func toCoordinates(r searchResult) (kernel.Coordinates, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return kernel.Coordinates{}, errs.NewValueIsInvalidErrorWithCause("lat", err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return kernel.Coordinates{}, errs.NewValueIsInvalidErrorWithCause("lon", err)
	}
	return kernel.NewCoordinates(lon, lat)
}

// Package http serves the trip lifecycle API with echo. Routes, parameter
// binding and payload types come from the OpenAPI document in
// internal/generated/servers; requests are checked against that document
// before they reach the use cases.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// RequestRecorder receives one observation per served request.
type RequestRecorder interface {
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
}

type RouterConfig struct {
	Logger *slog.Logger

	// Metrics and MetricsHandler are optional. MetricsHandler is served at /metrics.
	Metrics        RequestRecorder
	MetricsHandler http.Handler
}

// NewRouter builds the echo instance serving server.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	if server == nil {
		return nil, errs.NewValueIsRequiredError("server")
	}
	if cfg.Logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(swagger); err != nil {
		return nil, err
	}
	validation, err := openAPIValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		e.Use(requestMetrics(cfg.Metrics))
	}
	e.Use(validation)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(cfg.MetricsHandler))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
			}
			if v.Error != nil {
				logger.WarnContext(c.Request().Context(), "request", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}

func requestMetrics(recorder RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			started := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			recorder.RecordHTTPRequest(c.Request().Method, path, c.Response().Status, time.Since(started))
			// the response is already committed; pass err on so the logger sees it
			return err
		}
	}
}

// openAPIValidator rejects requests that do not match the API document.
// Paths outside the document pass through untouched.
func openAPIValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// match on path only, whatever host the service runs behind
	swagger.Servers = nil

	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) {
					return next(c)
				}
				if errors.Is(err, routers.ErrMethodNotAllowed) {
					return echo.NewHTTPError(http.StatusMethodNotAllowed, err.Error())
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, requestErrorMessage(err))
			}
			return next(c)
		}
	}, nil
}

func requestErrorMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}
	return err.Error()
}

type swaggerDoc struct {
	doc string
}

func (s swaggerDoc) ReadDoc() string {
	return s.doc
}

// registerSwaggerDoc publishes the API document to the swagger UI. Registering
// twice, as tests building several routers do, keeps the first document.
func registerSwaggerDoc(swagger *openapi3.T) error {
	if _, err := swag.ReadDoc(swag.Name); err == nil {
		return nil
	}
	raw, err := json.Marshal(swagger)
	if err != nil {
		return err
	}
	swag.Register(swag.Name, swaggerDoc{doc: string(raw)})
	return nil
}

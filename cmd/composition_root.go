package cmd

import (
	"log/slog"
	"net/http"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/geocoding"
	"logistics/internal/adapters/out/metrics"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/rendering"
	"logistics/internal/adapters/out/roadnetwork"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/sony/gobreaker"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	metrics    *metrics.Metrics
	uowFactory *postgres.GormUnitOfWorkFactory

	network *roadnetwork.CachedNetwork
	planner commands.RoutePlanner
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	m := metrics.New(metrics.DefaultNamespace)

	breaker := geocoding.DefaultBreakerConfig()
	breaker.OnStateChange = func(name string, to gobreaker.State) {
		m.SetCircuitBreakerState(name, int(to))
	}
	geocoder, err := geocoding.NewNominatimGeocoder(geocoding.Config{
		BaseURL:   configs.GeocoderURL,
		UserAgent: configs.GeocoderUserAgent,
		Timeout:   configs.GeocoderTimeout,
		Breaker:   breaker,
	}, logger)
	if err != nil {
		return nil, err
	}

	overpass, err := roadnetwork.NewOverpassClient(configs.OverpassURL, 0)
	if err != nil {
		return nil, err
	}
	network, err := roadnetwork.NewCachedNetwork(overpass, configs.RoadGraphTTL, logger)
	if err != nil {
		return nil, err
	}

	planner, err := services.NewRoutePlanner(geocoder, network, rendering.NewGeoJSONRenderer())
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		logger:     logger,
		metrics:    m,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, m),
		network:    network,
		planner:    metrics.NewInstrumentedRoutePlanner(planner, m),
	}, nil
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateDefineTripCommandHandler() (*commands.DefineTripCommandHandler, error) {
	return commands.NewDefineTripCommandHandler(c.commandUoWFactory(), c.planner)
}

func (c *CompositionRoot) CreateStartTripCommandHandler() (*commands.StartTripCommandHandler, error) {
	return commands.NewStartTripCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateEndTripCommandHandler() (*commands.EndTripCommandHandler, error) {
	return commands.NewEndTripCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateCancelTripCommandHandler() (*commands.CancelTripCommandHandler, error) {
	return commands.NewCancelTripCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateDeleteTripCommandHandler() (*commands.DeleteTripCommandHandler, error) {
	return commands.NewDeleteTripCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() (*commands.ConfirmDeliveryCommandHandler, error) {
	return commands.NewConfirmDeliveryCommandHandler(c.commandUoWFactory())
}

func (c *CompositionRoot) CreateGetTripQueryHandler() queries.GetTripQueryHandler {
	return queries.NewGetTripQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTripsByStatusQueryHandler() queries.GetTripsByStatusQueryHandler {
	return queries.NewGetTripsByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRemainingDeliveriesQueryHandler() queries.GetRemainingDeliveriesQueryHandler {
	return queries.NewGetRemainingDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSimulateTripQueryHandler() (*queries.SimulateTripQueryHandler, error) {
	return queries.NewSimulateTripQueryHandler(c.uowFactory, services.NewTripSimulator())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewRoadGraphEvictionJob(c.network, c.metrics, c.configs.RoadGraphEvictionSchedule, c.logger),
	)
}

// CreateHTTPHandler wires every use case behind the echo router.
func (c *CompositionRoot) CreateHTTPHandler() (*echo.Echo, error) {
	handlers := httpin.Handlers{
		GetTrip:                c.CreateGetTripQueryHandler(),
		GetTripsByStatus:       c.CreateGetTripsByStatusQueryHandler(),
		GetRemainingDeliveries: c.CreateGetRemainingDeliveriesQueryHandler(),
	}

	var err error
	if handlers.DefineTrip, err = c.CreateDefineTripCommandHandler(); err != nil {
		return nil, err
	}
	if handlers.StartTrip, err = c.CreateStartTripCommandHandler(); err != nil {
		return nil, err
	}
	if handlers.EndTrip, err = c.CreateEndTripCommandHandler(); err != nil {
		return nil, err
	}
	if handlers.CancelTrip, err = c.CreateCancelTripCommandHandler(); err != nil {
		return nil, err
	}
	if handlers.DeleteTrip, err = c.CreateDeleteTripCommandHandler(); err != nil {
		return nil, err
	}
	if handlers.ConfirmDelivery, err = c.CreateConfirmDeliveryCommandHandler(); err != nil {
		return nil, err
	}
	if handlers.SimulateTrip, err = c.CreateSimulateTripQueryHandler(); err != nil {
		return nil, err
	}

	server, err := httpin.NewServer(handlers, c.logger)
	if err != nil {
		return nil, err
	}
	return httpin.NewRouter(server, httpin.RouterConfig{
		Logger:         c.logger,
		Metrics:        c.metrics,
		MetricsHandler: c.MetricsHandler(),
	})
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return c.metrics.Handler()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

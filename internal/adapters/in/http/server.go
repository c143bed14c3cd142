package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	DefineTripHandler interface {
		Handle(ctx context.Context, command commands.DefineTripCommand) (commands.DefineTripResult, error)
	}
	StartTripHandler interface {
		Handle(ctx context.Context, command commands.StartTripCommand) error
	}
	EndTripHandler interface {
		Handle(ctx context.Context, command commands.EndTripCommand) error
	}
	CancelTripHandler interface {
		Handle(ctx context.Context, command commands.CancelTripCommand) error
	}
	DeleteTripHandler interface {
		Handle(ctx context.Context, command commands.DeleteTripCommand) error
	}
	ConfirmDeliveryHandler interface {
		Handle(ctx context.Context, command commands.ConfirmDeliveryCommand) error
	}

	GetTripHandler interface {
		Handle(ctx context.Context, query queries.GetTripQuery) (*queries.TripResponse, error)
	}
	GetTripsByStatusHandler interface {
		Handle(ctx context.Context, query queries.GetTripsByStatusQuery) ([]queries.TripResponse, error)
	}
	GetRemainingDeliveriesHandler interface {
		Handle(ctx context.Context, query queries.GetRemainingDeliveriesQuery) ([]queries.RemainingDeliveryResponse, error)
	}
	SimulateTripHandler interface {
		Handle(ctx context.Context, query queries.SimulateTripQuery) (services.Simulation, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	DefineTrip      DefineTripHandler
	StartTrip       StartTripHandler
	EndTrip         EndTripHandler
	CancelTrip      CancelTripHandler
	DeleteTrip      DeleteTripHandler
	ConfirmDelivery ConfirmDeliveryHandler

	GetTrip                GetTripHandler
	GetTripsByStatus       GetTripsByStatusHandler
	GetRemainingDeliveries GetRemainingDeliveriesHandler
	SimulateTrip           SimulateTripHandler
}

func (h Handlers) validate() error {
	required := map[string]any{
		"defineTrip":             h.DefineTrip,
		"startTrip":              h.StartTrip,
		"endTrip":                h.EndTrip,
		"cancelTrip":             h.CancelTrip,
		"deleteTrip":             h.DeleteTrip,
		"confirmDelivery":        h.ConfirmDelivery,
		"getTrip":                h.GetTrip,
		"getTripsByStatus":       h.GetTripsByStatus,
		"getRemainingDeliveries": h.GetRemainingDeliveries,
		"simulateTrip":           h.SimulateTrip,
	}
	for name, handler := range required {
		if handler == nil {
			return errs.NewValueIsRequiredError(name)
		}
	}
	return nil
}

// Server implements servers.ServerInterface on top of the trip lifecycle use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) (*Server, error) {
	if err := handlers.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	return &Server{handlers: handlers, logger: logger.With("component", "http")}, nil
}

// DefineTrip handles POST /api/v1/trips.
func (s *Server) DefineTrip(ctx echo.Context) error {
	var body servers.DefineTripJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	orderIDs := make([]kernel.UUID, 0, len(body.OrderIds))
	for _, id := range body.OrderIds {
		orderIDs = append(orderIDs, kernel.UUIDFromGoogle(id))
	}
	cmd, err := commands.NewDefineTripCommand(kernel.UUIDFromGoogle(body.DepotId), orderIDs)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.DefineTrip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	route := result.Plan.Route
	response := servers.PlannedTrip{
		TripId:     result.TripID.Bytes(),
		DistanceKm: route.TotalDistanceKm,
		Stops:      make([]servers.RouteStop, 0, len(route.VisitOrder)),
	}
	for visit, stop := range route.StopsInVisitOrder() {
		response.Stops = append(response.Stops, servers.RouteStop{
			Visit:   visit,
			Address: stop.Address.Formatted(),
			Lon:     stop.Coordinates.Lon(),
			Lat:     stop.Coordinates.Lat(),
		})
	}

	if result.Plan.RenderingErr != nil {
		s.logger.WarnContext(ctx.Request().Context(), "route map not rendered",
			"trip_id", result.TripID.String(), "error", result.Plan.RenderingErr)
	} else if len(result.Plan.Rendering) > 0 {
		var m map[string]interface{}
		if err = json.Unmarshal(result.Plan.Rendering, &m); err == nil {
			response.Map = &m
		}
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetTrips handles GET /api/v1/trips?status=.
func (s *Server) GetTrips(ctx echo.Context, params servers.GetTripsParams) error {
	query, err := queries.NewGetTripsByStatusQuery(string(params.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	trips, err := s.handlers.GetTripsByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Trip, len(trips))
	for i, t := range trips {
		response[i] = toTrip(t)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetTrip handles GET /api/v1/trips/{tripId}.
func (s *Server) GetTrip(ctx echo.Context, tripID servers.TripId) error {
	query, err := queries.NewGetTripQuery(kernel.UUIDFromGoogle(tripID))
	if err != nil {
		return s.fail(ctx, err)
	}

	t, err := s.handlers.GetTrip.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTrip(*t))
}

// DeleteTrip handles DELETE /api/v1/trips/{tripId}.
func (s *Server) DeleteTrip(ctx echo.Context, tripID servers.TripId) error {
	cmd, err := commands.NewDeleteTripCommand(kernel.UUIDFromGoogle(tripID))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.DeleteTrip.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// StartTrip handles POST /api/v1/trips/{tripId}/start.
func (s *Server) StartTrip(ctx echo.Context, tripID servers.TripId) error {
	var body servers.StartTripJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewStartTripCommand(
		kernel.UUIDFromGoogle(body.TruckId),
		kernel.UUIDFromGoogle(tripID),
		kernel.UUIDFromGoogle(body.DepotId),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.StartTrip.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// EndTrip handles POST /api/v1/trips/{tripId}/end.
func (s *Server) EndTrip(ctx echo.Context, tripID servers.TripId) error {
	var body servers.EndTripJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewEndTripCommand(kernel.UUIDFromGoogle(tripID), kernel.UUIDFromGoogle(body.DepotId))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.EndTrip.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelTrip handles POST /api/v1/trips/{tripId}/cancel.
func (s *Server) CancelTrip(ctx echo.Context, tripID servers.TripId) error {
	var body servers.CancelTripJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCancelTripCommand(kernel.UUIDFromGoogle(tripID), kernel.UUIDFromGoogle(body.DepotId))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.CancelTrip.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SimulateTrip handles POST /api/v1/trips/{tripId}/simulate.
func (s *Server) SimulateTrip(ctx echo.Context, tripID servers.TripId) error {
	var body servers.SimulateTripJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	query, err := queries.NewSimulateTripQuery(
		kernel.UUIDFromGoogle(tripID),
		kernel.UUIDFromGoogle(body.TruckId),
		string(body.Traffic),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	sim, err := s.handlers.SimulateTrip.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Simulation{
		TripId:      tripID,
		TruckPlate:  sim.TruckPlate,
		DistanceKm:  sim.DistanceKm,
		Traffic:     string(sim.Traffic),
		Departure:   toMoment(sim.DepartureAt),
		Arrival:     toMoment(sim.ArrivalAt),
		Days:        sim.Days,
		Hours:       sim.Hours,
		Minutes:     sim.Minutes,
		CarbonKgCo2: sim.CarbonKgCO2,
	})
}

// GetRemainingDeliveries handles GET /api/v1/trips/{tripId}/remaining-deliveries.
func (s *Server) GetRemainingDeliveries(ctx echo.Context, tripID servers.TripId) error {
	query, err := queries.NewGetRemainingDeliveriesQuery(kernel.UUIDFromGoogle(tripID))
	if err != nil {
		return s.fail(ctx, err)
	}

	deliveries, err := s.handlers.GetRemainingDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.RemainingDelivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = servers.RemainingDelivery{
			Id:            d.ID.Bytes(),
			OrderId:       d.OrderID.Bytes(),
			StoreId:       d.StoreID.Bytes(),
			Street:        d.Street,
			Number:        d.Number,
			City:          d.City,
			State:         d.State,
			TotalBoxes:    d.TotalBoxes,
			TotalWeightKg: d.TotalWeight,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ConfirmDelivery handles POST /api/v1/trips/{tripId}/deliveries/{deliveryId}/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context, tripID servers.TripId, deliveryID openapi_types.UUID) error {
	var body servers.ConfirmDeliveryJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewConfirmDeliveryCommand(
		kernel.UUIDFromGoogle(tripID),
		kernel.UUIDFromGoogle(body.TruckId),
		kernel.UUIDFromGoogle(deliveryID),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.ConfirmDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toTrip(t queries.TripResponse) servers.Trip {
	out := servers.Trip{
		Id:            t.ID.Bytes(),
		DepotId:       t.DepotID.Bytes(),
		Status:        servers.TripStatus(t.Status),
		TotalWeightKg: t.TotalWeightKg,
		TotalVolumeM3: t.TotalVolumeM3,
		DistanceKm:    t.DistanceKm,
		CarbonKgCo2:   t.CarbonKgCO2,
		DepartureAt:   t.DepartureAt,
		ArrivalAt:     t.ArrivalAt,
		TotalOrders:   t.TotalOrders,
	}
	if t.TruckID != nil {
		id := t.TruckID.Bytes()
		out.TruckId = &id
	}
	return out
}

func toMoment(at time.Time) servers.Moment {
	return servers.Moment{
		Month:  int(at.Month()),
		Day:    at.Day(),
		Hour:   at.Hour(),
		Minute: at.Minute(),
	}
}

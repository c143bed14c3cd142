// Package servers holds the HTTP types, server interface and route
// registration for the API described in openapi.yaml. It is kept in the
// layout of oapi-codegen's echo server output and is edited by hand
// together with openapi.yaml.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for SimulateTripRequestTraffic.
const (
	Heavy  SimulateTripRequestTraffic = "heavy"
	Light  SimulateTripRequestTraffic = "light"
	Medium SimulateTripRequestTraffic = "medium"
)

// Defines values for TripStatus.
const (
	TripStatusCanc TripStatus = "Canc"
	TripStatusComp TripStatus = "Comp"
	TripStatusInTr TripStatus = "InTr"
	TripStatusPlan TripStatus = "Plan"
)

// Defines values for GetTripsParamsStatus.
const (
	GetTripsParamsStatusCanc GetTripsParamsStatus = "Canc"
	GetTripsParamsStatusComp GetTripsParamsStatus = "Comp"
	GetTripsParamsStatusInTr GetTripsParamsStatus = "InTr"
	GetTripsParamsStatusPlan GetTripsParamsStatus = "Plan"
)

// ConfirmDeliveryRequest defines model for ConfirmDeliveryRequest.
type ConfirmDeliveryRequest struct {
	TruckId openapi_types.UUID `json:"truckId" validate:"required"`
}

// DefineTripRequest defines model for DefineTripRequest.
type DefineTripRequest struct {
	DepotId  openapi_types.UUID   `json:"depotId" validate:"required"`
	OrderIds []openapi_types.UUID `json:"orderIds" validate:"required,min=1,unique"`
}

// DepotRequest defines model for DepotRequest.
type DepotRequest struct {
	DepotId openapi_types.UUID `json:"depotId" validate:"required"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Moment defines model for Moment.
type Moment struct {
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Month  int `json:"month"`
}

// PlannedTrip defines model for PlannedTrip.
type PlannedTrip struct {
	DistanceKm float64 `json:"distanceKm"`

	// Map GeoJSON FeatureCollection of the route
	Map    *map[string]interface{} `json:"map,omitempty"`
	Stops  []RouteStop             `json:"stops"`
	TripId openapi_types.UUID      `json:"tripId"`
}

// RemainingDelivery defines model for RemainingDelivery.
type RemainingDelivery struct {
	City          string             `json:"city"`
	Id            openapi_types.UUID `json:"id"`
	Number        string             `json:"number"`
	OrderId       openapi_types.UUID `json:"orderId"`
	State         string             `json:"state"`
	StoreId       openapi_types.UUID `json:"storeId"`
	Street        string             `json:"street"`
	TotalBoxes    int                `json:"totalBoxes"`
	TotalWeightKg float64            `json:"totalWeightKg"`
}

// RouteStop defines model for RouteStop.
type RouteStop struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Visit   int     `json:"visit"`
}

// SimulateTripRequest defines model for SimulateTripRequest.
type SimulateTripRequest struct {
	Traffic SimulateTripRequestTraffic `json:"traffic" validate:"required"`
	TruckId openapi_types.UUID         `json:"truckId" validate:"required"`
}

// SimulateTripRequestTraffic defines model for SimulateTripRequest.Traffic.
type SimulateTripRequestTraffic string

// Simulation defines model for Simulation.
type Simulation struct {
	Arrival     Moment             `json:"arrival"`
	CarbonKgCo2 float64            `json:"carbonKgCo2"`
	Days        int                `json:"days"`
	Departure   Moment             `json:"departure"`
	DistanceKm  float64            `json:"distanceKm"`
	Hours       int                `json:"hours"`
	Minutes     int                `json:"minutes"`
	Traffic     string             `json:"traffic"`
	TripId      openapi_types.UUID `json:"tripId"`
	TruckPlate  string             `json:"truckPlate"`
}

// StartTripRequest defines model for StartTripRequest.
type StartTripRequest struct {
	DepotId openapi_types.UUID `json:"depotId" validate:"required"`
	TruckId openapi_types.UUID `json:"truckId" validate:"required"`
}

// Trip defines model for Trip.
type Trip struct {
	ArrivalAt     *time.Time          `json:"arrivalAt,omitempty"`
	CarbonKgCo2   *float64            `json:"carbonKgCo2,omitempty"`
	DepartureAt   *time.Time          `json:"departureAt,omitempty"`
	DepotId       openapi_types.UUID  `json:"depotId"`
	DistanceKm    float64             `json:"distanceKm"`
	Id            openapi_types.UUID  `json:"id"`
	Status        TripStatus          `json:"status"`
	TotalOrders   int                 `json:"totalOrders"`
	TotalVolumeM3 float64             `json:"totalVolumeM3"`
	TotalWeightKg float64             `json:"totalWeightKg"`
	TruckId       *openapi_types.UUID `json:"truckId,omitempty"`
}

// TripStatus defines model for Trip.Status.
type TripStatus string

// TripId defines model for TripId.
type TripId = openapi_types.UUID

// GetTripsParams defines parameters for GetTrips.
type GetTripsParams struct {
	Status GetTripsParamsStatus `form:"status" json:"status"`
}

// GetTripsParamsStatus defines parameters for GetTrips.
type GetTripsParamsStatus string

// DefineTripJSONRequestBody defines body for DefineTrip for application/json ContentType.
type DefineTripJSONRequestBody = DefineTripRequest

// CancelTripJSONRequestBody defines body for CancelTrip for application/json ContentType.
type CancelTripJSONRequestBody = DepotRequest

// ConfirmDeliveryJSONRequestBody defines body for ConfirmDelivery for application/json ContentType.
type ConfirmDeliveryJSONRequestBody = ConfirmDeliveryRequest

// EndTripJSONRequestBody defines body for EndTrip for application/json ContentType.
type EndTripJSONRequestBody = DepotRequest

// SimulateTripJSONRequestBody defines body for SimulateTrip for application/json ContentType.
type SimulateTripJSONRequestBody = SimulateTripRequest

// StartTripJSONRequestBody defines body for StartTrip for application/json ContentType.
type StartTripJSONRequestBody = StartTripRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Plan a trip for a selection of pending orders
	// (POST /api/v1/trips)
	DefineTrip(ctx echo.Context) error
	// List trips with a status
	// (GET /api/v1/trips)
	GetTrips(ctx echo.Context, params GetTripsParams) error
	// Delete a planned or cancelled trip
	// (DELETE /api/v1/trips/{tripId})
	DeleteTrip(ctx echo.Context, tripId TripId) error
	// Read a trip
	// (GET /api/v1/trips/{tripId})
	GetTrip(ctx echo.Context, tripId TripId) error
	// Cancel a planned trip and release its orders
	// (POST /api/v1/trips/{tripId}/cancel)
	CancelTrip(ctx echo.Context, tripId TripId) error
	// Confirm a delivery made by the trip's truck
	// (POST /api/v1/trips/{tripId}/deliveries/{deliveryId}/confirm)
	ConfirmDelivery(ctx echo.Context, tripId TripId, deliveryId openapi_types.UUID) error
	// Close a trip whose deliveries are all confirmed
	// (POST /api/v1/trips/{tripId}/end)
	EndTrip(ctx echo.Context, tripId TripId) error
	// List the deliveries of a trip that are not confirmed yet
	// (GET /api/v1/trips/{tripId}/remaining-deliveries)
	GetRemainingDeliveries(ctx echo.Context, tripId TripId) error
	// Estimate travel time and emissions of a trip departing now
	// (POST /api/v1/trips/{tripId}/simulate)
	SimulateTrip(ctx echo.Context, tripId TripId) error
	// Dispatch a planned trip with a truck
	// (POST /api/v1/trips/{tripId}/start)
	StartTrip(ctx echo.Context, tripId TripId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// DefineTrip converts echo context to params.
func (w *ServerInterfaceWrapper) DefineTrip(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DefineTrip(ctx)
	return err
}

// GetTrips converts echo context to params.
func (w *ServerInterfaceWrapper) GetTrips(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetTripsParams
	// ------------- Required query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, true, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetTrips(ctx, params)
	return err
}

// DeleteTrip converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteTrip(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tripId" -------------
	var tripId TripId

	err = runtime.BindStyledParameterWithOptions("simple", "tripId", ctx.Param("tripId"), &tripId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tripId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteTrip(ctx, tripId)
	return err
}

// GetTrip converts echo context to params.
func (w *ServerInterfaceWrapper) GetTrip(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tripId" -------------
	var tripId TripId

	err = runtime.BindStyledParameterWithOptions("simple", "tripId", ctx.Param("tripId"), &tripId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tripId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetTrip(ctx, tripId)
	return err
}

// CancelTrip converts echo context to params.
func (w *ServerInterfaceWrapper) CancelTrip(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tripId" -------------
	var tripId TripId

	err = runtime.BindStyledParameterWithOptions("simple", "tripId", ctx.Param("tripId"), &tripId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tripId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelTrip(ctx, tripId)
	return err
}

// ConfirmDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) ConfirmDelivery(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tripId" -------------
	var tripId TripId

	err = runtime.BindStyledParameterWithOptions("simple", "tripId", ctx.Param("tripId"), &tripId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tripId: %s", err))
	}

	// ------------- Path parameter "deliveryId" -------------
	var deliveryId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "deliveryId", ctx.Param("deliveryId"), &deliveryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter deliveryId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ConfirmDelivery(ctx, tripId, deliveryId)
	return err
}

// EndTrip converts echo context to params.
func (w *ServerInterfaceWrapper) EndTrip(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tripId" -------------
	var tripId TripId

	err = runtime.BindStyledParameterWithOptions("simple", "tripId", ctx.Param("tripId"), &tripId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tripId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.EndTrip(ctx, tripId)
	return err
}

// GetRemainingDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) GetRemainingDeliveries(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tripId" -------------
	var tripId TripId

	err = runtime.BindStyledParameterWithOptions("simple", "tripId", ctx.Param("tripId"), &tripId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tripId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetRemainingDeliveries(ctx, tripId)
	return err
}

// SimulateTrip converts echo context to params.
func (w *ServerInterfaceWrapper) SimulateTrip(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tripId" -------------
	var tripId TripId

	err = runtime.BindStyledParameterWithOptions("simple", "tripId", ctx.Param("tripId"), &tripId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tripId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SimulateTrip(ctx, tripId)
	return err
}

// StartTrip converts echo context to params.
func (w *ServerInterfaceWrapper) StartTrip(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tripId" -------------
	var tripId TripId

	err = runtime.BindStyledParameterWithOptions("simple", "tripId", ctx.Param("tripId"), &tripId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tripId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.StartTrip(ctx, tripId)
	return err
}

// This is a simple interface which specifies echo.Route addition functions which
// are present on both echo.Echo and echo.Group, since we want to allow using
// either of them for path registration
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// Registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/trips", wrapper.DefineTrip)
	router.GET(baseURL+"/api/v1/trips", wrapper.GetTrips)
	router.DELETE(baseURL+"/api/v1/trips/:tripId", wrapper.DeleteTrip)
	router.GET(baseURL+"/api/v1/trips/:tripId", wrapper.GetTrip)
	router.POST(baseURL+"/api/v1/trips/:tripId/cancel", wrapper.CancelTrip)
	router.POST(baseURL+"/api/v1/trips/:tripId/deliveries/:deliveryId/confirm", wrapper.ConfirmDelivery)
	router.POST(baseURL+"/api/v1/trips/:tripId/end", wrapper.EndTrip)
	router.GET(baseURL+"/api/v1/trips/:tripId/remaining-deliveries", wrapper.GetRemainingDeliveries)
	router.POST(baseURL+"/api/v1/trips/:tripId/simulate", wrapper.SimulateTrip)
	router.POST(baseURL+"/api/v1/trips/:tripId/start", wrapper.StartTrip)

}

//go:embed openapi.yaml
var swaggerSpec []byte

// RawSpec returns the OpenAPI document these types mirror.
func RawSpec() []byte {
	return swaggerSpec
}

// GetSwagger returns the parsed OpenAPI document corresponding to the code
// in this file. The external references of Swagger specification are resolved.
func GetSwagger() (swagger *openapi3.T, err error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	swagger, err = loader.LoadFromData(swaggerSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading Swagger: %w", err)
	}
	return swagger, nil
}

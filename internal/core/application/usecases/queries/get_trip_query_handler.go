package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// tripColumns selects a trip and the number of orders linked to it, in the
// order scanTrip reads them.
const tripColumns = `
	t.id,
	t.depot_id,
	t.truck_id,
	t.status,
	t.total_weight_kg,
	t.total_volume_m3,
	t.distance_km,
	t.carbon_kg_co2,
	t.departure_at,
	t.arrival_at,
	(SELECT COUNT(*) FROM orders o WHERE o.trip_id = t.id) AS total_orders`

// GetTripQueryHandler reads a trip with plain SQL.
type GetTripQueryHandler struct {
	db *gorm.DB
}

func NewGetTripQueryHandler(db *gorm.DB) GetTripQueryHandler {
	return GetTripQueryHandler{db: db}
}

// Handle returns the trip or an ObjectNotFoundError.
func (h GetTripQueryHandler) Handle(ctx context.Context, query GetTripQuery) (*TripResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+tripColumns+`
		FROM trips t
		WHERE t.id = ?
	`, query.TripID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("trip", query.TripID().String())
	}

	trip, err := scanTrip(rows)
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func scanTrip(rows *sql.Rows) (TripResponse, error) {
	var trip TripResponse
	var id, depotID uuid.UUID
	var truckID uuid.NullUUID

	err := rows.Scan(
		&id,
		&depotID,
		&truckID,
		&trip.Status,
		&trip.TotalWeightKg,
		&trip.TotalVolumeM3,
		&trip.DistanceKm,
		&trip.CarbonKgCO2,
		&trip.DepartureAt,
		&trip.ArrivalAt,
		&trip.TotalOrders,
	)
	if err != nil {
		return TripResponse{}, err
	}

	if trip.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return TripResponse{}, err
	}
	if trip.DepotID, err = kernel.UUIDFromBytes(depotID[:]); err != nil {
		return TripResponse{}, err
	}
	if truckID.Valid {
		tID := kernel.UUIDFromGoogle(truckID.UUID)
		trip.TruckID = &tID
	}

	return trip, nil
}

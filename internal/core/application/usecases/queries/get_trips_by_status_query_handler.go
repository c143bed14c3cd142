package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetTripsByStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetTripsByStatusQueryHandler(db *gorm.DB) GetTripsByStatusQueryHandler {
	return GetTripsByStatusQueryHandler{db: db}
}

// Handle returns the matching trips, most recently departed first. Trips that
// have not left yet sort last, by id.
func (h GetTripsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetTripsByStatusQuery,
) ([]TripResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trips := make([]TripResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+tripColumns+`
		FROM trips t
		WHERE t.status = ?
		ORDER BY t.departure_at DESC NULLS LAST, t.id
	`, query.Status().Code()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		trip, scanErr := scanTrip(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		trips = append(trips, trip)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}

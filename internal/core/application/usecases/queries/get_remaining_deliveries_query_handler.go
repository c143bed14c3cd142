package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetRemainingDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetRemainingDeliveriesQueryHandler(db *gorm.DB) GetRemainingDeliveriesQueryHandler {
	return GetRemainingDeliveriesQueryHandler{db: db}
}

// Handle returns the trip's deliveries with no delivered_at, ordered by id.
// An unknown trip fails with an ObjectNotFoundError.
func (h GetRemainingDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetRemainingDeliveriesQuery,
) ([]RemainingDeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM trips WHERE id = ?)`, query.TripID().Bytes()).
		Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("trip", query.TripID().String())
	}

	deliveries := make([]RemainingDeliveryResponse, 0)

	rows, err := db.Raw(`
		SELECT
			d.id,
			d.order_id,
			d.store_id,
			o.destination_street,
			o.destination_number,
			o.destination_city,
			o.destination_state,
			o.total_boxes,
			o.total_weight_kg
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.trip_id = ? AND d.delivered_at IS NULL
		ORDER BY d.id
	`, query.TripID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp RemainingDeliveryResponse
		var id, orderID, storeID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&storeID,
			&resp.Street,
			&resp.Number,
			&resp.City,
			&resp.State,
			&resp.TotalBoxes,
			&resp.TotalWeight,
		)
		if err != nil {
			return nil, err
		}

		resp.ID = kernel.UUIDFromGoogle(id)
		resp.OrderID = kernel.UUIDFromGoogle(orderID)
		resp.StoreID = kernel.UUIDFromGoogle(storeID)
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

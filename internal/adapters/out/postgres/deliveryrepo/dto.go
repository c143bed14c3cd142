// Package deliveryrepo persists deliveries, one per order shipped on a trip.
package deliveryrepo

import (
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TripID      uuid.UUID `gorm:"type:uuid;not null;index"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveredAt *time.Time
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		TripID:      aggregate.TripID().Bytes(),
		StoreID:     aggregate.StoreID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		DeliveredAt: aggregate.DeliveredAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	ids := make([]kernel.UUID, 0, 4)
	for _, raw := range []uuid.UUID{dto.ID, dto.TripID, dto.StoreID, dto.OrderID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return delivery.RestoreDelivery(ids[0], ids[1], ids[2], ids[3], dto.DeliveredAt), nil
}

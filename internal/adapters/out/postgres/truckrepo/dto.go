// Package truckrepo persists carrier trucks.
package truckrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

type TruckDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CarrierID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Plate        string    `gorm:"type:varchar(7);not null;uniqueIndex"`
	MaxPayloadKg float64   `gorm:"not null"`
	LengthM      float64   `gorm:"not null"`
	WidthM       float64   `gorm:"not null"`
	HeightM      float64   `gorm:"not null"`
	Euro         int       `gorm:"type:smallint;not null"`
	IsActive     bool      `gorm:"not null;default:false"`
	TotalTrips   int       `gorm:"not null;default:0"`
}

func (TruckDTO) TableName() string {
	return "trucks"
}

func fromDomain(aggregate *truck.Truck) TruckDTO {
	lengthM, widthM, heightM := aggregate.Dimensions()
	return TruckDTO{
		ID:           aggregate.ID().Bytes(),
		CarrierID:    aggregate.CarrierID().Bytes(),
		Plate:        aggregate.Plate(),
		MaxPayloadKg: aggregate.MaxPayloadKg(),
		LengthM:      lengthM,
		WidthM:       widthM,
		HeightM:      heightM,
		Euro:         aggregate.Euro(),
		IsActive:     aggregate.IsActive(),
		TotalTrips:   aggregate.TotalTrips(),
	}
}

func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	return truck.RestoreTruck(
		id, carrierID, dto.Plate,
		dto.MaxPayloadKg, dto.LengthM, dto.WidthM, dto.HeightM,
		dto.Euro, dto.IsActive, dto.TotalTrips,
	), nil
}

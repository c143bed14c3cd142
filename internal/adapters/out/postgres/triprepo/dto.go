// Package triprepo persists trip aggregates.
package triprepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trip aggregates.
// Status holds the short trip code (Plan, InTr, Comp, Canc).
type TripDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DepotID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	TruckID       *uuid.UUID `gorm:"type:uuid;index"`
	Status        string     `gorm:"type:varchar(4);not null;index"`
	TotalWeightKg float64    `gorm:"not null"`
	TotalVolumeM3 float64    `gorm:"not null"`
	DistanceKm    float64    `gorm:"not null"`
	CarbonKgCO2   *float64
	DepartureAt   *time.Time
	ArrivalAt     *time.Time
}

func (TripDTO) TableName() string {
	return "trips"
}

func fromDomain(aggregate *trip.Trip) TripDTO {
	var truckID *uuid.UUID
	if id := aggregate.Truck(); id != nil {
		raw := id.Bytes()
		truckID = &raw
	}

	return TripDTO{
		ID:            aggregate.ID().Bytes(),
		DepotID:       aggregate.DepotID().Bytes(),
		TruckID:       truckID,
		Status:        aggregate.Status().Code(),
		TotalWeightKg: aggregate.TotalWeightKg(),
		TotalVolumeM3: aggregate.TotalVolumeM3(),
		DistanceKm:    aggregate.DistanceKm(),
		CarbonKgCO2:   aggregate.CarbonKgCO2(),
		DepartureAt:   aggregate.DepartureAt(),
		ArrivalAt:     aggregate.ArrivalAt(),
	}
}

func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	depotID, err := kernel.UUIDFromBytes(dto.DepotID[:])
	if err != nil {
		return nil, err
	}

	var truckID *kernel.UUID
	if dto.TruckID != nil {
		tID, truckErr := kernel.UUIDFromBytes((*dto.TruckID)[:])
		if truckErr != nil {
			return nil, truckErr
		}
		truckID = &tID
	}

	status, err := trip.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return trip.RestoreTrip(
		id, depotID, truckID, status,
		dto.TotalWeightKg, dto.TotalVolumeM3, dto.DistanceKm,
		dto.CarbonKgCO2, dto.DepartureAt, dto.ArrivalAt,
	)
}

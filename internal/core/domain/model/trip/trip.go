package trip

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")

// Trip is a planned or executed run from a depot.
type Trip struct {
	id      kernel.UUID
	depotID kernel.UUID
	truckID *kernel.UUID
	status  Status

	totalWeightKg float64
	totalVolumeM3 float64
	distanceKm    float64
	carbonKgCO2   *float64

	departureAt *time.Time
	arrivalAt   *time.Time

	isConstructed bool
}

// NewTrip creates a Planned trip holding the cargo totals of its orders and the
// planned route distance.
func NewTrip(id, depotID kernel.UUID, totalWeightKg, totalVolumeM3, distanceKm float64) (*Trip, error) {
	t := &Trip{
		status:        Planned,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setDepotID(depotID),
		t.setTotals(totalWeightKg, totalVolumeM3, distanceKm),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTrip rebuilds a trip read from storage.
func RestoreTrip(
	id, depotID kernel.UUID,
	truckID *kernel.UUID,
	status Status,
	totalWeightKg, totalVolumeM3, distanceKm float64,
	carbonKgCO2 *float64,
	departureAt, arrivalAt *time.Time,
) (*Trip, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return &Trip{
		id:            id,
		depotID:       depotID,
		truckID:       truckID,
		status:        status,
		totalWeightKg: totalWeightKg,
		totalVolumeM3: totalVolumeM3,
		distanceKm:    distanceKm,
		carbonKgCO2:   carbonKgCO2,
		departureAt:   departureAt,
		arrivalAt:     arrivalAt,
		isConstructed: true,
	}, nil
}

func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

func (t *Trip) ID() kernel.UUID {
	return t.id
}

func (t *Trip) DepotID() kernel.UUID {
	return t.depotID
}

// Truck returns the assigned truck, nil until the trip starts.
func (t *Trip) Truck() *kernel.UUID {
	return t.truckID
}

func (t *Trip) Status() Status {
	return t.status
}

func (t *Trip) TotalWeightKg() float64 {
	return t.totalWeightKg
}

func (t *Trip) TotalVolumeM3() float64 {
	return t.totalVolumeM3
}

func (t *Trip) DistanceKm() float64 {
	return t.distanceKm
}

// CarbonKgCO2 returns the emission estimate, nil until the trip starts.
func (t *Trip) CarbonKgCO2() *float64 {
	return t.carbonKgCO2
}

func (t *Trip) DepartureAt() *time.Time {
	return t.departureAt
}

func (t *Trip) ArrivalAt() *time.Time {
	return t.arrivalAt
}

func (t *Trip) BelongsTo(depotID kernel.UUID) bool {
	return t.depotID.IsEqual(depotID)
}

// EnsureBelongsTo fails with a BelongError when the trip did not originate at depotID.
func (t *Trip) EnsureBelongsTo(depotID kernel.UUID) error {
	if !t.BelongsTo(depotID) {
		return errs.NewBelongError("trip", "depot")
	}
	return nil
}

// IsAssignedTo reports whether truckID runs this trip.
func (t *Trip) IsAssignedTo(truckID kernel.UUID) bool {
	return t.truckID != nil && t.truckID.IsEqual(truckID)
}

// Start assigns the truck and the carbon estimate and departs at now.
func (t *Trip) Start(truckID kernel.UUID, carbonKgCO2 float64, now time.Time) error {
	if err := truckID.Validate(); err != nil {
		return err
	}

	newStatus, err := t.status.Start()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.truckID = &truckID
	t.carbonKgCO2 = &carbonKgCO2
	t.departureAt = &now
	return nil
}

// Complete marks the trip as arrived at now.
func (t *Trip) Complete(now time.Time) error {
	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.arrivalAt = &now
	return nil
}

func (t *Trip) Cancel() error {
	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// EnsureDeletable forbids removing a trip that has started.
func (t *Trip) EnsureDeletable() error {
	if t.status == InTransit || t.status == Completed {
		return errs.NewStatusError("trip", fmt.Sprintf("delete denied, %s trips are kept for history", t.status))
	}
	return nil
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setDepotID(depotID kernel.UUID) error {
	if err := depotID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("depotID", err)
	}
	t.depotID = depotID
	return nil
}

func (t *Trip) setTotals(totalWeightKg, totalVolumeM3, distanceKm float64) error {
	var validationErrs []error
	if totalWeightKg < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause("total weight is invalid", fmt.Errorf("%.2f is negative", totalWeightKg)))
	}
	if totalVolumeM3 < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause("total volume is invalid", fmt.Errorf("%.2f is negative", totalVolumeM3)))
	}
	if distanceKm < 0 {
		validationErrs = append(validationErrs, errs.NewValueIsInvalidErrorWithCause("distance is invalid", fmt.Errorf("%.2f is negative", distanceKm)))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return err
	}
	t.totalWeightKg = totalWeightKg
	t.totalVolumeM3 = totalVolumeM3
	t.distanceKm = distanceKm
	return nil
}

package truck

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

const (
	maxPlateLength = 7
	minEuro        = 1
	maxEuro        = 7
)

var (
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

	// ErrEmissionFactorUnknown is the cause of the StatusError returned for euro
	// classes without a mapped emission factor.
	ErrEmissionFactorUnknown = errors.New("no emission factor for euro class")
)

// getEmissionFactors maps euro classes to kg of CO2 emitted per km.
func getEmissionFactors() map[int]float64 {
	return map[int]float64{
		5: 0.83,
		6: 0.75,
	}
}

// Truck is a carrier's vehicle.
type Truck struct {
	id        kernel.UUID
	carrierID kernel.UUID
	plate     string

	maxPayloadKg  float64
	lengthM       float64
	widthM        float64
	heightM       float64
	cargoVolumeM3 float64
	euro          int

	isActive   bool
	totalTrips int

	isConstructed bool
}

// NewTruck creates an idle truck. Cargo volume is derived from the cargo
// dimensions in meters.
func NewTruck(
	id, carrierID kernel.UUID,
	plate string,
	maxPayloadKg, lengthM, widthM, heightM float64,
	euro int,
) (*Truck, error) {
	t := &Truck{isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setCarrierID(carrierID),
		t.setPlate(plate),
		t.setCapacity(maxPayloadKg, lengthM, widthM, heightM),
		t.setEuro(euro),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTruck rebuilds a truck read from storage.
func RestoreTruck(
	id, carrierID kernel.UUID,
	plate string,
	maxPayloadKg, lengthM, widthM, heightM float64,
	euro int,
	isActive bool,
	totalTrips int,
) *Truck {
	return &Truck{
		id:            id,
		carrierID:     carrierID,
		plate:         plate,
		maxPayloadKg:  maxPayloadKg,
		lengthM:       lengthM,
		widthM:        widthM,
		heightM:       heightM,
		cargoVolumeM3: lengthM * widthM * heightM,
		euro:          euro,
		isActive:      isActive,
		totalTrips:    totalTrips,
		isConstructed: true,
	}
}

func (t *Truck) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTruckIsNotConstructed
	}
	return nil
}

func (t *Truck) ID() kernel.UUID {
	return t.id
}

func (t *Truck) CarrierID() kernel.UUID {
	return t.carrierID
}

func (t *Truck) Plate() string {
	return t.plate
}

func (t *Truck) MaxPayloadKg() float64 {
	return t.maxPayloadKg
}

func (t *Truck) Dimensions() (lengthM, widthM, heightM float64) {
	return t.lengthM, t.widthM, t.heightM
}

func (t *Truck) CargoVolumeM3() float64 {
	return t.cargoVolumeM3
}

func (t *Truck) Euro() int {
	return t.euro
}

func (t *Truck) IsActive() bool {
	return t.isActive
}

func (t *Truck) TotalTrips() int {
	return t.totalTrips
}

// Reserve flags the truck as running a trip and counts the trip.
func (t *Truck) Reserve() error {
	if t.isActive {
		return errs.NewStatusError("truck", "already being used")
	}
	t.isActive = true
	t.totalTrips++
	return nil
}

// Release frees the truck once its trip is over.
func (t *Truck) Release() {
	t.isActive = false
}

// CanCarry fails with a CapacityError carrying the excess when either the
// weight or the volume is above the truck's rating.
func (t *Truck) CanCarry(weightKg, volumeM3 float64) error {
	weightExcess := math.Max(0, weightKg-t.maxPayloadKg)
	volumeExcess := math.Max(0, volumeM3-t.cargoVolumeM3)
	if weightExcess > 0 || volumeExcess > 0 {
		return errs.NewCapacityError(weightExcess, volumeExcess)
	}
	return nil
}

// EmissionFactor returns kg of CO2 per km for the truck's euro class.
func (t *Truck) EmissionFactor() (float64, error) {
	factor, ok := getEmissionFactors()[t.euro]
	if !ok {
		return 0, errs.NewStatusErrorWithCause("truck", fmt.Sprintf("euro %d has no emission factor", t.euro), ErrEmissionFactorUnknown)
	}
	return factor, nil
}

// CarbonFor estimates kg of CO2 for a distance, rounded to 2 decimals.
func (t *Truck) CarbonFor(distanceKm float64) (float64, error) {
	factor, err := t.EmissionFactor()
	if err != nil {
		return 0, err
	}
	return math.Round(distanceKm*factor*100) / 100, nil
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrierID", err)
	}
	t.carrierID = carrierID
	return nil
}

func (t *Truck) setPlate(plate string) error {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	if len(plate) > maxPlateLength {
		return errs.NewValueIsOutOfRangeError("plate length", len(plate), 1, maxPlateLength)
	}
	t.plate = plate
	return nil
}

func (t *Truck) setCapacity(maxPayloadKg, lengthM, widthM, heightM float64) error {
	if maxPayloadKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("max payload is invalid", fmt.Errorf("%.2f is not greater than 0", maxPayloadKg))
	}
	if lengthM <= 0 || widthM <= 0 || heightM <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cargo dimensions are invalid",
			fmt.Errorf("%.2fx%.2fx%.2f must all be greater than 0", lengthM, widthM, heightM),
		)
	}
	t.maxPayloadKg = maxPayloadKg
	t.lengthM, t.widthM, t.heightM = lengthM, widthM, heightM
	t.cargoVolumeM3 = lengthM * widthM * heightM
	return nil
}

func (t *Truck) setEuro(euro int) error {
	if euro < minEuro || euro > maxEuro {
		return errs.NewValueIsOutOfRangeError("euro", euro, minEuro, maxEuro)
	}
	t.euro = euro
	return nil
}

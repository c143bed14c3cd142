package kernel

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	minLongitude = -180.0
	maxLongitude = 180.0
	minLatitude  = -90.0
	maxLatitude  = 90.0
)

var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError("coordinates must be created via NewCoordinates")

// Coordinates is a WGS84 point as returned by the geocoder.
type Coordinates struct {
	lon float64
	lat float64

	guard guard.ConstructorGuard
}

func NewCoordinates(lon, lat float64) (Coordinates, error) {
	var validationErrs []error
	if lon < minLongitude || lon > maxLongitude {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("longitude", lon, minLongitude, maxLongitude))
	}
	if lat < minLatitude || lat > maxLatitude {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError("latitude", lat, minLatitude, maxLatitude))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return Coordinates{}, err
	}
	return Coordinates{lon: lon, lat: lat, guard: guard.NewConstructorGuard()}, nil
}

func (c Coordinates) Lon() float64 { return c.lon }
func (c Coordinates) Lat() float64 { return c.lat }

func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.lon, c.lat)
}

package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// Geocoder resolves a free-form address query to a point. A query that matches
// nothing returns nil coordinates and a nil error; errors are reserved for
// transport failures.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*kernel.Coordinates, error)
}

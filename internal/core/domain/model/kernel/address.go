package kernel

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const DefaultCountry = "Brasil"

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress")

// Address is a postal address of a depot or a store. City, state and country
// form the area a road graph is downloaded for.
type Address struct {
	street       string
	number       string
	complement   string
	neighborhood string
	city         string
	state        string
	postalCode   string
	country      string

	guard guard.ConstructorGuard
}

// NewAddress builds an Address. An empty country defaults to DefaultCountry.
func NewAddress(
	street, number, complement, neighborhood, city, state, postalCode, country string,
) (Address, error) {
	a := Address{
		street:       strings.TrimSpace(street),
		number:       strings.TrimSpace(number),
		complement:   strings.TrimSpace(complement),
		neighborhood: strings.TrimSpace(neighborhood),
		city:         strings.TrimSpace(city),
		state:        strings.TrimSpace(state),
		postalCode:   strings.TrimSpace(postalCode),
		country:      strings.TrimSpace(country),
		guard:        guard.NewConstructorGuard(),
	}
	if a.country == "" {
		a.country = DefaultCountry
	}

	var validationErrs []error
	if a.street == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("street"))
	}
	if a.city == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("city"))
	}
	if a.state == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("state"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (a Address) Street() string { return a.street }
func (a Address) Number() string { return a.number }
func (a Address) Complement() string { return a.complement }
func (a Address) Neighborhood() string { return a.neighborhood }
func (a Address) City() string { return a.city }
func (a Address) State() string { return a.state }
func (a Address) PostalCode() string { return a.postalCode }
func (a Address) Country() string { return a.country }

// Area is the place description used to fetch a road network: "city, state, country".
func (a Address) Area() string {
	return joinNonEmpty(a.city, a.state, a.country)
}

// SameArea reports whether both addresses are in the same city, state and country.
// Comparison ignores case and surrounding spaces.
func (a Address) SameArea(other Address) bool {
	return strings.EqualFold(a.city, other.city) &&
		strings.EqualFold(a.state, other.state) &&
		strings.EqualFold(a.country, other.country)
}

// Formatted renders "street, number, neighborhood, city, state, postal code, country",
// skipping empty parts.
func (a Address) Formatted() string {
	return joinNonEmpty(a.street, a.number, a.neighborhood, a.city, a.state, a.postalCode, a.country)
}

// GeocodeQueries returns geocoder queries from the most to the least specific:
// the full address, the street alone, then the neighborhood centroid.
// Duplicates are dropped.
func (a Address) GeocodeQueries() []string {
	candidates := []string{
		a.Formatted(),
		joinNonEmpty(a.street, a.city, a.state, a.country),
	}
	if a.neighborhood != "" {
		candidates = append(candidates, joinNonEmpty(a.neighborhood, a.city, a.state, a.country))
	}

	queries := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		queries = append(queries, q)
	}
	return queries
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) String() string {
	return a.Formatted()
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

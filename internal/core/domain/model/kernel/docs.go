// Package kernel provides the value objects shared by every aggregate of the
// logistics domain.
//
// The package includes:
//   - UUID: identifier for depots, orders, trucks, trips and deliveries
//   - Address: a postal address with the area (city, state, country) a route is planned in
//   - Coordinates: a geocoded longitude/latitude pair
//
// Values are immutable; zero values are rejected by Validate.
package kernel

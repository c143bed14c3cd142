// Package services provides the domain services of the trip lifecycle that do
// not belong to a single aggregate.
//
// The package includes:
//   - RoutePlanner: orders a depot's stops with a nearest-neighbor heuristic over
//     the road graph and measures the closed tour
//   - TripSimulator: estimates travel time, arrival and emissions of a trip under
//     a traffic condition without changing any state
package services

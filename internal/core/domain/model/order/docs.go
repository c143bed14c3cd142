// Package order provides the Order aggregate: a store's shipment, made of boxes,
// that depots consolidate into trips.
//
// The package includes:
//   - Order: the aggregate root holding the destination, cargo totals, status and trip link
//   - Box: a unit of cargo with payload weight and volume
//   - Status: the order lifecycle state machine
//
// Key business rules:
//   - Order totals always equal the sum of its boxes
//   - Status follows Pending -> Scheduled -> Shipped -> Delivered, with
//     Scheduled -> Pending when a planned trip is cancelled
//   - Pending and Cancelled orders are never linked to a trip,
//     Scheduled and Shipped orders always are
//   - Delivered and Cancelled are terminal
package order

// Package truck provides the Truck aggregate owned by a carrier.
//
// A truck is busy while it runs a trip: Reserve flags it active when a trip
// starts and Release frees it when the trip ends. The euro emissions class
// selects the carbon factor applied to trip distances.
package truck

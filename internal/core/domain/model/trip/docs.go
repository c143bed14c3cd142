// Package trip provides the Trip aggregate: a depot's consolidated run of
// orders executed by one truck.
//
// State transitions:
//
//	Planned ──> InTransit ──> Completed
//	   │
//	   └──> Cancelled
//
// A Planned trip has no truck and no carbon figure. Completed and Cancelled
// are terminal.
package trip

package road

import "logistics/internal/core/domain/model/kernel"

// Stop is a geocoded route waypoint. Stop 0 is always the origin.
type Stop struct {
	Address     kernel.Address
	Coordinates kernel.Coordinates
	Node        NodeID
}

// Segment is the shortest road path between two consecutive visited stops.
type Segment struct {
	From      int
	To        int
	DistanceM float64
	Path      []NodeID
}

// Route is a closed tour starting and ending at the origin.
type Route struct {
	Stops           []Stop
	VisitOrder      []int
	Segments        []Segment
	TotalDistanceKm float64
}

// StopsInVisitOrder returns the stops as visited, origin first and last.
func (r Route) StopsInVisitOrder() []Stop {
	out := make([]Stop, 0, len(r.VisitOrder))
	for _, i := range r.VisitOrder {
		out = append(out, r.Stops[i])
	}
	return out
}

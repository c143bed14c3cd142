package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/road"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var ErrRoutePlannerIsNotConstructed = errors.New("RoutePlanner must be created via NewRoutePlanner")

// RoutePlan is a planned route and its optional rendering.
type RoutePlan struct {
	Route road.Route

	// Rendering is nil when no renderer is configured or rendering failed;
	// RenderingErr holds the failure.
	Rendering    []byte
	RenderingErr error
}

// RoutePlanner computes the visiting order of a trip's stops.
//
// The order is a greedy nearest-neighbor tour: from the current position it
// always moves to the closest unvisited stop by road distance, then returns to
// the origin. It does not guarantee the shortest possible tour. Ties go to the
// stop listed first.
type RoutePlanner struct {
	geocoder ports.Geocoder
	network  ports.RoadNetwork
	renderer ports.RouteRenderer
}

// NewRoutePlanner builds a planner. renderer may be nil.
func NewRoutePlanner(geocoder ports.Geocoder, network ports.RoadNetwork, renderer ports.RouteRenderer) (*RoutePlanner, error) {
	if geocoder == nil {
		return nil, errs.NewValueIsRequiredError("geocoder")
	}
	if network == nil {
		return nil, errs.NewValueIsRequiredError("network")
	}
	return &RoutePlanner{geocoder: geocoder, network: network, renderer: renderer}, nil
}

// PlanRoute plans a closed tour from origin through every stop.
//
// Every stop must be in the origin's city, state and country, otherwise a
// RangeError is returned. An address that no geocoder query resolves fails
// with an AddressResolutionError. The total distance is in km rounded to one
// decimal.
func (p *RoutePlanner) PlanRoute(ctx context.Context, origin kernel.Address, stops []kernel.Address) (RoutePlan, error) {
	if p == nil || p.geocoder == nil {
		return RoutePlan{}, ErrRoutePlannerIsNotConstructed
	}
	if len(stops) == 0 {
		return RoutePlan{}, errs.NewValueIsRequiredError("stops")
	}
	for _, s := range stops {
		if !origin.SameArea(s) {
			return RoutePlan{}, errs.NewRangeError(s.Formatted(), origin.Area())
		}
	}

	addresses := append([]kernel.Address{origin}, stops...)
	coords := make([]kernel.Coordinates, 0, len(addresses))
	for _, a := range addresses {
		c, err := p.resolve(ctx, a)
		if err != nil {
			return RoutePlan{}, err
		}
		coords = append(coords, c)
	}

	graph, err := p.network.GraphForArea(ctx, origin.Area())
	if err != nil {
		return RoutePlan{}, fmt.Errorf("plan route: load road network for %s: %w", origin.Area(), err)
	}
	nodes, err := p.network.NearestNodes(graph, coords)
	if err != nil {
		return RoutePlan{}, fmt.Errorf("plan route: snap stops to road network: %w", err)
	}
	if len(nodes) != len(addresses) {
		return RoutePlan{}, fmt.Errorf("plan route: got %d nodes for %d stops", len(nodes), len(addresses))
	}

	route := road.Route{Stops: make([]road.Stop, len(addresses))}
	for i := range addresses {
		route.Stops[i] = road.Stop{Address: addresses[i], Coordinates: coords[i], Node: nodes[i]}
	}
	if err = sequence(graph, &route); err != nil {
		return RoutePlan{}, err
	}

	plan := RoutePlan{Route: route}
	if p.renderer != nil {
		plan.Rendering, plan.RenderingErr = p.renderer.Render(ctx, graph, route)
	}
	return plan, nil
}

// resolve tries the address queries from most to least specific.
func (p *RoutePlanner) resolve(ctx context.Context, a kernel.Address) (kernel.Coordinates, error) {
	for _, q := range a.GeocodeQueries() {
		c, err := p.geocoder.Geocode(ctx, q)
		if err != nil {
			return kernel.Coordinates{}, fmt.Errorf("plan route: geocode %q: %w", q, err)
		}
		if c != nil {
			return *c, nil
		}
	}
	return kernel.Coordinates{}, errs.NewAddressResolutionError(a.Formatted())
}

func sequence(graph *road.Graph, route *road.Route) error {
	type candidate struct {
		stop int
		dist float64
		path []road.NodeID
	}

	remaining := make([]int, 0, len(route.Stops)-1)
	for i := 1; i < len(route.Stops); i++ {
		remaining = append(remaining, i)
	}

	current := 0
	var totalM float64
	route.VisitOrder = []int{0}

	for len(remaining) > 0 {
		best := candidate{stop: -1, dist: math.Inf(1)}
		bestIdx := -1
		for idx, r := range remaining {
			dist, path, err := road.ShortestPath(graph, route.Stops[current].Node, route.Stops[r].Node, road.DefaultWeight)
			if err != nil {
				return fmt.Errorf("plan route: %w", err)
			}
			if bestIdx == -1 || dist < best.dist {
				best = candidate{stop: r, dist: dist, path: path}
				bestIdx = idx
			}
		}
		if math.IsInf(best.dist, 1) {
			return unreachable(route, current, best.stop)
		}

		route.Segments = append(route.Segments, road.Segment{From: current, To: best.stop, DistanceM: best.dist, Path: best.path})
		route.VisitOrder = append(route.VisitOrder, best.stop)
		totalM += best.dist
		current = best.stop
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	dist, path, err := road.ShortestPath(graph, route.Stops[current].Node, route.Stops[0].Node, road.DefaultWeight)
	if err != nil {
		return fmt.Errorf("plan route: %w", err)
	}
	if math.IsInf(dist, 1) {
		return unreachable(route, current, 0)
	}
	route.Segments = append(route.Segments, road.Segment{From: current, To: 0, DistanceM: dist, Path: path})
	route.VisitOrder = append(route.VisitOrder, 0)
	totalM += dist

	route.TotalDistanceKm = math.Round(totalM/1000*10) / 10
	return nil
}

func unreachable(route *road.Route, from, to int) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"route",
		fmt.Errorf("no road path from %s to %s", route.Stops[from].Address.Formatted(), route.Stops[to].Address.Formatted()),
	)
}

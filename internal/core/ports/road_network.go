package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/road"
)

// RoadNetwork provides the drivable road graph of an area, described as
// "city, state, country".
type RoadNetwork interface {
	GraphForArea(ctx context.Context, area string) (*road.Graph, error)

	// NearestNodes snaps each point to its closest graph node, preserving order.
	NearestNodes(graph *road.Graph, points []kernel.Coordinates) ([]road.NodeID, error)
}

// RouteRenderer turns a planned route into a display artifact. Rendering is
// advisory: callers keep the route even when rendering fails.
type RouteRenderer interface {
	Render(ctx context.Context, graph *road.Graph, route road.Route) ([]byte, error)
}

// Package rendering draws planned routes as GeoJSON feature collections: one
// LineString per road segment and one Point per stop.
package rendering

import (
	"context"
	"encoding/json"
	"fmt"

	"logistics/internal/core/domain/model/road"
	"logistics/internal/pkg/errs"
)

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string         `json:"type"`
	Geometry   geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// GeoJSONRenderer implements ports.RouteRenderer.
type GeoJSONRenderer struct{}

func NewGeoJSONRenderer() *GeoJSONRenderer {
	return &GeoJSONRenderer{}
}

func (r *GeoJSONRenderer) Render(_ context.Context, graph *road.Graph, route road.Route) ([]byte, error) {
	if graph == nil {
		return nil, errs.NewValueIsRequiredError("graph")
	}

	features := make([]feature, 0, len(route.Segments)+len(route.Stops))
	for i, seg := range route.Segments {
		line := make([][2]float64, 0, len(seg.Path))
		for _, id := range seg.Path {
			n, ok := graph.Node(id)
			if !ok {
				return nil, fmt.Errorf("render segment %d: %w", i, errs.NewObjectNotFoundError("node", id))
			}
			line = append(line, [2]float64{n.Lon, n.Lat})
		}
		features = append(features, feature{
			Type:     "Feature",
			Geometry: geometry{Type: "LineString", Coordinates: line},
			Properties: map[string]any{
				"kind":       "segment",
				"sequence":   i,
				"from":       seg.From,
				"to":         seg.To,
				"distance_m": seg.DistanceM,
			},
		})
	}

	visit := make(map[int]int, len(route.Stops))
	for pos, stop := range route.VisitOrder {
		if _, seen := visit[stop]; !seen {
			visit[stop] = pos
		}
	}
	for i, stop := range route.Stops {
		features = append(features, feature{
			Type:     "Feature",
			Geometry: geometry{Type: "Point", Coordinates: [2]float64{stop.Coordinates.Lon(), stop.Coordinates.Lat()}},
			Properties: map[string]any{
				"kind":    "stop",
				"stop":    i,
				"visit":   visit[i],
				"origin":  i == 0,
				"address": stop.Address.Formatted(),
			},
		})
	}

	return json.Marshal(featureCollection{Type: "FeatureCollection", Features: features})
}

// Package road models a drivable road network as a directed multigraph and
// finds shortest paths over it.
package road

import (
	"fmt"
	"math"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// DefaultWeight is the edge attribute holding a segment's physical length in meters.
const DefaultWeight = "length"

const earthRadiusM = 6371000.0

type NodeID int64

type Node struct {
	ID  NodeID
	Lon float64
	Lat float64
}

// Edge is one road segment. Several edges may join the same pair of nodes.
type Edge struct {
	From  NodeID
	To    NodeID
	Attrs map[string]float64
}

// Weight returns the named attribute, 1 when the edge does not carry it.
func (e Edge) Weight(key string) float64 {
	if w, ok := e.Attrs[key]; ok {
		return w
	}
	return 1
}

// Graph is a directed road multigraph. Neighbor iteration follows insertion order.
type Graph struct {
	nodes     map[NodeID]Node
	nodeOrder []NodeID
	adjacency map[NodeID][]NodeID
	edges     map[NodeID]map[NodeID][]Edge
}

func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]Node),
		adjacency: make(map[NodeID][]NodeID),
		edges:     make(map[NodeID]map[NodeID][]Edge),
	}
}

// AddNode inserts a node or updates the coordinates of an existing one.
func (g *Graph) AddNode(n Node) {
	if _, ok := g.nodes[n.ID]; !ok {
		g.nodeOrder = append(g.nodeOrder, n.ID)
	}
	g.nodes[n.ID] = n
}

// AddEdge inserts a directed segment. Both endpoints must exist and weights
// must not be negative.
func (g *Graph) AddEdge(e Edge) error {
	if !g.HasNode(e.From) {
		return errs.NewObjectNotFoundError("from", e.From)
	}
	if !g.HasNode(e.To) {
		return errs.NewObjectNotFoundError("to", e.To)
	}
	for k, w := range e.Attrs {
		if w < 0 || math.IsNaN(w) {
			return errs.NewValueIsInvalidErrorWithCause("edge weight", fmt.Errorf("%s=%v must not be negative", k, w))
		}
	}

	targets, ok := g.edges[e.From]
	if !ok {
		targets = make(map[NodeID][]Edge)
		g.edges[e.From] = targets
	}
	if _, seen := targets[e.To]; !seen {
		g.adjacency[e.From] = append(g.adjacency[e.From], e.To)
	}
	targets[e.To] = append(targets[e.To], e)
	return nil
}

func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) Node(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

func (g *Graph) EdgeCount() int {
	count := 0
	for _, targets := range g.edges {
		for _, parallel := range targets {
			count += len(parallel)
		}
	}
	return count
}

// Neighbors returns the nodes reachable from id through one segment.
func (g *Graph) Neighbors(id NodeID) []NodeID {
	return g.adjacency[id]
}

// MinWeight returns the smallest weight among the parallel edges from -> to.
func (g *Graph) MinWeight(from, to NodeID, key string) (float64, bool) {
	parallel := g.edges[from][to]
	if len(parallel) == 0 {
		return 0, false
	}
	best := math.Inf(1)
	for _, e := range parallel {
		best = math.Min(best, e.Weight(key))
	}
	return best, true
}

// NearestNode returns the node closest to c by great-circle distance.
// Ties go to the node inserted first.
func (g *Graph) NearestNode(c kernel.Coordinates) (NodeID, error) {
	if len(g.nodeOrder) == 0 {
		return 0, errs.NewValueIsRequiredError("graph nodes")
	}
	var (
		best     NodeID
		bestDist = math.Inf(1)
	)
	for _, id := range g.nodeOrder {
		n := g.nodes[id]
		if d := haversine(c.Lat(), c.Lon(), n.Lat, n.Lon); d < bestDist {
			best, bestDist = id, d
		}
	}
	return best, nil
}

// DistanceM is the great-circle distance between two nodes in meters.
func DistanceM(a, b Node) float64 {
	return haversine(a.Lat, a.Lon, b.Lat, b.Lon)
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusM * math.Asin(math.Sqrt(a))
}

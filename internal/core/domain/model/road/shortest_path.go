package road

import (
	"container/heap"
	"math"

	"logistics/internal/pkg/errs"
)

type queueItem struct {
	node NodeID
	dist float64
	seq  int
}

// distanceQueue is a min-heap on tentative distance; equal distances pop in
// push order.
type distanceQueue []queueItem

func (q distanceQueue) Len() int { return len(q) }
func (q distanceQueue) Less(i, j int) bool {
	if q[i].dist == q[j].dist {
		return q[i].seq < q[j].seq
	}
	return q[i].dist < q[j].dist
}
func (q distanceQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *distanceQueue) Push(x any) { *q = append(*q, x.(queueItem)) }
func (q *distanceQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// ShortestPath runs Dijkstra from start to target using the named edge weight.
// Parallel edges count with their minimum weight. An unreachable target yields
// +Inf and a nil path. When several paths are minimal any one of them is returned.
// The graph is not modified.
func ShortestPath(g *Graph, start, target NodeID, weightKey string) (float64, []NodeID, error) {
	if !g.HasNode(start) {
		return 0, nil, errs.NewObjectNotFoundError("start node", start)
	}
	if !g.HasNode(target) {
		return 0, nil, errs.NewObjectNotFoundError("target node", target)
	}
	if weightKey == "" {
		weightKey = DefaultWeight
	}

	dist := map[NodeID]float64{start: 0}
	prev := make(map[NodeID]NodeID)
	visited := make(map[NodeID]bool)

	seq := 0
	q := &distanceQueue{{node: start, dist: 0, seq: seq}}

	for q.Len() > 0 {
		item := heap.Pop(q).(queueItem)
		u := item.node
		if visited[u] {
			continue
		}
		visited[u] = true

		if u == target {
			return item.dist, buildPath(prev, start, target), nil
		}

		for _, v := range g.Neighbors(u) {
			if visited[v] {
				continue
			}
			w, _ := g.MinWeight(u, v, weightKey)
			alt := item.dist + w
			if current, ok := dist[v]; !ok || alt < current {
				dist[v] = alt
				prev[v] = u
				seq++
				heap.Push(q, queueItem{node: v, dist: alt, seq: seq})
			}
		}
	}

	return math.Inf(1), nil, nil
}

func buildPath(prev map[NodeID]NodeID, start, target NodeID) []NodeID {
	path := []NodeID{target}
	for node := target; node != start; {
		node = prev[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

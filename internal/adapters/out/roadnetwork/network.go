package roadnetwork

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/road"
	"logistics/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
)

const DefaultTTL = 6 * time.Hour

// GraphFetcher downloads the road graph of an area.
type GraphFetcher interface {
	FetchGraph(ctx context.Context, area string) (*road.Graph, error)
}

type cachedGraph struct {
	graph     *road.Graph
	expiresAt time.Time
}

// CachedNetwork implements ports.RoadNetwork. Graphs are cached per area until
// their TTL runs out; concurrent misses for one area share a single download.
type CachedNetwork struct {
	fetcher GraphFetcher
	ttl     time.Duration
	now     func() time.Time

	mu     sync.RWMutex
	graphs map[string]cachedGraph
	group  singleflight.Group

	logger *slog.Logger
}

func NewCachedNetwork(fetcher GraphFetcher, ttl time.Duration, logger *slog.Logger) (*CachedNetwork, error) {
	if fetcher == nil {
		return nil, errs.NewValueIsRequiredError("fetcher")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedNetwork{
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
		graphs:  make(map[string]cachedGraph),
		logger:  logger.With("component", "road_network"),
	}, nil
}

func (n *CachedNetwork) GraphForArea(ctx context.Context, area string) (*road.Graph, error) {
	key := areaKey(area)
	if key == "" {
		return nil, errs.NewValueIsRequiredError("area")
	}

	if g, ok := n.lookup(key); ok {
		return g, nil
	}

	// the download outlives any single caller; each caller still stops
	// waiting when its own context ends
	results := n.group.DoChan(key, func() (interface{}, error) {
		if g, ok := n.lookup(key); ok {
			return g, nil
		}

		fetchCtx := context.WithoutCancel(ctx)
		started := n.now()
		g, err := n.fetcher.FetchGraph(fetchCtx, area)
		if err != nil {
			return nil, err
		}

		n.mu.Lock()
		n.graphs[key] = cachedGraph{graph: g, expiresAt: n.now().Add(n.ttl)}
		n.mu.Unlock()

		n.logger.InfoContext(fetchCtx, "road graph loaded",
			"area", area,
			"nodes", g.NodeCount(),
			"edges", g.EdgeCount(),
			"took", n.now().Sub(started).String(),
		)
		return g, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("road graph for %s: %w", area, ctx.Err())
	case res := <-results:
		if res.Err != nil {
			return nil, fmt.Errorf("road graph for %s: %w", area, res.Err)
		}
		return res.Val.(*road.Graph), nil
	}
}

// NearestNodes snaps each point to its closest graph node, preserving order.
func (n *CachedNetwork) NearestNodes(graph *road.Graph, points []kernel.Coordinates) ([]road.NodeID, error) {
	if graph == nil {
		return nil, errs.NewValueIsRequiredError("graph")
	}
	nodes := make([]road.NodeID, 0, len(points))
	for _, p := range points {
		id, err := graph.NearestNode(p)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, id)
	}
	return nodes, nil
}

// EvictExpired drops every graph whose TTL has run out and returns how many
// were removed.
func (n *CachedNetwork) EvictExpired() int {
	now := n.now()

	n.mu.Lock()
	defer n.mu.Unlock()

	evicted := 0
	for key, entry := range n.graphs {
		if !now.Before(entry.expiresAt) {
			delete(n.graphs, key)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of cached areas, expired ones included.
func (n *CachedNetwork) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.graphs)
}

func (n *CachedNetwork) lookup(key string) (*road.Graph, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	entry, ok := n.graphs[key]
	if !ok || !n.now().Before(entry.expiresAt) {
		return nil, false
	}
	return entry.graph, true
}

func areaKey(area string) string {
	parts := strings.Split(area, ",")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Trim(strings.Join(parts, ","), ",")
}

// Package roadnetwork downloads drivable road graphs from an Overpass API
// endpoint and keeps them in memory per area for a configurable time.
package roadnetwork

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"logistics/internal/core/domain/model/road"
	"logistics/internal/pkg/errs"
)

const (
	DefaultOverpassURL = "https://overpass-api.de/api/interpreter"
	DefaultTimeout     = 60 * time.Second
)

// cityAdminLevels are the OSM admin_level values used for municipalities.
const cityAdminLevels = "6|7|8"

// drivable highway classes, matching a "drive" network.
const driveHighways = "motorway|trunk|primary|secondary|tertiary|unclassified|residential|living_street|" +
	"motorway_link|trunk_link|primary_link|secondary_link|tertiary_link"

type element struct {
	Type  string            `json:"type"`
	ID    int64             `json:"id"`
	Lat   float64           `json:"lat"`
	Lon   float64           `json:"lon"`
	Nodes []int64           `json:"nodes"`
	Tags  map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []element `json:"elements"`
}

// OverpassClient fetches the raw OSM ways and nodes of an area.
type OverpassClient struct {
	session  *http.Client
	endpoint string
}

func NewOverpassClient(endpoint string, timeout time.Duration) (*OverpassClient, error) {
	if endpoint == "" {
		endpoint = DefaultOverpassURL
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("endpoint", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OverpassClient{
		session:  &http.Client{Timeout: timeout},
		endpoint: endpoint,
	}, nil
}

// place is an area description, "city, state, country", split into its parts.
// State and country are optional.
type place struct {
	City    string
	State   string
	Country string
}

func parsePlace(area string) place {
	var p place
	for i, part := range strings.Split(area, ",") {
		part = strings.TrimSpace(part)
		switch i {
		case 0:
			p.City = part
		case 1:
			p.State = part
		case 2:
			p.Country = part
		}
	}
	return p
}

// FetchGraph downloads the drive network of the city in area ("city, state,
// country"). The city is looked up inside its state, and the state inside its
// country, so same-named boundaries elsewhere are not matched.
func (c *OverpassClient) FetchGraph(ctx context.Context, area string) (*road.Graph, error) {
	p := parsePlace(area)
	if p.City == "" {
		return nil, errs.NewValueIsRequiredError("area")
	}

	form := url.Values{}
	form.Set("data", buildQuery(p, c.session.Timeout))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("overpass request: code %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var payload overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}
	return buildGraph(payload.Elements)
}

func buildQuery(p place, timeout time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n", int(timeout.Seconds()))

	scope := ""
	if p.Country != "" {
		fmt.Fprintf(&b, `area["boundary"="administrative"]["admin_level"="2"]`+
			`[~"^(name|name:en|int_name|ISO3166-1)$"~"^%s$",i]->.country;`+"\n", pattern(p.Country))
		scope = "(area.country)"
	}
	if p.State != "" {
		// states are matched by name or code, "SP" and "BR-SP" alike
		fmt.Fprintf(&b, `rel%s["boundary"="administrative"]["admin_level"="4"]`+
			`[~"^(name|ref|short_name|ISO3166-2)$"~"^([a-z]{2}-)?%s$",i];`+"\n", scope, pattern(p.State))
		b.WriteString("map_to_area->.state;\n")
		scope = "(area.state)"
	}
	fmt.Fprintf(&b, `rel%s["boundary"="administrative"]["admin_level"~"^(%s)$"]["name"~"^%s$",i];`+"\n",
		scope, cityAdminLevels, pattern(p.City))
	b.WriteString("map_to_area->.a;\n")
	fmt.Fprintf(&b, `way(area.a)["highway"~"^(%s)$"];`+"\n", driveHighways)
	b.WriteString("(._;>;);\nout body;")
	return b.String()
}

// pattern turns a name into a literal regular expression inside a quoted
// Overpass QL string.
func pattern(name string) string {
	quoted := regexp.QuoteMeta(name)
	quoted = strings.ReplaceAll(quoted, `\`, `\\`)
	return strings.ReplaceAll(quoted, `"`, `\"`)
}

// buildGraph links consecutive way nodes with segments weighted by their
// length in meters. Ways are two-way unless tagged oneway or a motorway.
func buildGraph(elements []element) (*road.Graph, error) {
	g := road.NewGraph()
	for _, e := range elements {
		if e.Type == "node" {
			g.AddNode(road.Node{ID: road.NodeID(e.ID), Lon: e.Lon, Lat: e.Lat})
		}
	}

	for _, e := range elements {
		if e.Type != "way" {
			continue
		}
		forward, backward := directions(e.Tags)
		for i := 1; i < len(e.Nodes); i++ {
			from, okFrom := g.Node(road.NodeID(e.Nodes[i-1]))
			to, okTo := g.Node(road.NodeID(e.Nodes[i]))
			if !okFrom || !okTo {
				continue
			}
			attrs := map[string]float64{road.DefaultWeight: road.DistanceM(from, to)}
			if forward {
				if err := g.AddEdge(road.Edge{From: from.ID, To: to.ID, Attrs: attrs}); err != nil {
					return nil, err
				}
			}
			if backward {
				if err := g.AddEdge(road.Edge{From: to.ID, To: from.ID, Attrs: attrs}); err != nil {
					return nil, err
				}
			}
		}
	}

	if g.EdgeCount() == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("road network", fmt.Errorf("area has no drivable roads"))
	}
	return g, nil
}

func directions(tags map[string]string) (forward, backward bool) {
	switch tags["oneway"] {
	case "yes", "true", "1":
		return true, false
	case "-1", "reverse":
		return false, true
	case "no", "false", "0":
		return true, true
	}
	if tags["highway"] == "motorway" || tags["junction"] == "roundabout" {
		return true, false
	}
	return true, true
}

package roadnetwork

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"logistics/internal/core/domain/model/road"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{"elements":[
	{"type":"node","id":1,"lat":-23.5500,"lon":-46.6300},
	{"type":"node","id":2,"lat":-23.5510,"lon":-46.6300},
	{"type":"node","id":3,"lat":-23.5520,"lon":-46.6300},
	{"type":"node","id":4,"lat":-23.5520,"lon":-46.6310},
	{"type":"way","id":100,"nodes":[1,2,3],"tags":{"highway":"residential"}},
	{"type":"way","id":101,"nodes":[3,4],"tags":{"highway":"primary","oneway":"yes"}},
	{"type":"way","id":102,"nodes":[4,99],"tags":{"highway":"primary"}}
]}`

func TestOverpassClient_FetchGraph(t *testing.T) {
	t.Run("should build a graph from ways and nodes", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			body, _ := io.ReadAll(r.Body)
			form, err := url.ParseQuery(string(body))
			require.NoError(t, err)
			assert.Contains(t, form.Get("data"), `["name"~"^São Paulo$",i]`)
			assert.Contains(t, form.Get("data"), "[timeout:5]")
			_, _ = w.Write([]byte(sampleResponse))
		}))
		defer srv.Close()

		c, err := NewOverpassClient(srv.URL, 5*time.Second)
		require.NoError(t, err)

		g, err := c.FetchGraph(t.Context(), "São Paulo, SP, Brasil")

		require.NoError(t, err)
		assert.Equal(t, 4, g.NodeCount())
		// 1-2 and 2-3 both ways, 3-4 one way, 4-99 skipped
		assert.Equal(t, 5, g.EdgeCount())

		w, ok := g.MinWeight(1, 2, road.DefaultWeight)
		require.True(t, ok)
		assert.InDelta(t, 111.2, w, 0.5)

		_, ok = g.MinWeight(4, 3, road.DefaultWeight)
		assert.False(t, ok)
	})

	t.Run("should surface http errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		c, err := NewOverpassClient(srv.URL, time.Second)
		require.NoError(t, err)

		_, err = c.FetchGraph(t.Context(), "Campinas, SP, Brasil")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "code 429")
	})

	t.Run("should fail when the area has no roads", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"elements":[]}`))
		}))
		defer srv.Close()

		c, err := NewOverpassClient(srv.URL, time.Second)
		require.NoError(t, err)

		_, err = c.FetchGraph(t.Context(), "Atlantis")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should require an area", func(t *testing.T) {
		c, err := NewOverpassClient("", 0)
		require.NoError(t, err)

		_, err = c.FetchGraph(t.Context(), " , SP")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestBuildQuery(t *testing.T) {
	t.Run("should look up the city inside its state and country", func(t *testing.T) {
		q := buildQuery(parsePlace("São Paulo, SP, Brasil"), 60*time.Second)

		assert.Contains(t, q, "[timeout:60]")
		assert.Contains(t, q, `area["boundary"="administrative"]["admin_level"="2"]`+
			`[~"^(name|name:en|int_name|ISO3166-1)$"~"^Brasil$",i]->.country;`)
		assert.Contains(t, q, `rel(area.country)["boundary"="administrative"]["admin_level"="4"]`+
			`[~"^(name|ref|short_name|ISO3166-2)$"~"^([a-z]{2}-)?SP$",i];`)
		assert.Contains(t, q, "map_to_area->.state;")
		assert.Contains(t, q, `rel(area.state)["boundary"="administrative"]["admin_level"~"^(6|7|8)$"]`+
			`["name"~"^São Paulo$",i];`)
		assert.Contains(t, q, "way(area.a)")
		assert.NotContains(t, q, `area["name"="São Paulo"]`)
	})

	t.Run("should skip missing levels", func(t *testing.T) {
		q := buildQuery(parsePlace("Campinas"), time.Second)

		assert.NotContains(t, q, "area.country")
		assert.NotContains(t, q, "area.state")
		assert.Contains(t, q, `rel["boundary"="administrative"]["admin_level"~"^(6|7|8)$"]["name"~"^Campinas$",i];`)
	})

	t.Run("should search a city without state inside its country", func(t *testing.T) {
		q := buildQuery(parsePlace("Campinas, , Brasil"), time.Second)

		assert.NotContains(t, q, "area.state")
		assert.Contains(t, q, `rel(area.country)["boundary"="administrative"]["admin_level"~"^(6|7|8)$"]`)
	})

	t.Run("should escape names", func(t *testing.T) {
		q := buildQuery(parsePlace(`St. "Louis"`), time.Second)

		assert.Contains(t, q, `["name"~"^St\\. \"Louis\"$",i]`)
	})
}

func TestDirections(t *testing.T) {
	tests := []struct {
		name              string
		tags              map[string]string
		forward, backward bool
	}{
		{"two way by default", map[string]string{"highway": "residential"}, true, true},
		{"oneway", map[string]string{"oneway": "yes"}, true, false},
		{"reverse oneway", map[string]string{"oneway": "-1"}, false, true},
		{"motorway is oneway", map[string]string{"highway": "motorway"}, true, false},
		{"explicit two way motorway", map[string]string{"highway": "motorway", "oneway": "no"}, true, true},
		{"roundabout", map[string]string{"junction": "roundabout"}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forward, backward := directions(tt.tags)
			assert.Equal(t, tt.forward, forward)
			assert.Equal(t, tt.backward, backward)
		})
	}
}

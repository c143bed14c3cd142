package servers

import (
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pathParam = regexp.MustCompile(`\{([^}]+)\}`)

func TestRegisterHandlers_MatchesOpenAPI(t *testing.T) {
	doc, err := openapi3.NewLoader().LoadFromData(RawSpec())
	require.NoError(t, err)

	documented := make([]string, 0)
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			documented = append(documented, strings.ToUpper(method)+" "+pathParam.ReplaceAllString(path, ":$1"))
		}
	}
	sort.Strings(documented)

	e := echo.New()
	RegisterHandlers(e, nil)
	registered := make([]string, 0)
	for _, r := range e.Routes() {
		registered = append(registered, r.Method+" "+r.Path)
	}
	sort.Strings(registered)

	assert.Equal(t, documented, registered)
}

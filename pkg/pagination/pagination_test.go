package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func parseQuery(t *testing.T, query string) Params {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/departments"+query, nil)
	return Parse(c)
}

func TestParseDefaults(t *testing.T) {
	params := parseQuery(t, "")
	assert.Equal(t, DefaultPage, params.Page)
	assert.Equal(t, DefaultLimit, params.Limit)
	assert.Equal(t, 0, params.Offset)
}

func TestParseClamping(t *testing.T) {
	params := parseQuery(t, "?page=0&limit=-3")
	assert.Equal(t, DefaultPage, params.Page)
	assert.Equal(t, DefaultLimit, params.Limit)

	params = parseQuery(t, "?page=3&limit=500")
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, MaxLimit, params.Limit)
	assert.Equal(t, 2*MaxLimit, params.Offset)
}

func TestParseValid(t *testing.T) {
	params := parseQuery(t, "?page=2&limit=10")
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, 10, params.Offset)
}

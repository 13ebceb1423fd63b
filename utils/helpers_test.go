package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestParsePaginationDefaults(t *testing.T) {
	page, pageSize := ParsePagination(testContext(t, "/projects"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, pageSize)
}

func TestParsePagination(t *testing.T) {
	page, pageSize := ParsePagination(testContext(t, "/projects?page=3&pageSize=25"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, pageSize)
}

func TestParsePaginationRejectsBadValues(t *testing.T) {
	page, pageSize := ParsePagination(testContext(t, "/projects?page=-1&pageSize=abc"))
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, pageSize)
}

func TestParseDateQuery(t *testing.T) {
	got := ParseDateQuery(testContext(t, "/schedule/layout?from=2026-03-02"), "from")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), *got)

	got = ParseDateQuery(testContext(t, "/schedule/layout?from=2026-03-02T08:00:00Z"), "from")
	require.NotNil(t, got)
	assert.Equal(t, 8, got.Hour())

	assert.Nil(t, ParseDateQuery(testContext(t, "/schedule/layout"), "from"))
	assert.Nil(t, ParseDateQuery(testContext(t, "/schedule/layout?from=yesterday"), "from"))
}

func TestGenerateSecurePassword(t *testing.T) {
	p1 := GenerateSecurePassword(12)
	p2 := GenerateSecurePassword(12)
	assert.Len(t, p1, 12)
	assert.NotEqual(t, p1, p2)

	// Short requests are raised to the minimum
	assert.GreaterOrEqual(t, len(GenerateSecurePassword(3)), 8)
}

func TestCalculatePercentage(t *testing.T) {
	assert.Equal(t, 50.0, CalculatePercentage(30, 60))
	assert.Equal(t, 0.0, CalculatePercentage(30, 0))
}

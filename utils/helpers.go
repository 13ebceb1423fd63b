package utils

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ParsePagination reads page and pageSize query parameters with sane defaults
func ParsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	return page, pageSize
}

// ParseDateQuery reads an optional date query parameter, accepting RFC 3339
// or plain YYYY-MM-DD. Returns nil when absent or unparseable.
func ParseDateQuery(c *gin.Context, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return &parsed
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return &parsed
	}

	return nil
}

package helper_util

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetPaginationParams reads limit and offset, defaulting to 50 and 0
func GetPaginationParams(c *gin.Context) (limit int, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		return 0, 0, err
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		return 0, 0, err
	}
	if limit <= 0 || offset < 0 {
		return 0, 0, fmt.Errorf("limit must be positive and offset non-negative")
	}
	return limit, offset, nil
}

// GetTimeParam parses an RFC3339 query parameter, returning def when it is absent
func GetTimeParam(c *gin.Context, key string, def time.Time) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %w", key, err)
	}
	return t, nil
}

// Page returns the window [offset, offset+limit) of items
func Page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// utils/pagination.go
package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ParsePagination reads skip/limit query params. Out-of-range values are an
// error, not clamped, so callers get told instead of silently getting a
// different page than they asked for.
func ParsePagination(c *gin.Context) (skip int, limit int, err error) {
	skip, limit = 0, DefaultLimit

	if v := c.Query("skip"); v != "" {
		skip, err = strconv.Atoi(v)
		if err != nil || skip < 0 {
			return 0, 0, errors.New("skip must be an integer >= 0")
		}
	}

	if v := c.Query("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 || limit > MaxLimit {
			return 0, 0, errors.New("limit must be an integer between 1 and 200")
		}
	}

	return skip, limit, nil
}

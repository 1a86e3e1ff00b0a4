package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type bounds struct {
	def, min, max int32
}

var (
	workspacePage = bounds{def: 50, min: 1, max: 100}
	runPage       = bounds{def: 50, min: 1, max: 200}
	embeddedRuns  = bounds{def: 10, min: 1, max: 100}
)

// queryInt32 reads an optional bounded integer query parameter. It writes a
// 400 and returns false when the value is malformed or out of range.
func queryInt32(c *gin.Context, name string, b bounds) (int32, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return b.def, true
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || int32(v) < b.min || int32(v) > b.max {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("%s must be an integer between %d and %d", name, b.min, b.max),
		})
		return 0, false
	}
	return int32(v), true
}

func queryOffset(c *gin.Context) (int32, bool) {
	raw, ok := c.GetQuery("offset")
	if !ok || raw == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
		return 0, false
	}
	return int32(v), true
}

// page reads limit and offset for a list endpoint.
func page(c *gin.Context, b bounds) (limit, offset int32, ok bool) {
	if limit, ok = queryInt32(c, "limit", b); !ok {
		return 0, 0, false
	}
	if offset, ok = queryOffset(c); !ok {
		return 0, 0, false
	}
	return limit, offset, true
}

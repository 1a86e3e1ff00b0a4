package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"launchloom.app/studio/common/cache"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache *cache.Cache
}

func NewHealthHandler(db Pinger, c *cache.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

// Check always answers 200 while the process is up. Dependency status is
// reported in the body.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	database := "ok"
	if h.db == nil {
		database = "disabled"
	} else if err := h.db.Ping(ctx); err != nil {
		database = "unavailable"
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = h.cache.HealthCheck(ctx).Status
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": database,
		"cache":    cacheStatus,
	})
}

func Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

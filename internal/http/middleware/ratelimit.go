package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"launchloom.app/studio/common/cache"
)

const rateLimitWindow = time.Minute

// RateLimit allows perMinute requests per client IP in fixed one minute
// windows counted in the cache. When the cache is unavailable every request
// is let through.
func RateLimit(counter *cache.Cache, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if perMinute <= 0 {
			c.Next()
			return
		}

		now := time.Now()
		window := now.Unix() / int64(rateLimitWindow/time.Second)
		key := cache.RateLimitKey(c.ClientIP(), window)

		count, ok := counter.Increment(c.Request.Context(), key, 1)
		if !ok {
			c.Next()
			return
		}
		if count == 1 {
			counter.Expire(c.Request.Context(), key, rateLimitWindow)
		}

		remaining := int64(perMinute) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(perMinute))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(perMinute) {
			resetIn := rateLimitWindow - now.Sub(now.Truncate(rateLimitWindow))
			c.Header("Retry-After", strconv.Itoa(int(resetIn.Seconds())+1))
			slog.WarnContext(c.Request.Context(), "rate limit exceeded",
				"client_ip", c.ClientIP(),
				"count", count,
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}

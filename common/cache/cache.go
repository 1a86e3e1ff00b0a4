// Package cache wraps Redis as a best-effort key/value store. Errors are
// logged and reported as misses, never returned.
//
// The server uses it for rate limiting and health checks. The remaining
// operations and the key helpers are general-purpose: no entity write reads
// or invalidates cached values.
package cache

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL     = time.Hour
	scanBatchSize  = 500
	healthCheckKey = "health_check"
)

// Cache is a best-effort JSON key/value facade over Redis. Store errors are
// logged and reported as a miss or a failed write, never returned. A nil
// *Cache behaves as an always-empty cache.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to the Redis instance at url and verifies it with a ping.
func New(ctx context.Context, url string, ttl time.Duration) (*Cache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return NewWithClient(client, ttl), nil
}

func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// Get decodes the value at key into dest and reports whether it was found.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warn(ctx, "cache get failed", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.warn(ctx, "cache value is not valid json", key, err)
		return false
	}
	return true
}

// Set stores value as JSON. A ttl of zero uses the configured default.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) bool {
	if c == nil {
		return false
	}
	data, err := json.Marshal(value)
	if err != nil {
		c.warn(ctx, "cache value not serializable", key, err)
		return false
	}
	if err := c.client.Set(ctx, key, data, c.ttlOrDefault(ttl)).Err(); err != nil {
		c.warn(ctx, "cache set failed", key, err)
		return false
	}
	return true
}

// Delete reports whether a key was removed.
func (c *Cache) Delete(ctx context.Context, key string) bool {
	if c == nil {
		return false
	}
	n, err := c.client.Del(ctx, key).Result()
	if err != nil {
		c.warn(ctx, "cache delete failed", key, err)
		return false
	}
	return n > 0
}

func (c *Cache) Exists(ctx context.Context, key string) bool {
	if c == nil {
		return false
	}
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		c.warn(ctx, "cache exists failed", key, err)
		return false
	}
	return n > 0
}

// Increment adds amount to the integer at key. ok is false when the store
// could not be reached.
func (c *Cache) Increment(ctx context.Context, key string, amount int64) (value int64, ok bool) {
	if c == nil {
		return 0, false
	}
	value, err := c.client.IncrBy(ctx, key, amount).Result()
	if err != nil {
		c.warn(ctx, "cache increment failed", key, err)
		return 0, false
	}
	return value, true
}

func (c *Cache) Expire(ctx context.Context, key string, ttl time.Duration) bool {
	if c == nil {
		return false
	}
	ok, err := c.client.Expire(ctx, key, ttl).Result()
	if err != nil {
		c.warn(ctx, "cache expire failed", key, err)
		return false
	}
	return ok
}

// GetMany returns the raw JSON of every key that is present and decodable.
func (c *Cache) GetMany(ctx context.Context, keys []string) map[string]json.RawMessage {
	result := make(map[string]json.RawMessage, len(keys))
	if c == nil || len(keys) == 0 {
		return result
	}
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.warn(ctx, "cache get_many failed", strings.Join(keys, ","), err)
		return result
	}
	for i, v := range values {
		s, ok := v.(string)
		if !ok || !json.Valid([]byte(s)) {
			continue
		}
		result[keys[i]] = json.RawMessage(s)
	}
	return result
}

// SetMany writes all values in one pipeline with the same ttl.
func (c *Cache) SetMany(ctx context.Context, values map[string]any, ttl time.Duration) bool {
	if c == nil {
		return false
	}
	if len(values) == 0 {
		return true
	}
	ttl = c.ttlOrDefault(ttl)
	pipe := c.client.Pipeline()
	for key, value := range values {
		data, err := json.Marshal(value)
		if err != nil {
			c.warn(ctx, "cache value not serializable", key, err)
			return false
		}
		pipe.Set(ctx, key, data, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.warn(ctx, "cache set_many failed", "", err)
		return false
	}
	return true
}

// ClearPattern deletes every key matching pattern and returns how many
// were removed. Uses SCAN so large keyspaces are not blocked.
func (c *Cache) ClearPattern(ctx context.Context, pattern string) int64 {
	if c == nil {
		return 0
	}
	var (
		cursor  uint64
		deleted int64
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			c.warn(ctx, "cache clear_pattern failed", pattern, err)
			return deleted
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				c.warn(ctx, "cache clear_pattern failed", pattern, err)
				return deleted
			}
			deleted += n
		}
		if next == 0 {
			return deleted
		}
		cursor = next
	}
}

type Health struct {
	Status           string `json:"redis"`
	Connection       string `json:"connection"`
	Version          string `json:"version,omitempty"`
	ConnectedClients string `json:"connected_clients,omitempty"`
	UsedMemoryHuman  string `json:"used_memory_human,omitempty"`
	TestOperation    string `json:"test_operation,omitempty"`
	Error            string `json:"error,omitempty"`
}

func (h Health) Healthy() bool {
	return h.Status == "healthy"
}

// HealthCheck pings Redis and runs a set/get/delete round trip.
func (c *Cache) HealthCheck(ctx context.Context) Health {
	if c == nil {
		return Health{Status: "unhealthy", Connection: "failed", Error: "cache not configured"}
	}

	unhealthy := func(err error) Health {
		slog.ErrorContext(ctx, "redis health check failed", "error", err)
		return Health{Status: "unhealthy", Connection: "failed", Error: err.Error()}
	}

	if err := c.client.Ping(ctx).Err(); err != nil {
		return unhealthy(err)
	}
	if err := c.client.Set(ctx, healthCheckKey, "ok", time.Second).Err(); err != nil {
		return unhealthy(err)
	}
	value, err := c.client.Get(ctx, healthCheckKey).Result()
	if err != nil {
		return unhealthy(err)
	}
	if err := c.client.Del(ctx, healthCheckKey).Err(); err != nil {
		return unhealthy(err)
	}

	health := Health{Status: "healthy", Connection: "active", TestOperation: "failed"}
	if value == "ok" {
		health.TestOperation = "success"
	}

	// INFO is informational only; some servers restrict it.
	if info, err := c.client.Info(ctx).Result(); err == nil {
		fields := parseInfo(info)
		health.Version = fields["redis_version"]
		health.ConnectedClients = fields["connected_clients"]
		health.UsedMemoryHuman = fields["used_memory_human"]
	}
	return health
}

func (c *Cache) ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return c.ttl
	}
	return ttl
}

func (c *Cache) warn(ctx context.Context, msg, key string, err error) {
	slog.WarnContext(ctx, msg, "key", key, "error", err)
}

func parseInfo(info string) map[string]string {
	fields := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(info))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if k, v, ok := strings.Cut(line, ":"); ok {
			fields[k] = v
		}
	}
	return fields
}

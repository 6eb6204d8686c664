package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// MenuCache keeps serialized menu listings in Redis so the customer-facing
// menu endpoints do not hit the database on every page load. Entries are
// TTL-bound and versioned per restaurant: admin menu mutations bump the
// restaurant version, which orphans every cached listing at once.
//
// A nil *MenuCache is valid and disables caching, so callers never need to
// branch on whether Redis is configured.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMenuCache connects to Redis at addr. An empty addr returns a nil cache
// (caching disabled).
func NewMenuCache(addr string, ttl time.Duration) *MenuCache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &MenuCache{client: client, ttl: ttl}
}

// Ping verifies the Redis connection.
func (c *MenuCache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

func (c *MenuCache) versionKey(restaurantID string) string {
	return "menu:ver:" + restaurantID
}

func (c *MenuCache) entryKey(restaurantID string, version int64, name string) string {
	return fmt.Sprintf("menu:%s:v%d:%s", restaurantID, version, name)
}

func (c *MenuCache) version(ctx context.Context, restaurantID string) (int64, error) {
	val, err := c.client.Get(ctx, c.versionKey(restaurantID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}

// Get unmarshals a cached listing into dest. The second return is false on
// a miss or any Redis failure; cache errors are logged, never propagated.
func (c *MenuCache) Get(ctx context.Context, restaurantID, name string, dest interface{}) bool {
	if c == nil {
		return false
	}
	version, err := c.version(ctx, restaurantID)
	if err != nil {
		log.WithError(err).Warn("Menu cache version lookup failed")
		return false
	}
	raw, err := c.client.Get(ctx, c.entryKey(restaurantID, version, name)).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		log.WithError(err).Warn("Menu cache read failed")
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.WithError(err).Warn("Menu cache entry corrupt, ignoring")
		return false
	}
	return true
}

// Set stores a listing under the restaurant's current version.
func (c *MenuCache) Set(ctx context.Context, restaurantID, name string, value interface{}) {
	if c == nil {
		return
	}
	version, err := c.version(ctx, restaurantID)
	if err != nil {
		log.WithError(err).Warn("Menu cache version lookup failed")
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.WithError(err).Warn("Menu cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, c.entryKey(restaurantID, version, name), raw, c.ttl).Err(); err != nil {
		log.WithError(err).Warn("Menu cache write failed")
	}
}

// Invalidate bumps the restaurant's cache version, orphaning all cached
// listings for it. Orphaned entries expire with their TTL.
func (c *MenuCache) Invalidate(ctx context.Context, restaurantID string) {
	if c == nil {
		return
	}
	if err := c.client.Incr(ctx, c.versionKey(restaurantID)).Err(); err != nil {
		log.WithError(err).Warn("Menu cache invalidation failed")
	}
}

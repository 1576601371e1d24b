package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const defaultTTL = 5 * time.Minute

// Cache is a redis-backed read cache for the public listing views.
// Mutations invalidate by key prefix, mirroring the path-based view
// refresh of the booking flow. A nil *Cache is a valid no-op cache, so
// the service runs fine without REDIS_URL.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(redisURL string) *Cache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("invalid REDIS_URL, view cache disabled")
		return nil
	}

	return &Cache{
		rdb: redis.NewClient(opts),
		ttl: defaultTTL,
	}
}

// GetJSON reads a cached value into dest. A miss, a decode failure or
// a redis error all report false; the caller falls through to the
// database.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return false
	}

	return json.Unmarshal(b, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// Invalidate drops every key under the given prefixes.
func (c *Cache) Invalidate(ctx context.Context, prefixes ...string) {
	if c == nil {
		return
	}

	for _, prefix := range prefixes {
		iter := c.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
		for iter.Next(ctx) {
			if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
				log.Warn().Err(err).Str("key", iter.Val()).Msg("cache invalidation failed")
			}
		}
		if err := iter.Err(); err != nil {
			log.Warn().Err(err).Str("prefix", prefix).Msg("cache scan failed")
		}
	}
}

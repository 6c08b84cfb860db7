package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// Cache is a thin JSON cache over redis, used for computed availability
// slots. A nil Cache (or one built without a redis URL) is a no-op, so
// callers never need to branch on whether caching is enabled.
type Cache struct {
	rdb *redis.Client
}

func New(redisURL string) *Cache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("invalid REDIS_URL, caching disabled")
		return nil
	}

	return &Cache{rdb: redis.NewClient(opts)}
}

func SlotsKey(vetID uint, date string, durationMin int) string {
	return fmt.Sprintf("slots:%d:%s:%d", vetID, date, durationMin)
}

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

func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key, b, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

// InvalidateVetSlots drops every cached slot listing for one vet. Called
// after schedule edits and appointment writes.
func (c *Cache) InvalidateVetSlots(ctx context.Context, vetID uint) {
	if c == nil {
		return
	}

	pattern := fmt.Sprintf("slots:%d:*", vetID)
	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Uint("vet_id", vetID).Msg("cache invalidation failed")
	}
}

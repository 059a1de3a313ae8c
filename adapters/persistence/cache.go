package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/UmerAzizGujjar/portfolio/internal/application/service"
)

// redisCache is a nil-safe cache-aside helper. With no client it degrades to
// a cache that always misses, so the API runs without Redis.
type redisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) service.ContentCache {
	return &redisCache{client: client}
}

func (c *redisCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	s, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisCache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

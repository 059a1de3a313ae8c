package service

import (
	"context"
	"time"
)

// ContentCache is a best-effort cache for public content responses.
// Implementations must be safe to call when the backing store is down;
// a miss is always an acceptable answer.
type ContentCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const (
	CacheKeyBio      = "cache:bio"
	CacheKeyProjects = "cache:projects"
	CacheTTL         = 5 * time.Minute
)

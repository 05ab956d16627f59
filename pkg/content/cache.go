package content

import (
	"context"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	DefaultTTL             = 5 * time.Minute
	DefaultCleanupInterval = 10 * time.Minute
)

// Cached is a Source that keeps successful loads of another Source for a
// TTL. Errors are not cached.
type Cached struct {
	src    Source
	cache  *gocache.Cache
	logger *slog.Logger
}

// NewCached wraps src. A non-positive ttl uses DefaultTTL.
func NewCached(src Source, ttl time.Duration, logger *slog.Logger) *Cached {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cached{
		src:    src,
		cache:  gocache.New(ttl, DefaultCleanupInterval),
		logger: logger.With("component", "content-cache"),
	}
}

// Load returns the cached content for key, loading it on a miss.
func (c *Cached) Load(ctx context.Context, key string) ([]byte, error) {
	if v, ok := c.cache.Get(key); ok {
		if data, ok := v.([]byte); ok {
			c.logger.Debug("cache hit", "key", key)
			return data, nil
		}
	}

	data, err := c.src.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	c.cache.Set(key, data, gocache.DefaultExpiration)
	return data, nil
}

// Invalidate drops the given keys.
func (c *Cached) Invalidate(keys ...string) {
	for _, key := range keys {
		c.cache.Delete(key)
	}
	if len(keys) > 0 {
		c.logger.Debug("cache invalidated", "keys", keys)
	}
}

// Flush drops every entry.
func (c *Cached) Flush() {
	c.cache.Flush()
}

// Len returns the number of cached entries, expired ones included until
// the next cleanup.
func (c *Cached) Len() int {
	return c.cache.ItemCount()
}

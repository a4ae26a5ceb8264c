package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Cache is a string keyed ttl cache that stops its cleanup loop once the
// context is cancelled
type Cache[V any] struct {
	cache *ttlcache.Cache[string, V]
}

func NewCache[V any](ctx context.Context, ttl time.Duration) *Cache[V] {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, V](ttl),
	)

	c := &Cache[V]{
		cache: cache,
	}

	go cache.Start()
	go c.watch(ctx)
	return c
}

func (c *Cache[V]) Get(key string) (V, bool) {
	item := c.cache.Get(key)
	if item == nil {
		var empty V
		return empty, false
	}

	return item.Value(), true
}

func (c *Cache[V]) Set(key string, value V) {
	c.cache.Set(key, value, ttlcache.DefaultTTL)
}

func (c *Cache[V]) Delete(key string) {
	c.cache.Delete(key)
}

func (c *Cache[V]) watch(ctx context.Context) {
	<-ctx.Done()
	c.cache.Stop()
}

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

// Cache stores serialized values under string keys
type Cache interface {
	Get(ctx context.Context, key string, target any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ErrMiss is returned by Get when the key is absent
var ErrMiss = cache.ErrCacheMiss

// UseCache returns the cached value for key, or calls load and caches its result
func UseCache[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var v T
	err := c.Get(ctx, key, &v)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, ErrMiss) {
		return v, err
	}

	v, err = load()
	if err != nil {
		return v, err
	}

	// fire and forget
	//nolint:errcheck
	c.Set(ctx, key, v, ttl)
	return v, nil
}

// RedisCache is a Cache backed by Redis with an optional local TinyLFU tier
type RedisCache struct {
	instance *cache.Cache
}

// New creates a cache. A nil client gives a process-local cache.
func New(client redis.UniversalClient, withLocalCache bool) *RedisCache {
	opts := &cache.Options{}
	if client != nil {
		opts.Redis = client
	}
	if withLocalCache || client == nil {
		opts.LocalCache = cache.NewTinyLFU(1000, time.Minute)
	}
	return &RedisCache{instance: cache.New(opts)}
}

func (c *RedisCache) Get(ctx context.Context, key string, target any) error {
	return c.instance.Get(ctx, key, target)
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.instance.Set(&cache.Item{
		Ctx:   ctx,
		Key:   key,
		Value: value,
		TTL:   ttl,
	})
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.instance.Delete(ctx, key)
}

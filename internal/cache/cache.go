// Package cache stores product detail image paths in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is used when no TTL is configured.
const DefaultTTL = 10 * time.Minute

// RedisImageCache caches the ordered image paths of each product under
// market:product:<id>:images. Each entry records the product version it was
// read at; a lookup for any other version misses, so paths read before an
// update can never be served after it.
type RedisImageCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisImageCache creates a cache over an existing client. A non-positive
// ttl selects DefaultTTL.
func NewRedisImageCache(client redis.Cmdable, ttl time.Duration) *RedisImageCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisImageCache{client: client, ttl: ttl}
}

// NewClient creates a Redis client and checks that the server answers.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", addr, err)
	}
	return client, nil
}

func imagesKey(productID int64) string {
	return fmt.Sprintf("market:product:%d:images", productID)
}

type entry struct {
	Version int64    `json:"version"`
	Paths   []string `json:"paths"`
}

// GetImagePaths returns the paths cached for the given product version. ok
// is false on a miss, including an entry written for another version.
func (c *RedisImageCache) GetImagePaths(ctx context.Context, productID, version int64) ([]string, bool, error) {
	data, err := c.client.Get(ctx, imagesKey(productID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached image paths: %w", err)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false, fmt.Errorf("decoding cached image paths: %w", err)
	}
	if e.Version != version {
		return nil, false, nil
	}
	return e.Paths, true, nil
}

// SetImagePaths caches paths read at version for the configured TTL. An
// empty list is cached too, so products without images do not hit the store
// every time.
func (c *RedisImageCache) SetImagePaths(ctx context.Context, productID, version int64, paths []string) error {
	if paths == nil {
		paths = []string{}
	}
	data, err := json.Marshal(entry{Version: version, Paths: paths})
	if err != nil {
		return fmt.Errorf("encoding image paths: %w", err)
	}
	if err := c.client.Set(ctx, imagesKey(productID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching image paths: %w", err)
	}
	return nil
}

// Invalidate removes the cached paths of a product.
func (c *RedisImageCache) Invalidate(ctx context.Context, productID int64) error {
	if err := c.client.Del(ctx, imagesKey(productID)).Err(); err != nil {
		return fmt.Errorf("invalidating image paths: %w", err)
	}
	return nil
}

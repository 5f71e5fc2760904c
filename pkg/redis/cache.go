package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores JSON-encoded values under prefixed keys.
// ⭐ SSOT: cache helpers live here and nowhere else.
type Cache struct {
	client *Client
	prefix string
}

// NewCache creates a cache helper whose keys all start with prefix.
func NewCache(client *Client, prefix string) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
	}
}

func (c *Cache) fullKey(key string) string {
	return fmt.Sprintf("%s:cache:%s", c.prefix, key)
}

// Get reads a cached value into dest. The bool reports whether the key
// was present; a missing key is not an error.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !c.client.Enabled() {
		return false, nil
	}

	data, err := c.client.Redis().Get(ctx, c.fullKey(key)).Bytes()
	if err != nil {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal failed: %w", err)
	}

	return true, nil
}

// Set stores value under key for ttl.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	return c.setRaw(ctx, key, data, ttl)
}

func (c *Cache) setRaw(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if !c.client.Enabled() {
		return nil
	}
	return c.client.Redis().Set(ctx, c.fullKey(key), data, ttl).Err()
}

// Delete drops a cached value.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.client.Enabled() {
		return nil
	}
	return c.client.Redis().Del(ctx, c.fullKey(key)).Err()
}

// GetOrSet reads key into dest, calling fn to compute and cache the
// value on a miss. A failed cache write never fails the read.
func (c *Cache) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, fn func() (interface{}, error)) error {
	found, err := c.Get(ctx, key, dest)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	value, err := fn()
	if err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}
	_ = c.setRaw(ctx, key, data, ttl)

	return json.Unmarshal(data, dest)
}

// TTL tiers for the cache's three kinds of content.
const (
	TTLShort  = 1 * time.Minute  // scenario listings, refreshed often
	TTLMedium = 10 * time.Minute // individual saved scenarios
	TTLLong   = 1 * time.Hour    // static reference data
)

// ScenarioKey is the cache key for one saved scenario.
func ScenarioKey(id string) string {
	return fmt.Sprintf("scenario:info:%s", id)
}

// ScenarioListKey is the cache key for one page of the scenario list.
func ScenarioListKey(limit, offset int) string {
	return fmt.Sprintf("scenario:list:%d:%d", limit, offset)
}

// Package redis provides the optional Redis connection and a typed JSON
// cache on top of it. With Redis disabled every helper is a no-op and
// callers read straight through to Postgres.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/config"
)

// Client wraps go-redis behind an enabled flag.
// ⭐ SSOT: the Redis connection is managed here and nowhere else.
type Client struct {
	rdb     *redis.Client
	enabled bool
}

// New connects to Redis when enabled in config. A disabled config
// yields a client whose operations all no-op.
func New(cfg *config.Config) (*Client, error) {
	if !cfg.Redis.Enabled {
		return &Client{}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &Client{rdb: rdb, enabled: true}, nil
}

// Close releases the connection. Safe on a disabled client.
func (c *Client) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}

// Enabled reports whether a live Redis connection is behind this client.
func (c *Client) Enabled() bool {
	return c.enabled
}

// Redis exposes the underlying go-redis client.
func (c *Client) Redis() *redis.Client {
	return c.rdb
}

package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zatekoja/arovia/web/pkg/config"
)

const defaultTimeout = 2 * time.Second

// Client wraps a Redis connection and the key namespace this service owns
type Client struct {
	client redis.Cmdable
	closer func() error
	prefix string
}

// NewClient connects to Redis and verifies the connection
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr(), err)
	}

	return &Client{client: client, closer: client.Close, prefix: cfg.KeyPrefix}, nil
}

// Wrap builds a Client around an existing connection
func Wrap(client redis.Cmdable, prefix string) *Client {
	return &Client{client: client, closer: func() error { return nil }, prefix: prefix}
}

// Cmd returns the command interface for the connection
func (c *Client) Cmd() redis.Cmdable {
	return c.client
}

// Key joins parts with ':' under the configured prefix
func (c *Client) Key(parts ...string) string {
	key := strings.Join(parts, ":")
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.closer()
}

// Ping verifies the connection to Redis
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/zatekoja/arovia/web/internal/domain/providers"
	redisclient "github.com/zatekoja/arovia/web/internal/infrastructure/clients/redis"
)

// RedisStore implements providers.PreferenceStore with plain Redis strings
type RedisStore struct {
	client *redisclient.Client
}

// NewRedisStore creates a Redis-backed preference store
func NewRedisStore(client *redisclient.Client) providers.PreferenceStore {
	return &RedisStore{client: client}
}

// Get retrieves a stored preference
func (s *RedisStore) Get(ctx context.Context, owner, key string) (string, error) {
	value, err := s.client.Cmd().Get(ctx, s.client.Key(key, owner)).Result()
	if errors.Is(err, redis.Nil) {
		return "", providers.ErrPreferenceNotSet
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, nil
}

// Set stores a preference without expiry
func (s *RedisStore) Set(ctx context.Context, owner, key, value string) error {
	if err := s.client.Cmd().Set(ctx, s.client.Key(key, owner), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to store preference %s: %w", key, err)
	}
	return nil
}

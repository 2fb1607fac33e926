package session

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps the storage keys in a Redis hash, letting a session
// survive across machines. No TTL is applied: the cache holds no
// authoritative state and the access token expires server-side.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
	hash   string
}

// NewRedisStore creates a store backed by the given Redis client. The hash
// name namespaces one user's cache from another's on a shared instance.
func NewRedisStore(client *redis.Client, hash string) *RedisStore {
	if hash == "" {
		hash = "marketplace:session"
	}
	return &RedisStore{client: client, ctx: context.Background(), hash: hash}
}

func (s *RedisStore) Get(key string) (string, bool, error) {
	v, err := s.client.HGet(s.ctx, s.hash, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis store: get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *RedisStore) Set(key, value string) error {
	if err := s.client.HSet(s.ctx, s.hash, key, value).Err(); err != nil {
		return fmt.Errorf("redis store: set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(key string) error {
	if err := s.client.HDel(s.ctx, s.hash, key).Err(); err != nil {
		return fmt.Errorf("redis store: delete %s: %w", key, err)
	}
	return nil
}

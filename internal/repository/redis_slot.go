package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lewtec/galeria/internal/domain"
)

// RedisSlot implements domain.Slot as one redis string key
type RedisSlot struct {
	client *redis.Client
	key    string
}

// NewRedisSlot connects to the redis server at url (redis://host:port/db)
func NewRedisSlot(url, key string) (*RedisSlot, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("while parsing redis url: %w", err)
	}
	return &RedisSlot{client: redis.NewClient(opts), key: key}, nil
}

// Ping checks the connection
func (s *RedisSlot) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Read returns the value of the key
func (s *RedisSlot) Read(ctx context.Context) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Write sets the key without expiration
func (s *RedisSlot) Write(ctx context.Context, value string) error {
	return s.client.Set(ctx, s.key, value, 0).Err()
}

// Close releases the connection pool
func (s *RedisSlot) Close() error {
	return s.client.Close()
}

var _ domain.Slot = (*RedisSlot)(nil)

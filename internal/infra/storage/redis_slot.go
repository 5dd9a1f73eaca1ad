package storage

import (
	"context"
	"fmt"
	"time"

	"weather-dash/pkg/redis"
)

const redisSlotTimeout = 3 * time.Second

// RedisSlot stores one JSON document per key in Redis, without TTL.
type RedisSlot struct {
	client *redis.Client
	key    string
}

// NewRedisSlot creates a Redis-backed slot for key.
func NewRedisSlot(client *redis.Client, key string) *RedisSlot {
	return &RedisSlot{
		client: client,
		key:    key,
	}
}

func (s *RedisSlot) Name() string {
	return s.key
}

func (s *RedisSlot) Read(dest any) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisSlotTimeout)
	defer cancel()

	found, err := s.client.GetJSON(ctx, s.key, dest)
	if err != nil {
		return fmt.Errorf("failed to read slot %s: %w", s.key, err)
	}
	if !found {
		return ErrSlotEmpty
	}
	return nil
}

func (s *RedisSlot) Write(value any) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisSlotTimeout)
	defer cancel()

	if err := s.client.SetJSON(ctx, s.key, value, 0); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", s.key, err)
	}
	return nil
}

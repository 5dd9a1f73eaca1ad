package storage

import (
	"context"
	"os"
	"time"

	"weather-dash/pkg/redis"
)

// Backend is a durable slot provider. Exactly one backend is selected at
// startup and every mirror slot comes from it.
type Backend interface {
	// Name identifies the backend in logs and health output.
	Name() string
	// Slot returns the durable slot for a key.
	Slot(key string) Slot
	// Ping verifies the backend is usable.
	Ping() error
}

// FileBackend provides file slots under a data directory.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a file-slot backend rooted at dir.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) Name() string {
	return "file"
}

func (b *FileBackend) Slot(key string) Slot {
	return NewFileSlot(b.dir, key)
}

func (b *FileBackend) Ping() error {
	return os.MkdirAll(b.dir, 0o755)
}

// RedisBackend provides Redis slots on a shared client.
type RedisBackend struct {
	client *redis.Client
}

// NewRedisBackend creates a Redis-slot backend on the given client.
func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Name() string {
	return "redis"
}

func (b *RedisBackend) Slot(key string) Slot {
	return NewRedisSlot(b.client, key)
}

func (b *RedisBackend) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return b.client.Ping(ctx)
}

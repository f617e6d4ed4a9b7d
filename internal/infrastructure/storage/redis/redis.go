package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/exp/slog"

	"estoque/internal/infrastructure/storage"
)

// Storage keeps every document as a plain Redis string under prefix+key.
// Keys never expire.
type Storage struct {
	client *redis.Client
	prefix string
	log    *slog.Logger
}

// New connects using a redis:// URL.
func New(ctx context.Context, redisURL, prefix string, log *slog.Logger) (*Storage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return NewWithClient(ctx, redis.NewClient(opt), prefix, log)
}

func NewWithClient(ctx context.Context, client *redis.Client, prefix string, log *slog.Logger) (*Storage, error) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Storage{
		client: client,
		prefix: prefix,
		log:    log.With("component", "redis_storage"),
	}, nil
}

func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, storage.Wrap("get", key, err)
	}
	return value, true, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return storage.Wrap("set", key, err)
	}
	return nil
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return storage.Wrap("remove", key, err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

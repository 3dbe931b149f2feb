package store

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/zerr"
)

const redisScanCount = 256

// Redis stores entries as plain string keys under a common prefix.
type Redis struct {
	client *redis.Client
	prefix string
}

// OpenRedis connects to the server described by cfg and checks that it answers.
func OpenRedis(ctx context.Context, cfg domain.RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "addr", cfg.Addr)
	}
	return NewRedis(client, cfg.Prefix), nil
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

// Get returns the value stored under key.
func (s *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return value, true, nil
}

// Set stores value under key without expiry.
func (s *Redis) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

// BytesInUse sums key and value lengths of the prefixed keys, excluding the prefix.
func (s *Redis) BytesInUse(ctx context.Context) (int64, error) {
	var n int64
	iter := s.client.Scan(ctx, 0, s.prefix+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		size, err := s.client.StrLen(ctx, key).Result()
		if err != nil {
			return 0, zerr.Wrap(err, domain.ErrStoreSizeFailed.Error())
		}
		n += int64(len(strings.TrimPrefix(key, s.prefix))) + size
	}
	if err := iter.Err(); err != nil {
		return 0, zerr.Wrap(err, domain.ErrStoreSizeFailed.Error())
	}
	return n, nil
}

// Clear deletes every prefixed key. Keys outside the prefix are untouched.
func (s *Redis) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", redisScanCount).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreClearFailed.Error())
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreClearFailed.Error())
	}
	return nil
}

// Close closes the client.
func (s *Redis) Close() error {
	return s.client.Close()
}

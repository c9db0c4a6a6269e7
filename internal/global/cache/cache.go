// Package cache 参考数据的读穿透缓存。缓存只是加速，读写失败时退回数据库
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"participant-registration/internal/global/logger"
	globalredis "participant-registration/internal/global/redis"

	"github.com/redis/go-redis/v9"
)

// ErrMiss 键不存在
var ErrMiss = errors.New("cache: miss")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	return b, err
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Default 全局 Redis 客户端对应的 Store，未配置 Redis 时返回 nil
func Default() Store {
	if globalredis.Client == nil {
		return nil
	}
	return NewRedisStore(globalredis.Client)
}

// Remember 先读缓存，未命中时调用 load 并回写。store 为 nil 或 ttl<=0 时直接 load
func Remember[T any](ctx context.Context, store Store, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if store == nil || ttl <= 0 {
		return load(ctx)
	}

	if b, err := store.Get(ctx, key); err == nil {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
		logger.New("Cache").Warn("缓存内容无法解析", "key", key)
	} else if !errors.Is(err, ErrMiss) {
		logger.New("Cache").Warn("读取缓存失败", "key", key, "error", err)
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if b, err := json.Marshal(v); err == nil {
		if err := store.Set(ctx, key, b, ttl); err != nil {
			logger.New("Cache").Warn("写入缓存失败", "key", key, "error", err)
		}
	}
	return v, nil
}

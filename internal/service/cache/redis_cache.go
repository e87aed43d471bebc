package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/logstream/pipeline/internal/config"
	"github.com/logstream/pipeline/internal/model"
)

// RedisCache is the production look-aside cache backend (spec §4.9).
type RedisCache struct {
	client *redis.Client
}

var _ InterfaceCache = (*RedisCache)(nil)

// NewRedisClient builds a go-redis client from CacheConfig.
func NewRedisClient(cfg *config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*model.SearchResult, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrCacheMiss
	}
	if err != nil {
		return nil, &model.CacheError{Cause: err}
	}

	var result model.SearchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &model.CacheError{Cause: fmt.Errorf("unmarshal cached result: %w", err)}
	}
	return &result, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value *model.SearchResult, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &model.CacheError{Cause: fmt.Errorf("marshal result: %w", err)}
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return &model.CacheError{Cause: err}
	}
	return nil
}

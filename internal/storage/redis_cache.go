package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chat-agent-service/internal/search"

	"github.com/redis/go-redis/v9"
)

// RedisCache manages the Redis-backed search result cache
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache and verifies the connection
func NewRedisCache(addr, password string) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{client: rdb}, nil
}

// Close closes the Redis connection
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// Get retrieves cached search results for a query/count pair
func (r *RedisCache) Get(ctx context.Context, query string, count int) ([]search.Result, bool, error) {
	val, err := r.client.Get(ctx, cacheKey(query, count)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var results []search.Result
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		return nil, false, err
	}

	return results, true, nil
}

// Set caches search results for a query/count pair
func (r *RedisCache) Set(ctx context.Context, query string, count int, results []search.Result, ttl time.Duration) error {
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, cacheKey(query, count), data, ttl).Err()
}

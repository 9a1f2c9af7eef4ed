package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/speechcoach/intro-scorer/pkg/config"
)

// NewRedisClient creates and pings a Redis client from config
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// RedisStore adapts a Redis client to the Store interface
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a Redis client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Set stores a key-value pair with expiration. Errors are dropped: a cache
// write failure must never fail a scoring request.
func (rs *RedisStore) Set(ctx context.Context, key, value string, expiration time.Duration) {
	rs.client.Set(ctx, key, value, expiration)
}

// Get retrieves a value by key
func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := rs.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Delete removes a key
func (rs *RedisStore) Delete(ctx context.Context, key string) {
	rs.client.Del(ctx, key)
}

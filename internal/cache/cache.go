package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Malcolmdebono/Bucket-list-application/internal/config"
	"github.com/Malcolmdebono/Bucket-list-application/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// Cache is a thin JSON layer over Redis. A nil Cache is valid and means
// caching is disabled (no REDIS_ADDR configured).
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache connects to Redis when an address is configured. Returns nil
// (caching off) when it is not.
func NewCache(cfg *config.Config) (*Cache, error) {
	if cfg.RedisAddr == "" {
		logger.Log.Info("Redis not configured, experience cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Log.WithField("addr", cfg.RedisAddr).Info("Connected to Redis")
	return &Cache{client: client, ttl: cfg.CacheTTL}, nil
}

// GetJSON reads key and unmarshals it into dest. The bool reports a hit.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}

	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals value and stores it under key with the configured TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) error {
	if c == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, c.ttl).Err()
}

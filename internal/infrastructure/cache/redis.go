package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/muebleria/backend/internal/infrastructure/config"
)

// NewRedisClient creates a redis client from configuration and verifies
// the connection with a ping.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

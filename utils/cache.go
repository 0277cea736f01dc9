// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"cerberus/config"

	"github.com/go-redis/redis/v8"
)

// InitRateCache connects the rate-limit Redis client using AppConfig.
// It returns nil, nil when no Redis address is configured.
func InitRateCache() (*redis.Client, error) {
	if config.AppConfig.RedisAddr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRateDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (rate limit): %w", err)
	}
	return client, nil
}

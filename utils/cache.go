// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"moveflow/config"

	"github.com/go-redis/redis/v8"
)

var (
	// FunnelCacheClient holds wizard sessions.
	FunnelCacheClient *redis.Client
	// RatesCacheClient holds rate-table snapshots.
	RatesCacheClient *redis.Client
)

// InitFunnelCache initializes the Redis client for funnel session storage.
func InitFunnelCache() {
	FunnelCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFunnelDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := FunnelCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Funnel): %v", err)
	}
}

// GetFunnelCacheClient returns the funnel session client.
func GetFunnelCacheClient() *redis.Client {
	if FunnelCacheClient == nil {
		InitFunnelCache()
	}
	return FunnelCacheClient
}

// InitRatesCache initializes the Redis client for rate snapshot caching.
func InitRatesCache() {
	RatesCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRatesDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := RatesCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Rates): %v", err)
	}
}

// GetRatesCacheClient returns the rates snapshot client.
func GetRatesCacheClient() *redis.Client {
	if RatesCacheClient == nil {
		InitRatesCache()
	}
	return RatesCacheClient
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	InitFunnelCache()
	InitRatesCache()
}

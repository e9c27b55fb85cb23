package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the last dependency probe, reported on the health route.
// Redis holds one entry per client in the order they were registered.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var healthState struct {
	sync.RWMutex
	latest HealthStatus
}

// GetHealthStatus returns the most recent probe result.
func GetHealthStatus() HealthStatus {
	healthState.RLock()
	defer healthState.RUnlock()
	return healthState.latest
}

func probeDependencies(redisClients []*redis.Client, mongoClient *mongo.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := HealthStatus{
		Redis:     make([]bool, 0, len(redisClients)),
		CheckedAt: time.Now(),
	}
	for _, client := range redisClients {
		status.Redis = append(status.Redis, client.Ping(ctx).Err() == nil)
	}
	status.Mongo = mongoClient.Ping(ctx, nil) == nil
	return status
}

// StartHealthMonitor probes mongo and every redis client once immediately and
// then every minute, keeping the snapshot served by GetHealthStatus current.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	record := func() {
		status := probeDependencies(redisClients, mongoClient)
		healthState.Lock()
		healthState.latest = status
		healthState.Unlock()
	}

	go func() {
		record()

		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			record()
		}
	}()
}

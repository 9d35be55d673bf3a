package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     *bool     `json:"redis,omitempty"` // nil when no redis is configured
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. The redis client may be nil.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			var redisHealth *bool
			if redisClient != nil {
				ok := redisClient.Ping(ctx).Err() == nil
				redisHealth = &ok
			}

			mongoHealthy := mongoClient.Ping(ctx, nil) == nil

			healthMu.Lock()
			currentHealth = HealthStatus{
				Mongo:     mongoHealthy,
				Redis:     redisHealth,
				CheckedAt: time.Now(),
			}
			healthMu.Unlock()
		}
	}()
}

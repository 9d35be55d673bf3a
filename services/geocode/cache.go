package geocode

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache memoizes geocode lookups keyed by normalized query string. A stored
// nil point marks the query as known-unresolvable, so a failed lookup is
// never retried within the cache's lifetime. Writes are idempotent: racing
// requests settle on the same value.
type Cache interface {
	Get(key string) (*Point, bool)
	Set(key string, p *Point)
}

// MemoryCache is the default process-lifetime cache.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*Point
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*Point)}
}

func (c *MemoryCache) Get(key string) (*Point, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.entries[key]
	return p, ok
}

func (c *MemoryCache) Set(key string, p *Point) {
	c.mu.Lock()
	c.entries[key] = p
	c.mu.Unlock()
}

// RedisCache shares geocode results across processes. Negative entries are
// stored as JSON null.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) Get(key string) (*Point, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	val, err := c.Client.Get(ctx, "geocode:"+key).Result()
	if err != nil {
		// Both a miss and a redis failure fall through to a fresh lookup.
		return nil, false
	}

	var p *Point
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return nil, false
	}
	return p, true
}

func (c *RedisCache) Set(key string, p *Point) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	c.Client.Set(ctx, "geocode:"+key, data, c.TTL)
}

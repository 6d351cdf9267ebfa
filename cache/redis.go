package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const partsTTL = 60 * time.Second

// Cache wraps an optional redis client for the parts listing. A nil
// Cache (no REDIS_ADDR configured) is valid and does nothing.
type Cache struct {
	rdb *redis.Client
}

func Connect(addr string) *Cache {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	log.Println("Redis connected")
	return &Cache{rdb: rdb}
}

func (c *Cache) GetParts(ctx context.Context) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, "parts:all").Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *Cache) SetParts(ctx context.Context, data []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, "parts:all", data, partsTTL).Err(); err != nil {
		log.Printf("cache set failed: %v", err)
	}
}

func (c *Cache) InvalidateParts(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, "parts:all").Err(); err != nil {
		log.Printf("cache invalidate failed: %v", err)
	}
}

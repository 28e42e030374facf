package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResultsCache keeps the day's full leaderboard in Redis. It is
// best-effort: a nil cache (no Redis configured) and any Redis error
// just mean the caller recomputes from the database.
type ResultsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultsCache connects to Redis at addr. An empty addr returns a
// nil cache on purpose; every method is a no-op on a nil receiver.
func NewResultsCache(addr, password string, ttl time.Duration) (*ResultsCache, error) {
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ResultsCache{client: rdb, ttl: ttl}, nil
}

func resultsKey(day string) string {
	return fmt.Sprintf("vote:results:%s", day)
}

// Get returns the cached leaderboard JSON for the day, if present
func (c *ResultsCache) Get(ctx context.Context, day string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, resultsKey(day)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set stores the leaderboard JSON for the day
func (c *ResultsCache) Set(ctx context.Context, day string, payload []byte) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Set(ctx, resultsKey(day), payload, c.ttl)
}

// Invalidate drops the day's cached leaderboard, called after a vote
// session is committed
func (c *ResultsCache) Invalidate(ctx context.Context, day string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, resultsKey(day))
}

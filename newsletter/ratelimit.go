package newsletter

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"newsdesk/config"

	"github.com/redis/go-redis/v9"
)

// Limiter guards the subscribe endpoint with a fixed-window count per key
// (client IP). Implementations must be safe for concurrent use.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type window struct {
	count   int
	started time.Time
}

// MemoryLimiter is the default in-process limiter: a mutex-guarded map of
// fixed windows. Suitable for a single instance; use the Redis limiter when
// running more than one replica.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]window
	max     int
	period  time.Duration
	now     func() time.Time
}

// NewMemoryLimiter returns a limiter allowing max requests per period.
func NewMemoryLimiter(max int, period time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]window),
		max:     max,
		period:  period,
		now:     time.Now,
	}
}

// Allow reports whether the key may proceed, counting this request.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.entries[key]
	if !ok || now.Sub(w.started) > l.period {
		l.entries[key] = window{count: 1, started: now}
		return true, nil
	}

	w.count++
	l.entries[key] = w
	return w.count <= l.max, nil
}

// RedisLimiter is a fixed-window limiter backed by Redis INCR/EXPIRE, shared
// across instances.
type RedisLimiter struct {
	client *redis.Client
	max    int
	period time.Duration
}

// NewRedisLimiterFromEnv creates a Redis-backed limiter when REDIS_ADDR is
// set, verifying connectivity. Returns (nil, nil) when unconfigured.
func NewRedisLimiterFromEnv() (*RedisLimiter, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &RedisLimiter{
		client: client,
		max:    config.RateLimitMax,
		period: config.RateLimitWindow,
	}, nil
}

// Allow increments the key's window counter, starting the window (and its
// expiry) on the first hit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "newsletter:ratelimit:" + key
	n, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := l.client.Expire(ctx, redisKey, l.period).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(l.max), nil
}

// Close closes the underlying Redis client.
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}

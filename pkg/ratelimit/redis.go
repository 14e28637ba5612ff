package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisLimiter is a fixed-window limiter that keeps its counters in Redis so
// that limits hold across multiple server instances. Each window is a single
// counter keyed by the caller and the window start.
type RedisLimiter struct {
	client  *redis.Client
	prefix  string
	window  time.Duration
	maxHits int
}

func NewRedisLimiter(client *redis.Client, prefix string, window time.Duration, maxHits int) *RedisLimiter {
	return &RedisLimiter{
		client:  client,
		prefix:  prefix,
		window:  window,
		maxHits: maxHits,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	bucket := time.Now().Truncate(l.window).Unix()
	counterKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, bucket)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, counterKey)
	pipe.Expire(ctx, counterKey, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		// Fail open: a Redis outage should not take the API down with it
		log.Error().Err(err).Str("key", key).Msg("Rate limit counter unavailable")
		return true
	}

	return count.Val() <= int64(l.maxHits)
}

package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether a caller identified by key may proceed. Allow
// returns false when the key has exhausted its budget for the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// MemoryLimiter is a sliding-window limiter backed by per-key hit timestamps.
// Suitable for a single process; use RedisLimiter when counts must be shared.
type MemoryLimiter struct {
	mu      sync.Mutex
	hits    map[string][]time.Time
	window  time.Duration
	maxHits int
}

func NewMemoryLimiter(window time.Duration, maxHits int) *MemoryLimiter {
	return &MemoryLimiter{
		hits:    make(map[string][]time.Time),
		window:  window,
		maxHits: maxHits,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-l.window)

	// Drop hits that have aged out of the window
	recent := l.hits[key][:0]
	for _, hit := range l.hits[key] {
		if hit.After(windowStart) {
			recent = append(recent, hit)
		}
	}

	if len(recent) >= l.maxHits {
		l.hits[key] = recent
		return false
	}

	l.hits[key] = append(recent, now)
	return true
}

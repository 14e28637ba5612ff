package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiterAllow(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to the limit", func(t *testing.T) {
		limiter := NewMemoryLimiter(time.Minute, 3)

		for i := 0; i < 3; i++ {
			if !limiter.Allow(ctx, "client-a") {
				t.Fatalf("Expected hit %d to be allowed", i+1)
			}
		}

		if limiter.Allow(ctx, "client-a") {
			t.Error("Expected hit over the limit to be rejected")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter := NewMemoryLimiter(time.Minute, 1)

		if !limiter.Allow(ctx, "client-a") {
			t.Fatal("Expected first hit for client-a to be allowed")
		}
		if !limiter.Allow(ctx, "client-b") {
			t.Error("Expected first hit for client-b to be allowed")
		}
		if limiter.Allow(ctx, "client-a") {
			t.Error("Expected second hit for client-a to be rejected")
		}
	})

	t.Run("window expiry frees budget", func(t *testing.T) {
		limiter := NewMemoryLimiter(50*time.Millisecond, 1)

		if !limiter.Allow(ctx, "client-a") {
			t.Fatal("Expected first hit to be allowed")
		}
		if limiter.Allow(ctx, "client-a") {
			t.Fatal("Expected second hit to be rejected")
		}

		time.Sleep(60 * time.Millisecond)

		if !limiter.Allow(ctx, "client-a") {
			t.Error("Expected hit after window expiry to be allowed")
		}
	})
}

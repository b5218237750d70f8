package service

import (
	"testing"
	"time"
)

func TestMemoryRateLimiterAllow(t *testing.T) {
	t.Run("burst then deny", func(t *testing.T) {
		l := NewMemoryRateLimiter(RateLimit{Window: time.Hour, Max: 3})
		for i := 0; i < 3; i++ {
			if !l.Allow("10.0.0.1") {
				t.Fatalf("request %d should be allowed", i+1)
			}
		}
		if l.Allow("10.0.0.1") {
			t.Fatalf("expected fourth request to be denied")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := NewMemoryRateLimiter(RateLimit{Window: time.Hour, Max: 1})
		if !l.Allow("10.0.0.1") {
			t.Fatalf("expected first client allowed")
		}
		if !l.Allow("10.0.0.2") {
			t.Fatalf("expected second client allowed")
		}
		if l.Allow(" 10.0.0.1 ") {
			t.Fatalf("expected normalized key to share the bucket")
		}
	})

	t.Run("empty key rejected", func(t *testing.T) {
		l := NewMemoryRateLimiter(RateLimit{Window: time.Minute, Max: 5})
		if l.Allow("") {
			t.Fatalf("expected empty key to be rejected")
		}
	})

	t.Run("invalid settings fall back", func(t *testing.T) {
		l := NewMemoryRateLimiter(RateLimit{})
		if !l.Allow("k") {
			t.Fatalf("expected first request allowed")
		}
		if l.Allow("k") {
			t.Fatalf("expected max=1 after fallback")
		}
	})
}

func TestNopRateLimiter(t *testing.T) {
	l := NewNopRateLimiter()
	for i := 0; i < 100; i++ {
		if !l.Allow("") {
			t.Fatalf("nop limiter should always allow")
		}
	}
}

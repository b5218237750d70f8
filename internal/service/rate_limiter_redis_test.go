package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// fakeEvaler devuelve un contador fijo y registra la última llamada.
type fakeEvaler struct {
	count  int64
	err    error
	calls  int
	keys   []string
	args   []interface{}
	script string
}

func (f *fakeEvaler) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	f.calls++
	f.script, f.keys, f.args = script, keys, args
	cmd := redis.NewCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	cmd.SetVal(f.count)
	return cmd
}

func TestRedisRateLimiterAllow(t *testing.T) {
	cases := []struct {
		name      string
		key       string
		limit     RateLimit
		count     int64
		err       error
		want      bool
		wantCalls int
	}{
		{name: "within quota", key: "10.0.0.1", limit: RateLimit{Window: time.Minute, Max: 3}, count: 3, want: true, wantCalls: 1},
		{name: "over quota", key: "10.0.0.1", limit: RateLimit{Window: time.Minute, Max: 3}, count: 4, want: false, wantCalls: 1},
		{name: "blank key", key: "  ", limit: RateLimit{Window: time.Minute, Max: 3}, count: 1, want: false, wantCalls: 0},
		{name: "redis down", key: "10.0.0.1", limit: RateLimit{Window: time.Minute, Max: 3}, err: errors.New("connection refused"), want: true, wantCalls: 1},
		{name: "zero limit uses one per minute", key: "10.0.0.1", count: 2, want: false, wantCalls: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeEvaler{count: tc.count, err: tc.err}
			l := newRedisRateLimiter(fake, zap.NewNop(), tc.limit)
			if got := l.Allow(tc.key); got != tc.want {
				t.Fatalf("expected allow=%v, got %v", tc.want, got)
			}
			if fake.calls != tc.wantCalls {
				t.Fatalf("expected %d redis calls, got %d", tc.wantCalls, fake.calls)
			}
		})
	}
}

func TestRedisRateLimiterKeyAndWindow(t *testing.T) {
	fake := &fakeEvaler{count: 1}
	l := newRedisRateLimiter(fake, nil, RateLimit{Window: 90 * time.Second, Max: 5})

	if !l.Allow(" 2001:DB8::1 ") {
		t.Fatalf("expected first request allowed")
	}
	if len(fake.keys) != 1 || fake.keys[0] != redisLimiterPrefix+"2001:db8::1" {
		t.Fatalf("unexpected redis key %v", fake.keys)
	}
	if len(fake.args) != 1 || fake.args[0] != 90 {
		t.Fatalf("expected window of 90 seconds, got %v", fake.args)
	}
	if fake.script != redisWindowScript {
		t.Fatalf("unexpected script sent to redis")
	}
}

func TestRedisRateLimiterWindowRoundsUp(t *testing.T) {
	l := newRedisRateLimiter(&fakeEvaler{}, nil, RateLimit{Window: 1500 * time.Millisecond, Max: 1})
	if got := l.windowSeconds(); got != 2 {
		t.Fatalf("expected 2 seconds, got %d", got)
	}
}

func TestNewRedisRateLimiter_NilClient(t *testing.T) {
	if l := NewRedisRateLimiter(nil, nil, RateLimit{}); l != nil {
		t.Fatalf("expected nil limiter without client, got %T", l)
	}
	var l *redisRateLimiter
	if !l.Allow("10.0.0.1") {
		t.Fatalf("nil limiter must let requests through")
	}
}

package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

var ErrRateLimited = errors.New("too many predictions, try again later")

// PredictRateLimiter limita la frecuencia de simulaciones por cliente.
type PredictRateLimiter interface {
	Allow(key string) bool
}

// RateLimit es el cupo por cliente: Max simulaciones por Window.
type RateLimit struct {
	Window time.Duration
	Max    int
}

// withDefaults corrige valores fuera de rango: 1 simulación por minuto.
func (r RateLimit) withDefaults() RateLimit {
	if r.Window <= 0 {
		r.Window = time.Minute
	}
	if r.Max <= 0 {
		r.Max = 1
	}
	return r
}

// memoryRateLimiter guarda un token bucket por cliente; los inactivos expiran.
type memoryRateLimiter struct {
	mu       sync.Mutex
	limiters *gocache.Cache
	limit    rate.Limit
	burst    int
	idle     time.Duration
}

// NewMemoryRateLimiter aplica limit con un token bucket por clave.
func NewMemoryRateLimiter(limit RateLimit) PredictRateLimiter {
	limit = limit.withDefaults()
	idle := 2 * limit.Window
	return &memoryRateLimiter{
		limiters: gocache.New(idle, limit.Window),
		limit:    rate.Every(limit.Window / time.Duration(limit.Max)),
		burst:    limit.Max,
		idle:     idle,
	}
}

func (l *memoryRateLimiter) Allow(key string) bool {
	key = normalizeLimiterKey(key)
	if key == "" {
		return false
	}
	return l.limiterFor(key).Allow()
}

func (l *memoryRateLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if v, ok := l.limiters.Get(key); ok {
		lim := v.(*rate.Limiter)
		l.limiters.Set(key, lim, l.idle)
		return lim
	}
	lim := rate.NewLimiter(l.limit, l.burst)
	l.limiters.Set(key, lim, l.idle)
	return lim
}

// allowAll se usa cuando el límite está desactivado.
type allowAll struct{}

func (allowAll) Allow(string) bool { return true }

// NewNopRateLimiter no limita nada.
func NewNopRateLimiter() PredictRateLimiter {
	return allowAll{}
}

func normalizeLimiterKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

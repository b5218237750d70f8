package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Ventana fija: el primer INCR de la ventana fija el TTL de la clave.
const redisWindowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

const (
	redisLimiterPrefix  = "simulador:rl:"
	redisLimiterTimeout = 500 * time.Millisecond
)

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisRateLimiter struct {
	client redisEvaler
	logger *zap.Logger
	limit  RateLimit
}

// NewRedisRateLimiter comparte el cupo entre instancias. Devuelve nil si no hay cliente.
func NewRedisRateLimiter(client *redis.Client, logger *zap.Logger, limit RateLimit) PredictRateLimiter {
	if client == nil {
		return nil
	}
	return newRedisRateLimiter(client, logger, limit)
}

func newRedisRateLimiter(client redisEvaler, logger *zap.Logger, limit RateLimit) *redisRateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisRateLimiter{client: client, logger: logger, limit: limit.withDefaults()}
}

func (l *redisRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	key = normalizeLimiterKey(key)
	if key == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisLimiterTimeout)
	defer cancel()

	count, err := l.client.Eval(ctx, redisWindowScript, []string{redisLimiterPrefix + key}, l.windowSeconds()).Int()
	if err != nil {
		// Sin Redis no se bloquea la simulación.
		l.logger.Warn("rate limiter unavailable", zap.Error(err))
		return true
	}
	return count <= l.limit.Max
}

// windowSeconds redondea hacia arriba; EXPIRE no acepta fracciones.
func (l *redisRateLimiter) windowSeconds() int {
	secs := int((l.limit.Window + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

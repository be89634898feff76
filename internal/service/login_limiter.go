package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/heishia/bluroutine/pkg/util"
)

// RedisLoginLimiter counts failed logins per email in redis. Redis errors
// fail open: a broken cache must not lock everybody out.
type RedisLoginLimiter struct {
	counter *util.RetryCounter
	max     int64
	log     *zap.Logger
}

func NewRedisLoginLimiter(rdb *redis.Client, maxFailures int, window time.Duration, log *zap.Logger) *RedisLoginLimiter {
	return &RedisLoginLimiter{
		counter: util.NewRetryCounter(rdb, window),
		max:     int64(maxFailures),
		log:     log,
	}
}

func (l *RedisLoginLimiter) Blocked(ctx context.Context, email string) bool {
	n, err := l.counter.Get(ctx, util.FormatLoginKey(email))
	if err != nil {
		l.log.Warn("login limiter unavailable", zap.Error(err))
		return false
	}
	return n >= l.max
}

func (l *RedisLoginLimiter) RecordFailure(ctx context.Context, email string) {
	if _, err := l.counter.IncrementAndGet(ctx, util.FormatLoginKey(email)); err != nil {
		l.log.Warn("failed to record login failure", zap.Error(err))
	}
}

func (l *RedisLoginLimiter) Reset(ctx context.Context, email string) {
	if err := l.counter.Reset(ctx, util.FormatLoginKey(email)); err != nil {
		l.log.Warn("failed to reset login failures", zap.Error(err))
	}
}

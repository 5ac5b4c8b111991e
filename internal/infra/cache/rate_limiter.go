package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"apikit/config"
	"apikit/internal/domain/service"
	"apikit/internal/errors"

	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills the bucket by whole intervals, then takes one token.
// It returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// tokenBucket implements RateLimiter with a Redis-side token bucket
type tokenBucket struct {
	client   redis.Scripter
	capacity int
	refill   int
	interval time.Duration
	ttl      time.Duration
	prefix   string
	now      func() time.Time
}

// NewRateLimiter returns a RateLimiter, or nil when rate limiting is disabled or Redis is absent.
func NewRateLimiter(client *redis.Client, cfg *config.Config) service.RateLimiter {
	rl := cfg.RateLimit
	if rl == nil || !rl.Enabled || client == nil {
		return nil
	}

	return newTokenBucket(client, rl)
}

func newTokenBucket(client redis.Scripter, cfg *config.RateLimitConfig) *tokenBucket {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	return &tokenBucket{
		client:   client,
		capacity: cfg.Capacity,
		refill:   cfg.RefillTokens,
		interval: cfg.RefillInterval,
		ttl:      ttl,
		prefix:   cfg.Prefix,
		now:      time.Now,
	}
}

func (b *tokenBucket) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	if b.prefix != "" {
		key = b.prefix + ":" + key
	}

	vals, err := tokenBucketScript.Run(ctx, b.client, []string{key},
		b.now().UnixMilli(),
		b.capacity,
		b.refill,
		b.interval.Milliseconds(),
		int64(b.ttl/time.Second),
	).Result()
	if err != nil {
		return true, 0, errors.Wrap(err, "run token bucket script")
	}

	arr, ok := vals.([]any)
	if !ok || len(arr) != 3 {
		return true, 0, errors.Errorf("unexpected token bucket result %#v", vals)
	}

	allowed := asInt64(arr[0]) == 1
	retryAfter := time.Duration(asInt64(arr[2])) * time.Millisecond

	return allowed, retryAfter, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		n, _ := strconv.ParseInt(t, 10, 64)

		return n
	default:
		n, _ := strconv.ParseInt(fmt.Sprint(t), 10, 64)

		return n
	}
}

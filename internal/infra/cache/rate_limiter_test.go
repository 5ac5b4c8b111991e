package cache

import (
	"testing"
	"time"

	"apikit/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRateLimiter_DisabledReturnsNil(t *testing.T) {
	assert.Nil(t, NewRateLimiter(nil, &config.Config{}))
	assert.Nil(t, NewRateLimiter(nil, &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true}}))
}

func TestNewTokenBucket_DefaultsTTL(t *testing.T) {
	b := newTokenBucket(nil, &config.RateLimitConfig{Capacity: 5, RefillTokens: 1, RefillInterval: time.Second, Prefix: "rl"})

	assert.Equal(t, time.Hour, b.ttl)
	assert.Equal(t, 5, b.capacity)
	assert.Equal(t, "rl", b.prefix)
}

func TestAsInt64(t *testing.T) {
	assert.Equal(t, int64(1), asInt64(int64(1)))
	assert.Equal(t, int64(2), asInt64(2))
	assert.Equal(t, int64(3), asInt64(3.0))
	assert.Equal(t, int64(4), asInt64("4"))
	assert.Equal(t, int64(0), asInt64("x"))
}

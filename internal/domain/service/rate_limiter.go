package service

import (
	"context"
	"time"
)

// RateLimiter consumes one token from the bucket identified by key.
type RateLimiter interface {
	// Allow reports whether the request may proceed and, if not, how long to wait.
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

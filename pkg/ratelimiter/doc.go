// Package ratelimiter implements token bucket rate limiting with pluggable
// storage.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request consumes tokens. Consuming more tokens than
// are available drives the balance negative, so a client that keeps
// retrying while limited stays limited until the debt is refilled.
//
//	store := ratelimiter.NewMemoryStore()
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       100,
//		RefillRate:     10,
//		RefillInterval: time.Second,
//	})
//
//	result, err := limiter.Allow(ctx, clientip.GetIP(r))
//	if err == nil && !result.Allowed() {
//		// respond 429, retry after result.RetryAfter()
//	}
//
// MemoryStore keeps buckets in process memory. RedisStore keeps them in
// Redis and updates them atomically with a Lua script, so several app
// instances share one limit.
package ratelimiter

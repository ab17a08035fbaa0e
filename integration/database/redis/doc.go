// Package redis connects to Redis with retries and exposes a health check.
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//		RetryAttempts: 3,
//		RetryInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	ready := health.Readiness(log, redis.Healthcheck(client))
//
// Connect parses the URL (redis:// or rediss://), then pings the server
// until it answers, the attempts run out or ConnectTimeout elapses. The
// delay between attempts doubles each time, starting at RetryInterval.
//
// Errors are sentinel values checked with errors.Is: ErrEmptyConnectionURL,
// ErrFailedToParseRedisConnString, ErrRedisNotReady and ErrHealthcheckFailed.
package redis

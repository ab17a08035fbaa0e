// Package health provides handlers for service health monitoring.
//
// Handlers:
//   - Liveness: Process is running (no dependency checks)
//   - Readiness: All dependencies are available
//   - NoContent: Returns 204 for minimal overhead
//
// Usage:
//
//	app.Get("/health/live", health.Liveness)
//	app.Get("/health/ready", health.Readiness(log, redis.Healthcheck(client)))
//	app.Get("/ping", health.NoContent)
//
// Dependency checks must follow func(context.Context) error signature.
package health

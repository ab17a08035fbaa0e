// Package middleware provides waypoint handlers for cross-cutting concerns.
//
// Every middleware is a handler.HandlerFunc that does its work and then
// calls next, or answers the request itself and stops the chain:
//
//	app := waypoint.New()
//	app.Use(
//		middleware.Recover(log),
//		middleware.RequestID(middleware.RequestIDConfig{}),
//		middleware.Logging(middleware.LoggingConfig{Logger: log}),
//		middleware.JSON(middleware.JSONConfig{}),
//	)
//	app.Get("/todos", middleware.Auth(middleware.JWTConfig{Service: tokens}), listTodos)
//
// Values extracted by a middleware are stored on the request and read back
// with the Get helpers (GetRequestID, GetClientIP, GetStandardClaims).
//
// # Available middleware
//
//   - JSON reads and decodes the request body into Request.Body.
//   - RequestID tags each request with an identifier.
//   - ClientIP resolves the caller address behind proxies.
//   - Logging writes a start and a completion record per request.
//   - Recover turns handler panics into 500 responses.
//   - Auth validates Bearer tokens with pkg/jwt.
//   - RateLimit enforces a token bucket per client.
package middleware

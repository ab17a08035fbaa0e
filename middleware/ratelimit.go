package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/logger"
	"github.com/dmitrymomot/waypoint/core/response"
	"github.com/dmitrymomot/waypoint/pkg/ratelimiter"
)

// RateLimitConfig configures the RateLimit middleware.
type RateLimitConfig struct {
	// Skip bypasses the middleware for matching requests.
	Skip func(req *handler.Request) bool
	// Limiter decides each request. Required.
	Limiter ratelimiter.RateLimiter
	// KeyExtractor identifies the caller (default: client IP).
	KeyExtractor func(req *handler.Request) string
	// ErrorHandler answers rejected requests (default: 429).
	ErrorHandler func(req *handler.Request, res *response.Writer, result *ratelimiter.Result)
	// DisableHeaders omits the X-RateLimit-* headers.
	DisableHeaders bool
	// Logger receives limiter failures (default: discard).
	Logger *slog.Logger
}

// RateLimit consumes one token per request from the caller's bucket and
// answers 429 once the bucket is empty. Limiter failures are answered with
// 500. Panics if cfg.Limiter is nil.
func RateLimit(cfg RateLimitConfig) handler.HandlerFunc {
	if cfg.Limiter == nil {
		panic("ratelimit middleware: limiter is required")
	}
	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = resolveClientIP
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(_ *handler.Request, res *response.Writer, _ *ratelimiter.Result) {
			sendError(res, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
		}
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}

	return func(req *handler.Request, res *response.Writer, next handler.Next) {
		if cfg.Skip != nil && cfg.Skip(req) {
			next()
			return
		}

		result, err := cfg.Limiter.Allow(req.Context(), cfg.KeyExtractor(req))
		if err != nil {
			cfg.Logger.ErrorContext(req.Context(), "rate limiter failed",
				logger.Component("ratelimit"),
				logger.Error(err),
			)
			sendError(res, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}

		if !cfg.DisableHeaders {
			setRateLimitHeaders(res.Header(), result)
		}

		if !result.Allowed() {
			cfg.ErrorHandler(req, res, result)
			return
		}
		next()
	}
}

func setRateLimitHeaders(h http.Header, result *ratelimiter.Result) {
	h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	// Debt from oversized requests is not exposed.
	h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

	if retry := result.RetryAfter(); retry > 0 {
		h.Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
	}
}

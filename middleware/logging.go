package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/logger"
	"github.com/dmitrymomot/waypoint/core/response"
)

// LoggingConfig configures the Logging middleware.
type LoggingConfig struct {
	// Skip bypasses the middleware for matching requests.
	Skip func(req *handler.Request) bool
	// Logger receives the records (default: slog.Default()).
	Logger *slog.Logger
	// Level for successful requests (default: info).
	Level slog.Level
	// SlowRequestThreshold logs slower requests at warn level (default: 5s).
	SlowRequestThreshold time.Duration
	// Component is attached to every record (default: "http").
	Component string
}

// Logging records the start and the completion of each request. The
// completion record carries the status sent by the rest of the chain.
// Requests finished after the chain returned are logged with status 0.
func Logging(cfg LoggingConfig) handler.HandlerFunc {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.SlowRequestThreshold <= 0 {
		cfg.SlowRequestThreshold = 5 * time.Second
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}

	return func(req *handler.Request, res *response.Writer, next handler.Next) {
		if cfg.Skip != nil && cfg.Skip(req) {
			next()
			return
		}

		ctx := req.Context()
		start := time.Now()
		requestID, _ := GetRequestID(req)

		attrs := []slog.Attr{
			logger.Component(cfg.Component),
			logger.Method(req.Method),
			logger.Path(req.URL.Path),
			logger.RequestID(requestID),
			logger.ClientIP(resolveClientIP(req)),
		}
		cfg.Logger.LogAttrs(ctx, cfg.Level, "request started", attrs...)

		next()

		latency := time.Since(start)
		status := res.StatusCode()
		attrs = append(attrs, logger.StatusCode(status), logger.Latency(latency))

		level := cfg.Level
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		case latency > cfg.SlowRequestThreshold:
			level = slog.LevelWarn
			attrs = append(attrs, slog.Bool("slow_request", true))
		}
		cfg.Logger.LogAttrs(ctx, level, "request completed", attrs...)
	}
}

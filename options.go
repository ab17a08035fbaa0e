package waypoint

import (
	"log/slog"

	"github.com/rs/cors"

	"github.com/dmitrymomot/waypoint/core/router"
	"github.com/dmitrymomot/waypoint/core/server"
)

// Option configures an App during creation.
type Option func(*App)

// WithLogger sets the logger for dispatch errors and the HTTP server.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithRouter replaces the route table. Routes already registered on r are kept.
func WithRouter(r *router.Router) Option {
	return func(a *App) {
		if r != nil {
			a.router = r
		}
	}
}

// WithServerOptions configures the server created by Listen.
func WithServerOptions(opts ...server.Option) Option {
	return func(a *App) {
		a.serverOpts = append(a.serverOpts, opts...)
	}
}

// WithCORS wraps the app handler with rs/cors using opts.
func WithCORS(opts cors.Options) Option {
	return func(a *App) {
		a.cors = cors.New(opts)
	}
}

// WithNotFoundBody overrides the body sent when no route matches.
func WithNotFoundBody(body string) Option {
	return func(a *App) {
		a.notFound = body
	}
}

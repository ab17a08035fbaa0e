package todo

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/waypoint"
	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/health"
	"github.com/dmitrymomot/waypoint/core/logger"
	"github.com/dmitrymomot/waypoint/core/server"
	"github.com/dmitrymomot/waypoint/integration/database/redis"
	"github.com/dmitrymomot/waypoint/middleware"
	"github.com/dmitrymomot/waypoint/pkg/jwt"
	"github.com/dmitrymomot/waypoint/pkg/ratelimiter"
)

// App is the todo service: routes, middleware and their dependencies.
type App struct {
	config Config
	web    *waypoint.App
	server *server.Server
	logger *slog.Logger
	store  *Store
	auth   *authenticator

	limiter     ratelimiter.RateLimiter
	memoryStore *ratelimiter.MemoryStore
	redis       *goredis.Client
	ownsRedis   bool
	checks      []func(context.Context) error
}

type AppOption func(*App) error

// WithLogger replaces the logger built from LOG_LEVEL and LOG_FORMAT.
func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = log
		return nil
	}
}

// WithStore replaces the empty in-memory store.
func WithStore(store *Store) AppOption {
	return func(app *App) error {
		if store == nil {
			return errors.New("store cannot be nil")
		}
		app.store = store
		return nil
	}
}

// WithRateLimiter replaces the limiter built from the RATE_LIMIT_* settings.
func WithRateLimiter(limiter ratelimiter.RateLimiter) AppOption {
	return func(app *App) error {
		if limiter == nil {
			return errors.New("rate limiter cannot be nil")
		}
		app.limiter = limiter
		return nil
	}
}

// WithRedis uses client for rate limit state instead of connecting with cfg.Redis.
func WithRedis(client *goredis.Client) AppOption {
	return func(app *App) error {
		if client == nil {
			return errors.New("redis client cannot be nil")
		}
		app.redis = client
		return nil
	}
}

// WithClock overrides the time source used for issued tokens.
func WithClock(now func() time.Time) AppOption {
	return func(app *App) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		app.auth.now = now
		return nil
	}
}

// NewApp wires the service from cfg. When cfg.Redis is configured and no
// client was supplied, it connects before returning.
func NewApp(ctx context.Context, cfg Config, opts ...AppOption) (*App, error) {
	tokens, err := jwt.NewFromString(cfg.JWTSecret)
	if err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		store:  NewStore(),
		auth: &authenticator{
			tokens:       tokens,
			ttl:          cfg.TokenTTL,
			username:     cfg.AuthUsername,
			passwordHash: []byte(cfg.AuthPasswordHash),
			now:          time.Now,
		},
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = logger.New(
			logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
			logger.WithFormat(cfg.LogFormat),
			logger.WithAttr(slog.String("service", cfg.AppName), slog.String("env", cfg.Env)),
		)
	}

	if app.redis == nil && cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		app.redis = client
		app.ownsRedis = true
	}
	if app.redis != nil {
		app.checks = append(app.checks, redis.Healthcheck(app.redis))
	}

	if app.limiter == nil {
		if err := app.buildLimiter(); err != nil {
			return nil, err
		}
	}

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
	if err != nil {
		return nil, err
	}
	app.server = srv

	app.web = app.routes()
	return app, nil
}

func (app *App) buildLimiter() error {
	var store ratelimiter.Store
	if app.redis != nil {
		store = ratelimiter.NewRedisStore(app.redis)
	} else {
		app.memoryStore = ratelimiter.NewMemoryStore(ratelimiter.WithMemoryStoreLogger(app.logger))
		store = app.memoryStore
	}

	limiter, err := ratelimiter.NewBucket(store, app.config.RateLimit)
	if err != nil {
		return err
	}
	app.limiter = limiter
	return nil
}

func (app *App) routes() *waypoint.App {
	opts := []waypoint.Option{waypoint.WithLogger(app.logger)}
	if len(app.config.CORSOrigins) > 0 {
		opts = append(opts, waypoint.WithCORS(cors.Options{
			AllowedOrigins: app.config.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}))
	}
	web := waypoint.New(opts...)

	web.Use(
		middleware.Recover(app.logger),
		middleware.RequestID(middleware.RequestIDConfig{}),
		middleware.ClientIP(middleware.ClientIPConfig{}),
		middleware.Logging(middleware.LoggingConfig{
			Logger: app.logger,
			Skip:   isHealthcheck,
		}),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: app.limiter,
			Logger:  app.logger,
			Skip:    isHealthcheck,
		}),
		middleware.JSON(middleware.JSONConfig{
			MaxBytes: app.config.MaxBodyBytes,
			Logger:   app.logger,
		}),
	)

	auth := middleware.Auth(middleware.JWTConfig{Service: app.auth.tokens})

	web.Get("/health/live", health.Liveness)
	web.Get("/health/ready", health.Readiness(app.logger, app.checks...))

	web.Post("/login", app.login)
	web.Get("/todos", auth, app.listTodos)
	web.Post("/todos", auth, app.createTodo)
	web.Get("/todos/:id", auth, app.getTodo)
	web.Delete("/todos/:id", auth, app.deleteTodo)

	return web
}

func isHealthcheck(req *handler.Request) bool {
	return strings.HasPrefix(req.URL.Path, "/health/")
}

// Handler returns the HTTP handler serving every route.
func (app *App) Handler() http.Handler {
	return app.web.Handler()
}

// Addr returns the bound address while Run is serving.
func (app *App) Addr() string {
	return app.web.Addr()
}

// Run serves HTTP until ctx is cancelled. The in-memory rate limit store
// is swept in the background for as long as the server runs.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.web.Serve(ctx, app.server, func() {
			app.logger.InfoContext(ctx, "listening", slog.String("addr", app.server.Addr()))
		})
	})
	if app.memoryStore != nil {
		g.Go(func() error {
			return app.memoryStore.Run(ctx)
		})
	}

	err := g.Wait()
	if app.ownsRedis {
		if cerr := app.redis.Close(); cerr != nil {
			app.logger.Error("failed to close redis client", logger.Error(cerr))
		}
	}
	return err
}

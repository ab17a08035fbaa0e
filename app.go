package waypoint

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/cors"

	"github.com/dmitrymomot/waypoint/core/chain"
	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/logger"
	"github.com/dmitrymomot/waypoint/core/response"
	"github.com/dmitrymomot/waypoint/core/router"
	"github.com/dmitrymomot/waypoint/core/server"
)

// NotFoundBody is the default body for requests that match no route.
const NotFoundBody = "404 not found"

// App registers routes and global middleware and serves them over HTTP.
// Registration is expected to happen before Listen; it is nevertheless
// safe for concurrent use.
type App struct {
	mu         sync.RWMutex
	router     *router.Router
	globals    []handler.HandlerFunc
	logger     *slog.Logger
	cors       *cors.Cors
	notFound   string
	serverOpts []server.Option
	server     *server.Server
}

// New creates an App with an empty route table.
func New(opts ...Option) *App {
	a := &App{
		router:   router.New(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		notFound: NotFoundBody,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Use appends global middleware. Globals run before route handlers, in
// registration order, for every request that matches a route.
func (a *App) Use(handlers ...handler.HandlerFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, h := range handlers {
		if h != nil {
			a.globals = append(a.globals, h)
		}
	}
}

// Handle registers handlers for method and pattern. See router.Router.Handle.
func (a *App) Handle(method, pattern string, handlers ...handler.HandlerFunc) {
	a.router.Handle(method, pattern, handlers...)
}

func (a *App) Get(pattern string, handlers ...handler.HandlerFunc) {
	a.router.Get(pattern, handlers...)
}

func (a *App) Post(pattern string, handlers ...handler.HandlerFunc) {
	a.router.Post(pattern, handlers...)
}

func (a *App) Put(pattern string, handlers ...handler.HandlerFunc) {
	a.router.Put(pattern, handlers...)
}

func (a *App) Patch(pattern string, handlers ...handler.HandlerFunc) {
	a.router.Patch(pattern, handlers...)
}

func (a *App) Delete(pattern string, handlers ...handler.HandlerFunc) {
	a.router.Delete(pattern, handlers...)
}

// Routes returns the registered routes in registration order.
func (a *App) Routes() []*router.Route {
	return a.router.Routes()
}

// ServeHTTP dispatches a request through the matching route's chain.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tw := &trackingWriter{ResponseWriter: w}
	res := response.New(tw, r)

	req, err := handler.NewRequest(r)
	if err != nil {
		a.logger.WarnContext(r.Context(), "malformed request url",
			logger.Error(err),
			logger.Method(r.Method),
		)
		_ = res.Status(http.StatusBadRequest).Send(http.StatusText(http.StatusBadRequest))
		return
	}

	rr, ok := a.router.Resolve(req.Method, req.URL)
	if !ok {
		_ = res.Status(http.StatusNotFound).Send(a.notFound)
		return
	}
	req.Params = rr.Params
	req.Query = rr.Query

	a.mu.RLock()
	c := chain.New(a.globals...)
	a.mu.RUnlock()
	c.Append(rr.Handlers()...)
	c.Execute(req, res)

	if res.Sent() || tw.written {
		return
	}

	a.logger.ErrorContext(req.Context(), "request not answered",
		logger.Error(ErrNoResponse),
		logger.Method(req.Method),
		logger.Path(req.URL.Path),
		logger.Route(rr.Pattern()),
	)
	_ = res.Status(http.StatusInternalServerError).Send(http.StatusText(http.StatusInternalServerError))
}

// Handler returns the app as an http.Handler, wrapped with CORS handling
// when WithCORS was used.
func (a *App) Handler() http.Handler {
	if a.cors != nil {
		return a.cors.Handler(a)
	}
	return a
}

// Listen serves the app on addr until ctx is cancelled, then shuts down
// gracefully. onReady runs once the address is bound. A bare port such as
// "3000" listens on all interfaces.
func (a *App) Listen(ctx context.Context, addr string, onReady func()) error {
	opts := append([]server.Option{server.WithLogger(a.logger)}, a.serverOpts...)
	return a.Serve(ctx, server.New(normalizeAddr(addr), opts...), onReady)
}

// Serve runs the app on a preconfigured server. See Listen.
func (a *App) Serve(ctx context.Context, srv *server.Server, onReady func()) error {
	a.mu.Lock()
	a.server = srv
	a.mu.Unlock()

	return srv.Listen(ctx, a.Handler(), func(net.Addr) {
		if onReady != nil {
			onReady()
		}
	})
}

// Addr returns the address the app is bound to, or "" before Listen.
func (a *App) Addr() string {
	a.mu.RLock()
	srv := a.server
	a.mu.RUnlock()
	if srv == nil {
		return ""
	}
	return srv.Addr()
}

func normalizeAddr(addr string) string {
	if addr == "" || strings.Contains(addr, ":") {
		return addr
	}
	for _, r := range addr {
		if r < '0' || r > '9' {
			return addr
		}
	}
	return ":" + addr
}

package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"sync"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/pathmatch"
)

// Router is an ordered route table. It is safe for concurrent use.
type Router struct {
	mu     sync.RWMutex
	routes []*Route
	logger *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used to report route registration.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates an empty router.
func New(opts ...Option) *Router {
	r := &Router{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle registers handlers for method and pattern. It panics if the method,
// pattern or handler list is invalid.
func (r *Router) Handle(method, pattern string, handlers ...handler.HandlerFunc) {
	rt, err := newRoute(method, pattern, handlers)
	if err != nil {
		panic(err)
	}

	r.mu.Lock()
	r.routes = append(r.routes, rt)
	r.mu.Unlock()

	r.logger.Debug("route registered",
		slog.String("method", method),
		slog.String("pattern", pattern),
		slog.Int("handlers", len(rt.handlers)),
	)
}

func (r *Router) Get(pattern string, handlers ...handler.HandlerFunc) {
	r.Handle(http.MethodGet, pattern, handlers...)
}

func (r *Router) Post(pattern string, handlers ...handler.HandlerFunc) {
	r.Handle(http.MethodPost, pattern, handlers...)
}

func (r *Router) Put(pattern string, handlers ...handler.HandlerFunc) {
	r.Handle(http.MethodPut, pattern, handlers...)
}

func (r *Router) Patch(pattern string, handlers ...handler.HandlerFunc) {
	r.Handle(http.MethodPatch, pattern, handlers...)
}

func (r *Router) Delete(pattern string, handlers ...handler.HandlerFunc) {
	r.Handle(http.MethodDelete, pattern, handlers...)
}

// Resolve returns the first route registered for method whose pattern
// matches the escaped path of u.
func (r *Router) Resolve(method string, u *url.URL) (*ResolvedRoute, bool) {
	if u == nil {
		return nil, false
	}

	path := u.EscapedPath()
	if path == "" {
		path = pathmatch.Separator
	}
	segments := pathmatch.Split(path)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rt := range r.routes {
		if rt.method != method {
			continue
		}
		params, ok := pathmatch.Match(rt.segments, segments)
		if !ok {
			continue
		}
		return &ResolvedRoute{
			Route:  rt,
			Params: params,
			Query:  pathmatch.Query(u),
			Match:  pathmatch.Substitute(rt.segments, segments),
		}, true
	}
	return nil, false
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []*Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.routes)
}

// Len returns the number of registered routes.
func (r *Router) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}

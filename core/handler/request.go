package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

// ErrMalformedURL is returned when the request target cannot be turned into an absolute URL.
var ErrMalformedURL = errors.New("malformed request url")

// Request describes an incoming HTTP request for the duration of one dispatch.
type Request struct {
	// Method is the HTTP method exactly as received.
	Method string
	// URL is absolute: scheme, host and the request URI as received.
	URL *url.URL
	Header http.Header
	// Params holds path parameters bound by the matched route.
	Params map[string]string
	// Query holds the flattened query string of the matched request.
	Query map[string]string
	// Body is populated by body-parsing middleware.
	Body any

	raw    *http.Request
	mu     sync.RWMutex
	values map[any]any
}

// NewRequest builds a Request from r. The scheme is https when the
// connection is TLS, http otherwise.
func NewRequest(r *http.Request) (*Request, error) {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	host := r.Host
	target := "/"
	if r.URL != nil {
		if host == "" {
			host = r.URL.Host
		}
		target = r.URL.RequestURI()
	}

	u, err := url.Parse(scheme + "://" + host + target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedURL, err)
	}

	return &Request{
		Method: r.Method,
		URL:    u,
		Header: r.Header,
		Params: map[string]string{},
		Query:  map[string]string{},
		raw:    r,
	}, nil
}

// Raw returns the underlying *http.Request.
func (r *Request) Raw() *http.Request {
	return r.raw
}

// Context returns the request context, or context.Background when the
// request was not built from an *http.Request.
func (r *Request) Context() context.Context {
	if r.raw == nil {
		return context.Background()
	}
	return r.raw.Context()
}

// Param returns the path parameter bound to key, or "".
func (r *Request) Param(key string) string {
	return r.Params[key]
}

// QueryValue returns the query value for key, or "".
func (r *Request) QueryValue(key string) string {
	return r.Query[key]
}

// Set stores a request-scoped value.
func (r *Request) Set(key, val any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.values == nil {
		r.values = make(map[any]any)
	}
	r.values[key] = val
}

// Value returns a value stored with Set, falling back to the request context.
func (r *Request) Value(key any) any {
	r.mu.RLock()
	val, ok := r.values[key]
	r.mu.RUnlock()
	if ok {
		return val
	}
	return r.Context().Value(key)
}

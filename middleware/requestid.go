package middleware

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/response"
)

// DefaultRequestIDHeader carries the request identifier.
const DefaultRequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDConfig configures the RequestID middleware.
type RequestIDConfig struct {
	// Skip bypasses the middleware for matching requests.
	Skip func(req *handler.Request) bool
	// Generator creates new identifiers (default: UUID v4).
	Generator func() string
	// HeaderName is read and written (default: X-Request-ID).
	HeaderName string
	// UseExisting keeps an identifier supplied by the client.
	UseExisting bool
}

// RequestID assigns an identifier to each request, stores it on the request
// and echoes it in the response header.
func RequestID(cfg RequestIDConfig) handler.HandlerFunc {
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultRequestIDHeader
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(req *handler.Request, res *response.Writer, next handler.Next) {
		if cfg.Skip != nil && cfg.Skip(req) {
			next()
			return
		}

		var id string
		if cfg.UseExisting {
			id = req.Header.Get(cfg.HeaderName)
		}
		if id == "" {
			id = cfg.Generator()
		}

		req.Set(requestIDKey{}, id)
		res.Header().Set(cfg.HeaderName, id)
		next()
	}
}

// GetRequestID returns the identifier stored by RequestID.
func GetRequestID(req *handler.Request) (string, bool) {
	id, ok := req.Value(requestIDKey{}).(string)
	return id, ok
}

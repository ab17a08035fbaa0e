package middleware

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/response"
	"github.com/dmitrymomot/waypoint/pkg/jwt"
)

type jwtClaimsKey struct{}

// JWTConfig configures the Auth middleware.
type JWTConfig struct {
	// Skip bypasses the middleware for matching requests.
	Skip func(req *handler.Request) bool
	// Service verifies tokens. Required.
	Service *jwt.Service
	// TokenExtractor pulls the token from the request (default: JWTFromAuthHeader).
	TokenExtractor func(req *handler.Request) string
	// ClaimsFactory returns a pointer to decode claims into (default: *jwt.StandardClaims).
	ClaimsFactory func() any
	// ErrorHandler answers failed authentication (default: 401 {"error":"Unauthorized"}).
	ErrorHandler func(req *handler.Request, res *response.Writer, err error)
}

// Auth rejects requests without a valid Bearer token and stores the parsed
// claims on the request. A request with no Authorization header at all is
// rejected before any token parsing. Panics if cfg.Service is nil.
func Auth(cfg JWTConfig) handler.HandlerFunc {
	if cfg.Service == nil {
		panic("jwt middleware: service is required")
	}
	if cfg.TokenExtractor == nil {
		cfg.TokenExtractor = JWTFromAuthHeader()
	}
	if cfg.ClaimsFactory == nil {
		cfg.ClaimsFactory = func() any {
			return &jwt.StandardClaims{}
		}
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(_ *handler.Request, res *response.Writer, _ error) {
			sendError(res, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
	}

	return func(req *handler.Request, res *response.Writer, next handler.Next) {
		if cfg.Skip != nil && cfg.Skip(req) {
			next()
			return
		}

		if req.Header.Get("Authorization") == "" {
			cfg.ErrorHandler(req, res, jwt.ErrInvalidToken)
			return
		}

		token := cfg.TokenExtractor(req)
		if token == "" {
			cfg.ErrorHandler(req, res, jwt.ErrInvalidToken)
			return
		}

		claims := cfg.ClaimsFactory()
		if err := cfg.Service.Parse(token, claims); err != nil {
			cfg.ErrorHandler(req, res, err)
			return
		}

		req.Set(jwtClaimsKey{}, claims)
		next()
	}
}

// JWTFromAuthHeader extracts a Bearer token from the Authorization header.
func JWTFromAuthHeader() func(req *handler.Request) string {
	return func(req *handler.Request) string {
		scheme, token, ok := strings.Cut(req.Header.Get("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}
}

// GetJWTClaims returns claims of type T stored by Auth.
func GetJWTClaims[T any](req *handler.Request) (T, bool) {
	claims, ok := req.Value(jwtClaimsKey{}).(T)
	return claims, ok
}

// GetStandardClaims returns claims stored by Auth with the default factory.
func GetStandardClaims(req *handler.Request) (*jwt.StandardClaims, bool) {
	return GetJWTClaims[*jwt.StandardClaims](req)
}

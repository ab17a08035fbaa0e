package middleware

import (
	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/response"
	"github.com/dmitrymomot/waypoint/pkg/clientip"
)

type clientIPKey struct{}

// ClientIPConfig configures the ClientIP middleware.
type ClientIPConfig struct {
	// Skip bypasses the middleware for matching requests.
	Skip func(req *handler.Request) bool
	// HeaderName, when set, echoes the resolved address in a response header.
	HeaderName string
}

// ClientIP resolves the client address with clientip.GetIP and stores it on the request.
func ClientIP(cfg ClientIPConfig) handler.HandlerFunc {
	return func(req *handler.Request, res *response.Writer, next handler.Next) {
		if cfg.Skip != nil && cfg.Skip(req) {
			next()
			return
		}

		ip := resolveClientIP(req)
		req.Set(clientIPKey{}, ip)
		if cfg.HeaderName != "" && ip != "" {
			res.Header().Set(cfg.HeaderName, ip)
		}
		next()
	}
}

// GetClientIP returns the address stored by ClientIP.
func GetClientIP(req *handler.Request) (string, bool) {
	ip, ok := req.Value(clientIPKey{}).(string)
	return ip, ok && ip != ""
}

func resolveClientIP(req *handler.Request) string {
	if ip, ok := GetClientIP(req); ok {
		return ip
	}
	if raw := req.Raw(); raw != nil {
		return clientip.GetIP(raw)
	}
	return ""
}

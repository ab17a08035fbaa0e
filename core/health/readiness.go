package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/logger"
	"github.com/dmitrymomot/waypoint/core/response"
)

// Readiness responds "READY" when every check passes and 503 otherwise.
func Readiness(log *slog.Logger, checks ...func(context.Context) error) handler.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(req *handler.Request, res *response.Writer, _ handler.Next) {
		ctx := req.Context()
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				_ = res.Status(http.StatusServiceUnavailable).Send(http.StatusText(http.StatusServiceUnavailable))
				return
			}
		}
		_ = res.Send("READY")
	}
}

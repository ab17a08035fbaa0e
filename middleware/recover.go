package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/logger"
	"github.com/dmitrymomot/waypoint/core/response"
)

// Recover catches panics raised further down the chain. The panic is logged
// with its stack and, unless a response was already sent, answered with 500.
func Recover(log *slog.Logger) handler.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}

	return func(req *handler.Request, res *response.Writer, next handler.Next) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.ErrorContext(req.Context(), "panic recovered",
				logger.Panic(rec),
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
				logger.Stack(),
			)

			if res.Sent() {
				return
			}
			if err := res.Status(http.StatusInternalServerError).Send(http.StatusText(http.StatusInternalServerError)); err != nil {
				log.ErrorContext(req.Context(), "failed to send panic response", logger.Error(fmt.Errorf("send: %w", err)))
			}
		}()

		next()
	}
}

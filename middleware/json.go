package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/logger"
	"github.com/dmitrymomot/waypoint/core/response"
)

// DefaultMaxBodyBytes limits request bodies read by JSON.
const DefaultMaxBodyBytes int64 = 4 << 20

// ErrBodyTooLarge is reported when a request body exceeds the configured limit.
var ErrBodyTooLarge = errors.New("request body too large")

// JSONConfig configures the JSON middleware.
type JSONConfig struct {
	// Skip bypasses the middleware for matching requests.
	Skip func(req *handler.Request) bool
	// MaxBytes caps the body size (default: 4MB).
	MaxBytes int64
	// Logger receives read failures (default: discard).
	Logger *slog.Logger
}

type errorBody struct {
	Error string `json:"error"`
}

// JSON reads the whole request body. A body sent as application/json is
// decoded into Request.Body; an empty one leaves Body nil. Any other body is
// stored as a string. Oversized bodies are answered with 413 and invalid
// JSON with 400.
func JSON(cfg JSONConfig) handler.HandlerFunc {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBodyBytes
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}

	return func(req *handler.Request, res *response.Writer, next handler.Next) {
		if cfg.Skip != nil && cfg.Skip(req) {
			next()
			return
		}

		data, err := readBody(req.Raw(), cfg.MaxBytes)
		switch {
		case errors.Is(err, ErrBodyTooLarge):
			sendError(res, http.StatusRequestEntityTooLarge, ErrBodyTooLarge.Error())
			return
		case err != nil:
			cfg.Logger.WarnContext(req.Context(), "failed to read request body", logger.Error(err))
			sendError(res, http.StatusBadRequest, "failed to read request body")
			return
		}

		if !isJSON(req.Header.Get("Content-Type")) {
			req.Body = string(data)
			next()
			return
		}

		if len(data) > 0 {
			var body any
			if err := json.Unmarshal(data, &body); err != nil {
				sendError(res, http.StatusBadRequest, "invalid JSON body")
				return
			}
			req.Body = body
		}
		next()
	}
}

func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r == nil || r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	if r.ContentLength > limit {
		return nil, ErrBodyTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrBodyTooLarge
	}
	return data, nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == response.ContentTypeJSON
}

func sendError(res *response.Writer, code int, msg string) {
	_ = res.Status(code).Send(errorBody{Error: msg})
}

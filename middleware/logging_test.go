package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/logger"
	"github.com/dmitrymomot/waypoint/core/response"
	"github.com/dmitrymomot/waypoint/middleware"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) records(t *testing.T) []map[string]any {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(b.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func newJSONLogger(buf *syncBuffer) *slog.Logger {
	return logger.New(logger.WithJSONFormatter(), logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
}

func TestLogging(t *testing.T) {
	t.Parallel()

	buf := &syncBuffer{}
	app := newApp(
		middleware.RequestID(middleware.RequestIDConfig{Generator: func() string { return "req-1" }}),
		middleware.Logging(middleware.LoggingConfig{Logger: newJSONLogger(buf)}),
		func(_ *handler.Request, res *response.Writer, _ handler.Next) {
			_ = res.Status(http.StatusCreated).Send("created")
		},
	)

	do(app, httptest.NewRequest(http.MethodPost, "/", nil))

	records := buf.records(t)
	require.Len(t, records, 2)

	assert.Equal(t, "request started", records[0]["msg"])
	assert.Equal(t, "req-1", records[0]["request_id"])
	assert.Equal(t, "POST", records[0]["method"])

	assert.Equal(t, "request completed", records[1]["msg"])
	assert.Equal(t, "INFO", records[1]["level"])
	assert.EqualValues(t, http.StatusCreated, records[1]["status_code"])
	assert.Contains(t, records[1], "latency")
}

func TestLoggingLevelByStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusServiceUnavailable, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			t.Parallel()

			buf := &syncBuffer{}
			app := newApp(
				middleware.Logging(middleware.LoggingConfig{Logger: newJSONLogger(buf)}),
				func(_ *handler.Request, res *response.Writer, _ handler.Next) {
					_ = res.Status(tt.status).Send(nil)
				},
			)

			do(app, httptest.NewRequest(http.MethodGet, "/", nil))

			records := buf.records(t)
			require.Len(t, records, 2)
			assert.Equal(t, tt.level, records[1]["level"])
		})
	}
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	buf := &syncBuffer{}
	app := newApp(
		middleware.Logging(middleware.LoggingConfig{
			Logger: newJSONLogger(buf),
			Skip:   func(*handler.Request) bool { return true },
		}),
		ok,
	)

	rec := do(app, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.records(t))
}

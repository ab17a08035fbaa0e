package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/waypoint/core/logger"
)

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithJSONFormatter(),
		logger.WithAttr(logger.Component("test")),
	)

	log.Info("request completed",
		logger.Method("GET"),
		logger.Path("/todos"),
		logger.StatusCode(200),
		logger.Latency(time.Millisecond),
		logger.Error(nil),
		logger.RequestID(""),
	)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "request completed", record["msg"])
	assert.Equal(t, "test", record["component"])
	assert.Equal(t, "GET", record["method"])
	assert.Equal(t, "/todos", record["path"])
	assert.EqualValues(t, 200, record["status_code"])
	assert.NotContains(t, record, "error")
	assert.NotContains(t, record, "request_id")
}

func TestNewLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("shown", logger.Error(errors.New("boom")))
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestEnvironmentPresets(t *testing.T) {
	t.Parallel()

	var dev bytes.Buffer
	logger.New(logger.WithDevelopment("todo"), logger.WithOutput(&dev)).Debug("dev")
	assert.Contains(t, dev.String(), "service=todo")

	var prod bytes.Buffer
	prodLog := logger.New(logger.WithProduction("todo"), logger.WithOutput(&prod))
	prodLog.Debug("skipped")
	prodLog.Info("prod")
	assert.NotContains(t, prod.String(), "skipped")
	assert.Contains(t, prod.String(), `"service":"todo"`)
}

func TestWithFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger.New(logger.WithFormat(" JSON "), logger.WithOutput(&buf)).Info("x")
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Panic(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Route("").Equal(slog.Attr{}))
	assert.True(t, logger.ClientIP("").Equal(slog.Attr{}))
	assert.Equal(t, "panic", logger.Panic("boom").Key)
	assert.Equal(t, "boom", logger.Panic("boom").Value.String())
	assert.Equal(t, "route", logger.Route("/todos/:id").Key)
	assert.Equal(t, int64(3), logger.Count("items", 3).Value.Int64())
	assert.Contains(t, logger.Stack().Value.String(), "goroutine")
}

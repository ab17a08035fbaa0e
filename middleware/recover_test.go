package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/response"
	"github.com/dmitrymomot/waypoint/middleware"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	buf := &syncBuffer{}
	app := newApp(
		middleware.Recover(newJSONLogger(buf)),
		func(*handler.Request, *response.Writer, handler.Next) {
			panic("boom")
		},
	)

	rec := do(app, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", body(t, rec))

	records := buf.records(t)
	require.Len(t, records, 1)
	assert.Equal(t, "panic recovered", records[0]["msg"])
	assert.Equal(t, "boom", records[0]["panic"])
	assert.Contains(t, records[0], "stack")
}

func TestRecoverAfterSend(t *testing.T) {
	t.Parallel()

	app := newApp(
		middleware.Recover(nil),
		func(_ *handler.Request, res *response.Writer, _ handler.Next) {
			_ = res.Status(http.StatusAccepted).Send("accepted")
			panic("late")
		},
	)

	rec := do(app, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "accepted", body(t, rec))
}

func TestRecoverPassThrough(t *testing.T) {
	t.Parallel()

	app := newApp(middleware.Recover(nil), ok)
	rec := do(app, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

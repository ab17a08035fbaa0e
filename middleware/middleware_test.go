package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/waypoint"
	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/response"
)

// newApp registers handlers for every method on "/".
func newApp(handlers ...handler.HandlerFunc) *waypoint.App {
	app := waypoint.New()
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut} {
		app.Handle(method, "/", handlers...)
	}
	return app
}

func do(app *waypoint.App, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, r)
	return rec
}

func ok(_ *handler.Request, res *response.Writer, _ handler.Next) {
	_ = res.Send("ok")
}

func body(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	data, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return string(data)
}

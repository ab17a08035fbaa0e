package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/response"
	"github.com/dmitrymomot/waypoint/middleware"
	"github.com/dmitrymomot/waypoint/pkg/jwt"
)

func TestAuth(t *testing.T) {
	t.Parallel()

	service, err := jwt.NewFromString("secret")
	require.NoError(t, err)

	valid, err := service.Generate(jwt.StandardClaims{
		Subject:   "alice",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	expired, err := service.Generate(jwt.StandardClaims{
		Subject:   "alice",
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	})
	require.NoError(t, err)

	app := newApp(
		middleware.Auth(middleware.JWTConfig{Service: service}),
		func(req *handler.Request, res *response.Writer, _ handler.Next) {
			claims, ok := middleware.GetStandardClaims(req)
			if !ok {
				_ = res.Status(http.StatusInternalServerError).Send("no claims")
				return
			}
			_ = res.Send(claims.Subject)
		},
	)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, "alice"},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, "alice"},
		{"missing header", "", http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, `{"error":"Unauthorized"}`},
		{"garbage token", "Bearer nope", http.StatusUnauthorized, `{"error":"Unauthorized"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			rec := do(app, r)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, body(t, rec))
		})
	}
}

func TestAuthCustomClaims(t *testing.T) {
	t.Parallel()

	type claims struct {
		jwt.StandardClaims
		Role string `json:"role"`
	}

	service, err := jwt.NewFromString("secret")
	require.NoError(t, err)
	token, err := service.Generate(claims{StandardClaims: jwt.StandardClaims{Subject: "bob"}, Role: "admin"})
	require.NoError(t, err)

	app := newApp(
		middleware.Auth(middleware.JWTConfig{
			Service:       service,
			ClaimsFactory: func() any { return &claims{} },
		}),
		func(req *handler.Request, res *response.Writer, _ handler.Next) {
			c, ok := middleware.GetJWTClaims[*claims](req)
			require.True(t, ok)
			_ = res.Send(c.Role)
		},
	)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	rec := do(app, r)

	assert.Equal(t, "admin", body(t, rec))
}

func TestAuthRequiresService(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		middleware.Auth(middleware.JWTConfig{})
	})
}

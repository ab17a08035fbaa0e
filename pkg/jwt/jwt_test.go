package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/waypoint/pkg/jwt"
)

type customClaims struct {
	jwt.StandardClaims
	Role string `json:"role"`
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := jwt.New(nil)
	assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)

	_, err = jwt.NewFromString("")
	assert.ErrorIs(t, err, jwt.ErrMissingSigningKey)
}

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	service, err := jwt.NewFromString("secret")
	require.NoError(t, err)

	now := time.Now()
	token, err := service.Generate(customClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   "alice",
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Hour).Unix(),
		},
		Role: "admin",
	})
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	var claims customClaims
	require.NoError(t, service.Parse(token, &claims))
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	service, err := jwt.NewFromString("secret", jwt.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	other, err := jwt.NewFromString("other-secret")
	require.NoError(t, err)

	valid, err := service.Generate(jwt.StandardClaims{Subject: "alice"})
	require.NoError(t, err)
	expired, err := service.Generate(jwt.StandardClaims{ExpiresAt: now.Add(-time.Minute).Unix()})
	require.NoError(t, err)
	future, err := service.Generate(jwt.StandardClaims{NotBefore: now.Add(time.Minute).Unix()})
	require.NoError(t, err)
	foreign, err := other.Generate(jwt.StandardClaims{Subject: "alice"})
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	noneAlg := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." + parts[1] + "." + parts[2]

	tests := []struct {
		name  string
		token string
		err   error
	}{
		{"garbage", "not-a-token", jwt.ErrInvalidToken},
		{"bad base64", "!!.!!.!!", jwt.ErrInvalidToken},
		{"expired", expired, jwt.ErrExpiredToken},
		{"not yet valid", future, jwt.ErrInvalidToken},
		{"wrong key", foreign, jwt.ErrInvalidSignature},
		{"tampered payload", parts[0] + ".eyJzdWIiOiJib2IifQ." + parts[2], jwt.ErrInvalidSignature},
		{"alg none", noneAlg, jwt.ErrUnexpectedSigningMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var claims jwt.StandardClaims
			assert.ErrorIs(t, service.Parse(tt.token, &claims), tt.err)
		})
	}

	var claims jwt.StandardClaims
	require.NoError(t, service.Parse(valid, &claims))
	assert.ErrorIs(t, service.Parse(valid, nil), jwt.ErrMissingClaims)
}

func TestGenerateNilClaims(t *testing.T) {
	t.Parallel()

	service, err := jwt.NewFromString("secret")
	require.NoError(t, err)

	_, err = service.Generate(nil)
	assert.ErrorIs(t, err, jwt.ErrMissingClaims)
}

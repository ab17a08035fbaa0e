package todo

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/waypoint/pkg/jwt"
)

// ErrInvalidCredentials is returned when login fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

type credentials struct {
	Username string
	Password string
}

func credentialsFrom(body any) credentials {
	fields, _ := body.(map[string]any)
	username, _ := fields["username"].(string)
	password, _ := fields["password"].(string)
	return credentials{Username: username, Password: password}
}

// authenticator checks credentials and issues tokens.
type authenticator struct {
	tokens       *jwt.Service
	ttl          time.Duration
	username     string
	passwordHash []byte
	now          func() time.Time
}

// login returns a signed token for c. Without a configured password hash
// every caller is accepted.
func (a *authenticator) login(c credentials) (string, error) {
	subject := c.Username
	if len(a.passwordHash) > 0 {
		if subtle.ConstantTimeCompare([]byte(c.Username), []byte(a.username)) != 1 {
			return "", ErrInvalidCredentials
		}
		if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(c.Password)); err != nil {
			return "", ErrInvalidCredentials
		}
	}
	if subject == "" {
		subject = "anonymous"
	}

	now := a.now()
	claims := jwt.StandardClaims{
		ID:       uuid.NewString(),
		Subject:  subject,
		IssuedAt: now.Unix(),
	}
	if a.ttl > 0 {
		claims.ExpiresAt = now.Add(a.ttl).Unix()
	}
	return a.tokens.Generate(claims)
}

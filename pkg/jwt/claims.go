package jwt

import (
	"fmt"
	"time"
)

// StandardClaims holds the registered claims from RFC 7519.
type StandardClaims struct {
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// Valid checks exp and nbf against now. Zero values are not checked.
func (c StandardClaims) Valid(now time.Time) error {
	unix := now.Unix()
	if c.ExpiresAt != 0 && unix >= c.ExpiresAt {
		return ErrExpiredToken
	}
	if c.NotBefore != 0 && unix < c.NotBefore {
		return fmt.Errorf("%w: token not valid before %d", ErrInvalidToken, c.NotBefore)
	}
	return nil
}

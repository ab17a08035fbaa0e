package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const algorithm = "HS256"

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

var encoding = base64.RawURLEncoding

// Service signs and verifies tokens with one HMAC key.
type Service struct {
	key []byte
	now func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now for temporal claim checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Service with key.
func New(key []byte, opts ...Option) (*Service, error) {
	if len(key) == 0 {
		return nil, ErrMissingSigningKey
	}
	s := &Service{key: key, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewFromString creates a Service from a string key.
func NewFromString(key string, opts ...Option) (*Service, error) {
	return New([]byte(key), opts...)
}

// Generate encodes claims as the token payload and signs it.
func (s *Service) Generate(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	h, err := json.Marshal(header{Alg: algorithm, Typ: "JWT"})
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	unsigned := encoding.EncodeToString(h) + "." + encoding.EncodeToString(payload)
	return unsigned + "." + encoding.EncodeToString(s.sign(unsigned)), nil
}

// Parse verifies token and decodes its payload into claims. When claims
// embed StandardClaims, exp and nbf are validated.
func (s *Service) Parse(token string, claims any) error {
	if claims == nil {
		return ErrMissingClaims
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return fmt.Errorf("%w: expected 3 segments, got %d", ErrInvalidToken, len(parts))
	}

	rawHeader, err := encoding.DecodeString(parts[0])
	if err != nil {
		return fmt.Errorf("%w: header: %w", ErrInvalidToken, err)
	}
	var h header
	if err := json.Unmarshal(rawHeader, &h); err != nil {
		return fmt.Errorf("%w: header: %w", ErrInvalidToken, err)
	}
	if h.Alg != algorithm {
		return fmt.Errorf("%w: %q", ErrUnexpectedSigningMethod, h.Alg)
	}

	signature, err := encoding.DecodeString(parts[2])
	if err != nil {
		return fmt.Errorf("%w: signature: %w", ErrInvalidToken, err)
	}
	if !hmac.Equal(signature, s.sign(parts[0]+"."+parts[1])) {
		return ErrInvalidSignature
	}

	payload, err := encoding.DecodeString(parts[1])
	if err != nil {
		return fmt.Errorf("%w: payload: %w", ErrInvalidToken, err)
	}
	if err := json.Unmarshal(payload, claims); err != nil {
		return fmt.Errorf("%w: payload: %w", ErrInvalidToken, err)
	}

	var std StandardClaims
	if err := json.Unmarshal(payload, &std); err != nil {
		return fmt.Errorf("%w: payload: %w", ErrInvalidToken, err)
	}
	return std.Valid(s.now())
}

func (s *Service) sign(unsigned string) []byte {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(unsigned))
	return mac.Sum(nil)
}

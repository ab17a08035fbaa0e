// Package jwt generates and verifies HS256 JSON Web Tokens.
//
//	service, err := jwt.NewFromString(os.Getenv("JWT_SECRET"))
//
//	token, err := service.Generate(jwt.StandardClaims{
//		Subject:   "alice",
//		IssuedAt:  time.Now().Unix(),
//		ExpiresAt: time.Now().Add(time.Hour).Unix(),
//	})
//
//	var claims jwt.StandardClaims
//	if err := service.Parse(token, &claims); err != nil {
//		switch {
//		case errors.Is(err, jwt.ErrExpiredToken):
//		case errors.Is(err, jwt.ErrInvalidSignature):
//		}
//	}
//
// Custom claims embed StandardClaims. Parse checks the signature in
// constant time and then validates exp and nbf when they are set.
package jwt

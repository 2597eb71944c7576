package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that does not verify: wrong
// signature, unexpected signing method, malformed structure or a missing name
// claim. Callers treat all of these as a single unauthenticated outcome.
var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// TokenService issues and verifies HS256-signed identity tokens carrying a
// single claim, the username. Tokens have no expiry; they stay valid until the
// signing secret changes.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Sign produces a token asserting the given username. The result is
// deterministic for a fixed secret since no timestamp or nonce is included.
func (s *TokenService) Sign(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{Name: username})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature against the configured secret and returns the
// username the token was issued for.
func (s *TokenService) Verify(tokenString string) (string, error) {
	parsed := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if parsed.Name == "" {
		return "", ErrInvalidToken
	}
	return parsed.Name, nil
}

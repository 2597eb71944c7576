package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("my-super-secret-for-jwt")

	for _, username := range []string{"test", "alice", "Bob"} {
		token, err := svc.Sign(username)
		require.NoError(t, err)

		got, err := svc.Verify(token)
		require.NoError(t, err)
		require.Equal(t, username, got)
	}
}

func TestSignIsDeterministic(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret")

	first, err := svc.Sign("test")
	require.NoError(t, err)
	second, err := svc.Sign("test")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenService("right-secret").Sign("test")
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret").Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("secret")

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyRejectsMissingNameClaim(t *testing.T) {
	t.Parallel()

	secret := "secret"
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewTokenService(secret).Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/hireflow/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func TestHS256RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	signer, err := jwtx.NewHS256Signer(testSecret)
	require.NoError(t, err)

	verifier, err := jwtx.NewHS256Verifier(testSecret, jwtx.HS256Options{
		Issuer:   "https://id.example.com",
		Audience: []string{"authenticated"},
		Now:      func() time.Time { return now },
	})
	require.NoError(t, err)

	sign := func(c jwtx.Claims) string {
		tok, err := signer.Sign(c)
		require.NoError(t, err)
		return tok
	}
	base := func() jwtx.Claims {
		return jwtx.NewClaims("user-1", "ada@example.com", "https://id.example.com", []string{"authenticated"}, time.Hour, now)
	}

	t.Run("valid token", func(t *testing.T) {
		claims, err := verifier.Verify(sign(base()))
		require.NoError(t, err)
		require.Equal(t, "user-1", claims.Subject)
		require.Equal(t, "ada@example.com", claims.Email)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewHS256Signer("a-completely-different-secret-value-here")
		require.NoError(t, err)
		tok, err := other.Sign(base())
		require.NoError(t, err)

		_, err = verifier.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("expired", func(t *testing.T) {
		c := base()
		c.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
		_, err := verifier.Verify(sign(c))
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("no expiry", func(t *testing.T) {
		c := base()
		c.ExpiresAt = nil
		_, err := verifier.Verify(sign(c))
		require.ErrorIs(t, err, jwtx.ErrMissingExpiry)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := base()
		c.Issuer = "https://evil.example.com"
		_, err := verifier.Verify(sign(c))
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("wrong audience", func(t *testing.T) {
		c := base()
		c.Audience = jwt.ClaimStrings{"service_role"}
		_, err := verifier.Verify(sign(c))
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("missing subject", func(t *testing.T) {
		c := base()
		c.Subject = ""
		_, err := verifier.Verify(sign(c))
		require.ErrorIs(t, err, jwtx.ErrMissingSubject)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("alg none is rejected", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, base()).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Verify(tok)
		require.Error(t, err)
	})
}

func TestEmptySecretIsRejected(t *testing.T) {
	_, err := jwtx.NewHS256Verifier("", jwtx.HS256Options{})
	require.ErrorIs(t, err, jwtx.ErrNoSecret)

	_, err = jwtx.NewHS256Signer("")
	require.ErrorIs(t, err, jwtx.ErrNoSecret)
}

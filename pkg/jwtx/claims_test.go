package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/hireflow/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "https://id.example.com"}}

	require.NoError(t, c.ValidateIssuer("https://id.example.com"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("https://other.example.com"), jwtx.ErrIssuer)
}

func TestValidateAudience(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Audience: []string{"authenticated", "onboarding"}}}

	require.NoError(t, c.ValidateAudience([]string{"onboarding"}))
	require.NoError(t, c.ValidateAudience([]string{"nope", "authenticated"}))
	require.NoError(t, c.ValidateAudience(nil))
	require.ErrorIs(t, c.ValidateAudience([]string{"admin"}), jwtx.ErrAudience)
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	valid := jwtx.NewClaims("user-1", "a@example.com", "", nil, time.Hour, now)
	require.NoError(t, valid.ValidateExpiry(now, 0))

	require.ErrorIs(t, valid.ValidateExpiry(now.Add(2*time.Hour), 0), jwtx.ErrExpired)
	require.NoError(t, valid.ValidateExpiry(now.Add(time.Hour+30*time.Second), time.Minute))

	require.ErrorIs(t, valid.ValidateExpiry(now.Add(-time.Minute), 0), jwtx.ErrNotYetValid)
	require.NoError(t, valid.ValidateExpiry(now.Add(-time.Minute), 2*time.Minute))

	valid.ExpiresAt = nil
	require.ErrorIs(t, valid.ValidateExpiry(now, time.Minute), jwtx.ErrMissingExpiry)
}

func TestValidateSubject(t *testing.T) {
	c := &jwtx.Claims{}
	require.ErrorIs(t, c.ValidateSubject(), jwtx.ErrMissingSubject)

	c.Subject = "  "
	require.ErrorIs(t, c.ValidateSubject(), jwtx.ErrMissingSubject)

	c.Subject = "user-1"
	require.NoError(t, c.ValidateSubject())
}

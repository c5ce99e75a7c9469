package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a token and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrNoSecret       = errors.New("jwtx: signing secret not configured")
	ErrMalformed      = errors.New("jwtx: malformed token")
	ErrInvalidSig     = errors.New("jwtx: invalid signature")
	ErrMissingSubject = errors.New("jwtx: missing subject")
	ErrIssuer         = errors.New("jwtx: issuer mismatch")
	ErrAudience       = errors.New("jwtx: audience mismatch")
	ErrExpired        = errors.New("jwtx: token expired")
	ErrMissingExpiry  = errors.New("jwtx: token has no expiry")
	ErrNotYetValid    = errors.New("jwtx: token not yet valid")
)

// HS256Options are the expectations applied after the signature checks out.
type HS256Options struct {
	Issuer   string        // empty means any issuer
	Audience []string      // empty means any audience
	Leeway   time.Duration // clock skew tolerance for exp/nbf
	Now      func() time.Time
}

// HS256Verifier verifies tokens signed with a shared HMAC secret.
type HS256Verifier struct {
	secret []byte
	opts   HS256Options
	parser *jwt.Parser
}

// NewHS256Verifier returns a verifier for secret. An empty secret is an
// error so a misconfigured deployment cannot accept unsigned tokens.
func NewHS256Verifier(secret string, opts HS256Options) (*HS256Verifier, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &HS256Verifier{
		secret: []byte(secret),
		opts:   opts,
		// Time-based claims are checked by ValidateExpiry with our clock.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	var claims Claims

	_, err := v.parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidSig, err)
	default:
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := claims.ValidateSubject(); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateIssuer(v.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.opts.Audience); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(v.opts.Now(), v.opts.Leeway); err != nil {
		return Claims{}, err
	}
	return claims, nil
}

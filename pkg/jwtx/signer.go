package jwtx

import "github.com/golang-jwt/jwt/v5"

// HS256Signer mints tokens with a shared secret. Production tokens come from
// the identity provider; this exists for tests and local development.
type HS256Signer struct {
	secret []byte
}

func NewHS256Signer(secret string) (*HS256Signer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &HS256Signer{secret: []byte(secret)}, nil
}

func (s *HS256Signer) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

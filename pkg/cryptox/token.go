// Package cryptox holds the token primitives used for single-use invite links.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
)

// Token sizes in bytes of entropy, before encoding.
const (
	TokenSize128 = 16
	TokenSize256 = 32
)

// GenerateToken returns size bytes of crypto/rand output encoded as
// unpadded base64url, safe to embed in a query string.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// FingerprintToken returns the SHA-256 digest of token as unpadded base64url
// (43 chars). Only fingerprints are persisted; the raw token leaves the
// process exactly once, in the invite link.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// IssueToken generates a token and its fingerprint in one step.
func IssueToken(size int) (token, fingerprint string, err error) {
	token, err = GenerateToken(size)
	if err != nil {
		return "", "", err
	}
	return token, FingerprintToken(token), nil
}

// MatchesFingerprint reports whether token hashes to fingerprint, in
// constant time.
func MatchesFingerprint(token, fingerprint string) bool {
	got := FingerprintToken(token)
	return subtle.ConstantTimeCompare([]byte(got), []byte(fingerprint)) == 1
}

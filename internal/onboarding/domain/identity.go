package domain

import "strings"

// Identity is an authenticated user as asserted by the identity provider.
type Identity struct {
	UserID string
	Email  string
}

// IsZero reports whether the identity is missing, i.e. the caller is
// unauthenticated.
func (i Identity) IsZero() bool {
	return strings.TrimSpace(i.UserID) == ""
}

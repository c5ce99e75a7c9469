package service

import (
	"context"
	"sync"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
)

// Session holds the authenticated identity and its resolved role for one
// caller. A new Session is unauthenticated. Sessions are passed explicitly
// (in the request context at the HTTP edge), never shared globally.
type Session struct {
	mu       sync.RWMutex
	identity domain.Identity
	role     domain.Role
}

func NewSession() *Session {
	return &Session{}
}

// Establish records identity and resolves its role through roles. A zero
// identity leaves the session unauthenticated.
func (s *Session) Establish(ctx context.Context, identity domain.Identity, roles RoleResolver) {
	if identity.IsZero() {
		s.SignOut()
		return
	}

	role := domain.RoleNone
	if roles != nil {
		role = roles.ResolveRole(ctx, identity.UserID)
	}

	s.mu.Lock()
	s.identity = identity
	s.role = role
	s.mu.Unlock()
}

// SignOut clears identity and role together.
func (s *Session) SignOut() {
	s.mu.Lock()
	s.identity = domain.Identity{}
	s.role = domain.RoleNone
	s.mu.Unlock()
}

func (s *Session) Identity() domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

func (s *Session) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// Snapshot returns identity and role read under one lock.
func (s *Session) Snapshot() (domain.Identity, domain.Role) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity, s.role
}

func (s *Session) Authenticated() bool {
	return !s.Identity().IsZero()
}

// HasRole reports whether the session's resolved role is role.
func (s *Session) HasRole(role domain.Role) bool {
	identity, current := s.Snapshot()
	return !identity.IsZero() && current == role
}

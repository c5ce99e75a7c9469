package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/store"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"
)

// RoleResolver maps a user to their effective platform role.
type RoleResolver interface {
	ResolveRole(ctx context.Context, userID string) domain.Role
}

type RoleService struct {
	Store store.Store

	// Timeout bounds the role lookup. Defaults to DefaultRoleResolveTimeout.
	Timeout time.Duration
}

// ResolveRole returns the highest-privilege role assigned to userID. It
// never fails: a lookup error or timeout resolves to RoleNone so callers
// fail closed.
func (s *RoleService) ResolveRole(ctx context.Context, userID string) domain.Role {
	log := slogx.FromContext(ctx)

	if userID == "" {
		return domain.RoleNone
	}

	ctx, cancel := bounded(ctx, s.Timeout, DefaultRoleResolveTimeout)
	defer cancel()

	roles, err := s.Store.Roles().ListUserRoles(ctx, userID)
	if err == nil && ctx.Err() != nil {
		// Result arrived after the deadline; discard it.
		err = ctx.Err()
	}
	if err != nil {
		log.Warn("role lookup failed, resolving to no role",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
		return domain.RoleNone
	}

	return domain.ResolveRole(roles)
}

package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/stretchr/testify/require"
)

func TestResolveRole(t *testing.T) {
	tests := []struct {
		name     string
		assigned []domain.Role
		want     domain.Role
	}{
		{"empty", nil, domain.RoleNone},
		{"client only", []domain.Role{domain.RoleClientUser}, domain.RoleClientUser},
		{"admin only", []domain.Role{domain.RolePlatformAdmin}, domain.RolePlatformAdmin},
		{"admin first", []domain.Role{domain.RolePlatformAdmin, domain.RoleClientUser}, domain.RolePlatformAdmin},
		{"admin last", []domain.Role{domain.RoleClientUser, domain.RolePlatformAdmin}, domain.RolePlatformAdmin},
		{"duplicates", []domain.Role{domain.RoleClientUser, domain.RoleClientUser}, domain.RoleClientUser},
		{"unrecognised", []domain.Role{"recruiter", "superuser"}, domain.RoleNone},
		{"unrecognised with client", []domain.Role{"recruiter", domain.RoleClientUser}, domain.RoleClientUser},
		{"case sensitive", []domain.Role{"PLATFORM_ADMIN"}, domain.RoleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.ResolveRole(tt.assigned))
		})
	}
}

func TestInviteAcceptable(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	inv := domain.Invite{Status: domain.InviteStatusPending, ExpiresAt: now.Add(time.Hour)}

	require.True(t, inv.Acceptable(now))
	require.False(t, inv.Acceptable(now.Add(time.Hour)), "expiry instant is already expired")
	require.False(t, inv.Acceptable(now.Add(2*time.Hour)))

	inv.Status = domain.InviteStatusAccepted
	require.False(t, inv.Acceptable(now))
	require.True(t, inv.Status.Terminal())
	require.False(t, domain.InviteStatusPending.Terminal())
}

func TestIdentityIsZero(t *testing.T) {
	require.True(t, domain.Identity{}.IsZero())
	require.True(t, domain.Identity{UserID: " ", Email: "a@example.com"}.IsZero())
	require.False(t, domain.Identity{UserID: "user-1"}.IsZero())
}

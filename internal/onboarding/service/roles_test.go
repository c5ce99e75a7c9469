package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/stretchr/testify/require"
)

type stubRoles struct {
	roles []domain.Role
	err   error
	delay time.Duration
	block bool
}

func (s stubRoles) ListUserRoles(ctx context.Context, _ string) ([]domain.Role, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.delay > 0 {
		// Ignores ctx to simulate a store that answers late.
		time.Sleep(s.delay)
	}
	return s.roles, s.err
}

func (stubRoles) AssignRole(context.Context, string, domain.Role) error { return nil }

func TestRoleService_ResolveRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.Roles().AssignRole(ctx, "admin", domain.RoleClientUser))
	require.NoError(t, st.Roles().AssignRole(ctx, "admin", domain.RolePlatformAdmin))
	require.NoError(t, st.Roles().AssignRole(ctx, "client", domain.RoleClientUser))
	require.NoError(t, st.Roles().AssignRole(ctx, "stranger", domain.Role("recruiter")))

	svc := &RoleService{Store: st}

	tests := []struct {
		userID string
		want   domain.Role
	}{
		{"admin", domain.RolePlatformAdmin},
		{"client", domain.RoleClientUser},
		{"stranger", domain.RoleNone},
		{"nobody", domain.RoleNone},
		{"", domain.RoleNone},
	}
	for _, tt := range tests {
		t.Run(tt.userID, func(t *testing.T) {
			require.Equal(t, tt.want, svc.ResolveRole(ctx, tt.userID))
		})
	}
}

func TestRoleService_FailsClosed(t *testing.T) {
	st := newTestStore(t)

	t.Run("store error", func(t *testing.T) {
		svc := &RoleService{Store: &faultStore{Store: st, roles: stubRoles{err: errors.New("connection reset")}}}
		require.Equal(t, domain.RoleNone, svc.ResolveRole(context.Background(), "user-1"))
	})

	t.Run("timeout", func(t *testing.T) {
		svc := &RoleService{
			Store:   &faultStore{Store: st, roles: stubRoles{block: true}},
			Timeout: 20 * time.Millisecond,
		}

		start := time.Now()
		require.Equal(t, domain.RoleNone, svc.ResolveRole(context.Background(), "user-1"))
		require.Less(t, time.Since(start), time.Second)
	})

	t.Run("late answer is discarded", func(t *testing.T) {
		svc := &RoleService{
			Store: &faultStore{Store: st, roles: stubRoles{
				roles: []domain.Role{domain.RolePlatformAdmin},
				delay: 50 * time.Millisecond,
			}},
			Timeout: 10 * time.Millisecond,
		}
		require.Equal(t, domain.RoleNone, svc.ResolveRole(context.Background(), "user-1"))
	})

	t.Run("caller cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := &RoleService{Store: &faultStore{Store: st, roles: stubRoles{block: true}}}
		require.Equal(t, domain.RoleNone, svc.ResolveRole(ctx, "user-1"))
	})
}

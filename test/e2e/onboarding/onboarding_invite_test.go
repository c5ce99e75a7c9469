//go:build e2e

package onboarding_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/aussiebroadwan/hireflow/pkg/cryptox"
	"github.com/aussiebroadwan/hireflow/pkg/idx"
	"github.com/aussiebroadwan/hireflow/pkg/onboardingsdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies liveness and readiness against postgres.
func TestHealthEndpoints(t *testing.T) {
	env := setupService(t, nil)

	live, err := env.client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := env.client.Readyz(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
}

// TestInviteLifecycle walks the owner onboarding flow:
// 1. A platform admin mints an invite
// 2. The invitee validates it anonymously
// 3. The invitee signs in and accepts it
// 4. The invite is spent for everyone afterwards
func TestInviteLifecycle(t *testing.T) {
	env := setupService(t, nil)
	ctx := t.Context()
	env.seedOrganization(t, "org1", "pro")

	minted, err := env.as(t, adminUserID).MintInvite(ctx, onboardingsdk.MintInviteRequest{
		Email:          "founder@org1.example.com",
		OrganizationID: "org1",
		ExpiresInHours: 24,
	})
	require.NoError(t, err)
	require.NotEmpty(t, minted.Token)
	require.WithinDuration(t, time.Now().Add(24*time.Hour), minted.ExpiresAt, time.Minute)

	details, err := env.client.ValidateInvite(ctx, minted.Token)
	require.NoError(t, err)
	require.Equal(t, "founder@org1.example.com", details.Email)
	require.Equal(t, "org1", details.Organization.ID)
	require.Equal(t, "pro", details.Organization.Plan)

	// Accepting needs a signed-in user.
	_, err = env.client.AcceptInvite(ctx, minted.Token)
	requireAPIError(t, err, http.StatusUnauthorized, onboardingsdk.ErrorCodeUnauthenticated)

	orgID, err := env.as(t, ownerUserID).AcceptInvite(ctx, minted.Token)
	require.NoError(t, err)
	require.Equal(t, "org1", orgID)

	_, err = env.as(t, "someone-else").AcceptInvite(ctx, minted.Token)
	requireAPIError(t, err, http.StatusGone, onboardingsdk.ErrorCodeInviteAlreadyUsed)

	_, err = env.client.ValidateInvite(ctx, minted.Token)
	require.True(t, onboardingsdk.IsInviteGone(err))

	members, err := env.store.Members().ListMemberships(context.Background(), "org1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, ownerUserID, members[0].UserID)

	profile, err := env.store.Profiles().GetProfile(context.Background(), ownerUserID)
	require.NoError(t, err)
	require.Equal(t, "org1", profile.OrganizationID)
}

// TestExpiredInvite verifies an invite past its expiry is reported expired
// and recorded as such.
func TestExpiredInvite(t *testing.T) {
	env := setupService(t, nil)
	ctx := t.Context()
	env.seedOrganization(t, "org1", "pro")

	const token = "expired1"
	require.NoError(t, env.store.Invites().CreateInvite(ctx, domain.Invite{
		ID:             idx.New().String(),
		TokenHash:      cryptox.FingerprintToken(token),
		Email:          "late@org1.example.com",
		OrganizationID: "org1",
		Status:         domain.InviteStatusPending,
		ExpiresAt:      time.Now().Add(-time.Hour),
	}))

	_, err := env.client.ValidateInvite(ctx, token)
	requireAPIError(t, err, http.StatusGone, onboardingsdk.ErrorCodeInviteExpired)

	inv, err := env.store.Invites().GetInviteByTokenHash(ctx, cryptox.FingerprintToken(token))
	require.NoError(t, err)
	require.Equal(t, domain.InviteStatusExpired, inv.Status)

	_, err = env.as(t, ownerUserID).AcceptInvite(ctx, token)
	requireAPIError(t, err, http.StatusGone, onboardingsdk.ErrorCodeInviteExpired)
}

// TestMintRequiresPlatformAdmin verifies role enforcement on minting.
func TestMintRequiresPlatformAdmin(t *testing.T) {
	env := setupService(t, nil)
	ctx := t.Context()
	env.seedOrganization(t, "org1", "starter")
	require.NoError(t, env.store.Roles().AssignRole(ctx, "client-1", domain.RoleClientUser))

	req := onboardingsdk.MintInviteRequest{Email: "x@org1.example.com", OrganizationID: "org1"}

	_, err := env.client.MintInvite(ctx, req)
	requireAPIError(t, err, http.StatusUnauthorized, onboardingsdk.ErrorCodeUnauthenticated)

	_, err = env.as(t, "client-1").MintInvite(ctx, req)
	requireAPIError(t, err, http.StatusForbidden, onboardingsdk.ErrorCodeForbidden)

	me, err := env.as(t, "client-1").Me(ctx)
	require.NoError(t, err)
	require.Equal(t, string(domain.RoleClientUser), me.Role)
}

// TestInviteEmailSkippedWithoutProvider verifies email is a successful
// no-op while no provider key is configured.
func TestInviteEmailSkippedWithoutProvider(t *testing.T) {
	env := setupService(t, nil)

	resp, err := env.client.SendInviteEmail(t.Context(), onboardingsdk.InviteEmailRequest{
		Email:            "founder@org1.example.com",
		OrganizationName: "Org org1",
		Token:            "abc123",
		BaseURL:          "https://app.hireflow.dev",
	})
	require.NoError(t, err)
	require.True(t, resp.Skipped)
	require.False(t, resp.Sent)
}

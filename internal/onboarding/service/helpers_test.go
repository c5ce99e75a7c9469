package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/store"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/store/drivers/sqlite"
	"github.com/aussiebroadwan/hireflow/pkg/cryptox"
	"github.com/aussiebroadwan/hireflow/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedOrganization(t *testing.T, s store.Store, id, plan string) domain.Organization {
	t.Helper()

	org := domain.Organization{
		ID:       id,
		Name:     "Acme",
		Plan:     plan,
		Domain:   "acme.test",
		Industry: "Software",
		Size:     "11-50",
		Status:   "onboarding",
	}
	require.NoError(t, s.Organizations().CreateOrganization(context.Background(), org))
	return org
}

func seedInvite(t *testing.T, s store.Store, token, orgID string, expiresAt time.Time) domain.Invite {
	t.Helper()

	inv := domain.Invite{
		ID:             idx.New().String(),
		TokenHash:      cryptox.FingerprintToken(token),
		Email:          "owner@acme.test",
		OrganizationID: orgID,
		Status:         domain.InviteStatusPending,
		ExpiresAt:      expiresAt,
	}
	require.NoError(t, s.Invites().CreateInvite(context.Background(), inv))
	return inv
}

// faultStore wraps a real store and swaps individual repositories, inside
// and outside transactions.
type faultStore struct {
	store.Store

	roles    store.Roles
	profiles store.Profiles
	// invites wraps the transaction's invite repository when set.
	invites func(store.Invites) store.Invites
}

func (f *faultStore) Roles() store.Roles {
	if f.roles != nil {
		return f.roles
	}
	return f.Store.Roles()
}

func (f *faultStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return f.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(&faultTx{baseTx: tx, profiles: f.profiles, invites: f.invites})
	})
}

// baseTx is embedded under an alias so the field does not shadow the
// promoted Tx method.
type baseTx = store.Tx

type faultTx struct {
	baseTx
	profiles store.Profiles
	invites  func(store.Invites) store.Invites
}

func (f *faultTx) Invites() store.Invites {
	if f.invites != nil {
		return f.invites(f.baseTx.Invites())
	}
	return f.baseTx.Invites()
}

func (f *faultTx) Profiles() store.Profiles {
	if f.profiles != nil {
		return f.profiles
	}
	return f.baseTx.Profiles()
}

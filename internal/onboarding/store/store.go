package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict means a guarded write matched no row because the row was
	// not in the expected state.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Repositories are reached through accessors so a Tx can
// hand out the same repositories bound to its transaction.
type Store interface {
	Roles() Roles
	Organizations() Organizations
	Features() Features
	Invites() Invites
	Members() Members
	Profiles() Profiles

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing if fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error
}

// Tx is a Store bound to one transaction.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Roles interface {
	// ListUserRoles returns every role label assigned to userID, including
	// labels the service does not recognise. No rows is not an error.
	ListUserRoles(ctx context.Context, userID string) ([]domain.Role, error)

	// AssignRole adds role to userID. Assigning an existing role is a no-op.
	AssignRole(ctx context.Context, userID string, role domain.Role) error
}

type Organizations interface {
	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)

	// CreateOrganization inserts org. Returns ErrAlreadyExists on id clash.
	CreateOrganization(ctx context.Context, org domain.Organization) error
}

type Features interface {
	// ListPlatformFeatures returns the full flag registry.
	ListPlatformFeatures(ctx context.Context) ([]domain.PlatformFeature, error)

	// ListPlanFeatures returns the defaults for one plan tier.
	ListPlanFeatures(ctx context.Context, plan string) ([]domain.PlanFeature, error)

	// ListOrganizationOverrides returns the overrides for one organization.
	ListOrganizationOverrides(ctx context.Context, orgID string) ([]domain.FeatureOverride, error)

	UpsertPlatformFeature(ctx context.Context, f domain.PlatformFeature) error
	UpsertPlanFeature(ctx context.Context, f domain.PlanFeature) error
	UpsertOrganizationOverride(ctx context.Context, o domain.FeatureOverride) error
}

type Invites interface {
	// CreateInvite inserts a new invite. Returns ErrAlreadyExists when the
	// token fingerprint is already in use.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	GetInviteByTokenHash(ctx context.Context, tokenHash string) (domain.Invite, error)

	// MarkInviteExpired flips a pending invite to expired. It reports whether
	// this call performed the transition; an invite that is no longer
	// pending is left alone and reports false.
	MarkInviteExpired(ctx context.Context, id string) (bool, error)

	// ClaimInvite flips a pending invite to accepted by userID. Returns
	// ErrConflict if the invite is no longer pending.
	ClaimInvite(ctx context.Context, id, userID string) error

	// ExpirePendingInvites flips every pending invite whose expiry is at or
	// before cutoff to expired and returns how many changed.
	ExpirePendingInvites(ctx context.Context, cutoff time.Time) (int64, error)
}

type Members interface {
	// CreateMembership inserts m. Returns ErrAlreadyExists if the user is
	// already a member of the organization.
	CreateMembership(ctx context.Context, m domain.Membership) error

	GetMembership(ctx context.Context, orgID, userID string) (domain.Membership, error)

	ListMemberships(ctx context.Context, orgID string) ([]domain.Membership, error)
}

type Profiles interface {
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)

	// SetProfileOrganization creates or updates the profile for userID.
	SetProfileOrganization(ctx context.Context, userID, orgID string) error
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/store"
	"github.com/aussiebroadwan/hireflow/pkg/cryptox"
	"github.com/aussiebroadwan/hireflow/pkg/idx"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"
)

var (
	ErrInvalidInviteRequest = errors.New("invalid invite request")
	ErrInviteNotFound       = errors.New("invite not found")
	ErrInviteAlreadyUsed    = errors.New("invite has already been used")
	ErrInviteExpired        = errors.New("invite has expired")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrOrganizationNotFound = errors.New("organization not found")
)

// DefaultInviteTTL applies when MintInvite is given no lifetime.
const DefaultInviteTTL = 7 * 24 * time.Hour

// InviteStateError reports an invite that has already reached a terminal
// status. It matches ErrInviteAlreadyUsed or ErrInviteExpired with
// errors.Is depending on that status.
type InviteStateError struct {
	Status domain.InviteStatus
}

func (e *InviteStateError) Error() string {
	if e.Status == domain.InviteStatusExpired {
		return ErrInviteExpired.Error()
	}
	return fmt.Sprintf("%s (status %s)", ErrInviteAlreadyUsed, e.Status)
}

func (e *InviteStateError) Is(target error) bool {
	switch target {
	case ErrInviteExpired:
		return e.Status == domain.InviteStatusExpired
	case ErrInviteAlreadyUsed:
		return e.Status != domain.InviteStatusExpired
	}
	return false
}

// InviteDetails is what a valid invite reveals to its holder.
type InviteDetails struct {
	InviteID     string
	Email        string
	Organization domain.Organization
	Features     []domain.FeatureOverride
	ExpiresAt    time.Time
}

type InviteService struct {
	Store store.Store
	Now   func() time.Time

	// Timeout bounds each store call, and the accept transaction as a
	// whole. Defaults to DefaultStoreTimeout.
	Timeout time.Duration
}

func (s *InviteService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// lookup resolves token to a pending, unexpired invite. An expired pending
// invite is materialised as expired before ErrInviteExpired is returned.
func (s *InviteService) lookup(ctx context.Context, token string) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(token) == "" {
		return domain.Invite{}, ErrInvalidInviteRequest
	}

	qctx, cancel := bounded(ctx, s.Timeout, DefaultStoreTimeout)
	invite, err := s.Store.Invites().GetInviteByTokenHash(qctx, cryptox.FingerprintToken(token))
	cancel()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invite lookup with unknown token")
			return domain.Invite{}, ErrInviteNotFound
		}
		log.Error("failed to fetch invite", slog.Any("error", err))
		return domain.Invite{}, unavailable(err)
	}

	if invite.Status != domain.InviteStatusPending {
		log.Warn("invite is no longer pending",
			slog.String("invite_id", invite.ID),
			slog.String("status", string(invite.Status)),
		)
		return domain.Invite{}, &InviteStateError{Status: invite.Status}
	}

	if invite.ExpiredAt(s.now()) {
		qctx, cancel := bounded(ctx, s.Timeout, DefaultStoreTimeout)
		flipped, err := s.Store.Invites().MarkInviteExpired(qctx, invite.ID)
		cancel()
		if err != nil {
			log.Error("failed to mark invite expired",
				slog.String("invite_id", invite.ID),
				slog.Any("error", err),
			)
			return domain.Invite{}, unavailable(err)
		}
		log.Info("invite expired",
			slog.String("invite_id", invite.ID),
			slog.Bool("materialised", flipped),
		)
		return domain.Invite{}, &InviteStateError{Status: domain.InviteStatusExpired}
	}

	return invite, nil
}

// ValidateInvite checks token and returns the invite's organization
// snapshot, its feature overrides and the invited email.
func (s *InviteService) ValidateInvite(ctx context.Context, token string) (InviteDetails, error) {
	log := slogx.FromContext(ctx)

	invite, err := s.lookup(ctx, token)
	if err != nil {
		return InviteDetails{}, err
	}

	qctx, cancel := bounded(ctx, s.Timeout, DefaultStoreTimeout)
	defer cancel()

	org, err := s.Store.Organizations().GetOrganizationByID(qctx, invite.OrganizationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Error("invite references missing organization",
				slog.String("invite_id", invite.ID),
				slog.String("organization_id", invite.OrganizationID),
			)
			return InviteDetails{}, ErrOrganizationNotFound
		}
		return InviteDetails{}, unavailable(err)
	}

	overrides, err := s.Store.Features().ListOrganizationOverrides(qctx, org.ID)
	if err != nil {
		log.Error("failed to list organization features",
			slog.String("organization_id", org.ID),
			slog.Any("error", err),
		)
		return InviteDetails{}, unavailable(err)
	}

	return InviteDetails{
		InviteID:     invite.ID,
		Email:        invite.Email,
		Organization: org,
		Features:     overrides,
		ExpiresAt:    invite.ExpiresAt,
	}, nil
}

// AcceptInvite redeems token for identity and returns the organization it
// joined. The claim, the owner membership and the profile update commit
// together or not at all.
func (s *InviteService) AcceptInvite(ctx context.Context, token string, identity domain.Identity) (string, error) {
	log := slogx.FromContext(ctx)

	if identity.IsZero() {
		return "", ErrUnauthenticated
	}

	invite, err := s.lookup(ctx, token)
	if err != nil {
		return "", err
	}

	tctx, cancel := bounded(ctx, s.Timeout, DefaultStoreTimeout)
	defer cancel()

	err = s.Store.WithTx(tctx, func(tx store.Tx) error {
		// Claim first so a concurrent accept loses before any membership
		// is written.
		if err := tx.Invites().ClaimInvite(tctx, invite.ID, identity.UserID); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return &InviteStateError{Status: claimedStatus(tctx, tx, invite)}
			}
			return fmt.Errorf("claim invite: %w", err)
		}

		_, err := tx.Members().GetMembership(tctx, invite.OrganizationID, identity.UserID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			membership := domain.Membership{
				ID:             idx.New().String(),
				OrganizationID: invite.OrganizationID,
				UserID:         identity.UserID,
				Role:           domain.MemberRoleOwner,
			}
			if err := tx.Members().CreateMembership(tctx, membership); err != nil {
				return fmt.Errorf("create membership: %w", err)
			}
		case err != nil:
			return fmt.Errorf("check membership: %w", err)
		default:
			log.Info("user already a member, keeping existing membership",
				slog.String("organization_id", invite.OrganizationID),
				slog.String("user_id", identity.UserID),
			)
		}

		if err := tx.Profiles().SetProfileOrganization(tctx, identity.UserID, invite.OrganizationID); err != nil {
			return fmt.Errorf("set profile organization: %w", err)
		}
		return nil
	})
	if err != nil {
		var stateErr *InviteStateError
		if errors.As(err, &stateErr) {
			log.Warn("invite claimed concurrently", slog.String("invite_id", invite.ID))
			return "", err
		}
		log.Error("invite acceptance rolled back",
			slog.String("invite_id", invite.ID),
			slog.String("user_id", identity.UserID),
			slog.Any("error", err),
		)
		return "", unavailable(err)
	}

	log.Info("invite accepted",
		slog.String("invite_id", invite.ID),
		slog.String("organization_id", invite.OrganizationID),
		slog.String("user_id", identity.UserID),
	)
	return invite.OrganizationID, nil
}

// claimedStatus reports the terminal status that beat a claim. An invite the
// store cannot re-read, or still sees as pending, is reported as accepted.
func claimedStatus(ctx context.Context, tx store.Tx, invite domain.Invite) domain.InviteStatus {
	current, err := tx.Invites().GetInviteByTokenHash(ctx, invite.TokenHash)
	if err != nil || current.Status == domain.InviteStatusPending {
		return domain.InviteStatusAccepted
	}
	return current.Status
}

// MintInvite creates a pending invite for email to set up orgID. It returns
// the raw token, which is never stored, alongside the persisted invite.
func (s *InviteService) MintInvite(
	ctx context.Context,
	email string,
	orgID string,
	ttl time.Duration,
	createdBy string,
) (string, domain.Invite, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") || orgID == "" || ttl < 0 {
		return "", domain.Invite{}, ErrInvalidInviteRequest
	}
	if ttl == 0 {
		ttl = DefaultInviteTTL
	}

	qctx, cancel := bounded(ctx, s.Timeout, DefaultStoreTimeout)
	defer cancel()

	if _, err := s.Store.Organizations().GetOrganizationByID(qctx, orgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("attempted to mint invite for unknown organization",
				slog.String("organization_id", orgID),
			)
			return "", domain.Invite{}, ErrOrganizationNotFound
		}
		return "", domain.Invite{}, unavailable(err)
	}

	token, fingerprint, err := cryptox.IssueToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invite token", slog.Any("error", err))
		return "", domain.Invite{}, err
	}

	now := s.now()
	invite := domain.Invite{
		ID:             idx.NewAt(now).String(),
		TokenHash:      fingerprint,
		Email:          email,
		OrganizationID: orgID,
		Status:         domain.InviteStatusPending,
		ExpiresAt:      now.Add(ttl).UTC(),
		CreatedBy:      createdBy,
	}
	if err := s.Store.Invites().CreateInvite(qctx, invite); err != nil {
		log.Error("failed to create invite",
			slog.String("invite_id", invite.ID),
			slog.Any("error", err),
		)
		return "", domain.Invite{}, unavailable(err)
	}

	log.Info("invite minted",
		slog.String("invite_id", invite.ID),
		slog.String("organization_id", orgID),
		slog.String("created_by", createdBy),
		slog.Time("expires_at", invite.ExpiresAt),
	)
	return token, invite, nil
}

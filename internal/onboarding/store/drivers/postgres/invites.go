package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/store"
)

type invitesRepo struct{ db dbtx }

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = now()
	}
	if inv.Status == "" {
		inv.Status = domain.InviteStatusPending
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO onboarding_invites
			(id, token_hash, email, organization_id, status, expires_at, accepted_by, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
	`, inv.ID, inv.TokenHash, inv.Email, inv.OrganizationID, string(inv.Status),
		inv.ExpiresAt.UTC(), nullable(inv.AcceptedBy), nullable(inv.CreatedBy), inv.CreatedAt.UTC())
	return mapPostgresError(err)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, tokenHash string) (domain.Invite, error) {
	var (
		inv        domain.Invite
		status     string
		acceptedBy *string
		createdBy  *string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, token_hash, email, organization_id, status, expires_at, accepted_by, created_by, created_at, updated_at
		FROM onboarding_invites
		WHERE token_hash = $1
	`, tokenHash).Scan(&inv.ID, &inv.TokenHash, &inv.Email, &inv.OrganizationID, &status, &inv.ExpiresAt,
		&acceptedBy, &createdBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invite{}, mapPostgresError(err)
	}

	inv.Status = domain.InviteStatus(status)
	inv.AcceptedBy = deref(acceptedBy)
	inv.CreatedBy = deref(createdBy)
	return inv, nil
}

func (r *invitesRepo) MarkInviteExpired(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE onboarding_invites SET status = 'expired', updated_at = $1
		WHERE id = $2 AND status = 'pending'
	`, now(), id)
	if err != nil {
		return false, mapPostgresError(err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *invitesRepo) ClaimInvite(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE onboarding_invites SET status = 'accepted', accepted_by = $1, updated_at = $2
		WHERE id = $3 AND status = 'pending'
	`, userID, now(), id)
	if err != nil {
		return mapPostgresError(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrConflict
	}
	return nil
}

func (r *invitesRepo) ExpirePendingInvites(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE onboarding_invites SET status = 'expired', updated_at = $1
		WHERE status = 'pending' AND expires_at <= $2
	`, now(), cutoff)
	if err != nil {
		return 0, mapPostgresError(err)
	}
	return tag.RowsAffected(), nil
}

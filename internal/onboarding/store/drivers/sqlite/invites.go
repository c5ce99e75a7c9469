package sqlite

import (
	"context"
	"database/sql"
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

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO onboarding_invites
		   (id, token_hash, email, organization_id, status, expires_at, accepted_by, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.TokenHash, inv.Email, inv.OrganizationID, string(inv.Status),
		inv.ExpiresAt.UTC(), nullString(inv.AcceptedBy), nullString(inv.CreatedBy),
		inv.CreatedAt.UTC(), inv.CreatedAt.UTC(),
	)
	return mapError(err)
}

func (r *invitesRepo) GetInviteByTokenHash(ctx context.Context, tokenHash string) (domain.Invite, error) {
	var (
		inv        domain.Invite
		status     string
		acceptedBy sql.NullString
		createdBy  sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, token_hash, email, organization_id, status, expires_at, accepted_by, created_by, created_at, updated_at
		 FROM onboarding_invites WHERE token_hash = ?`, tokenHash,
	).Scan(&inv.ID, &inv.TokenHash, &inv.Email, &inv.OrganizationID, &status, &inv.ExpiresAt,
		&acceptedBy, &createdBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invite{}, mapError(err)
	}

	inv.Status = domain.InviteStatus(status)
	inv.AcceptedBy = acceptedBy.String
	inv.CreatedBy = createdBy.String
	return inv, nil
}

func (r *invitesRepo) MarkInviteExpired(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE onboarding_invites SET status = 'expired', updated_at = ?
		 WHERE id = ? AND status = 'pending'`,
		now(), id,
	)
	if err != nil {
		return false, mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *invitesRepo) ClaimInvite(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE onboarding_invites SET status = 'accepted', accepted_by = ?, updated_at = ?
		 WHERE id = ? AND status = 'pending'`,
		userID, now(), id,
	)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrConflict
	}
	return nil
}

func (r *invitesRepo) ExpirePendingInvites(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE onboarding_invites SET status = 'expired', updated_at = ?
		 WHERE status = 'pending' AND expires_at <= ?`,
		now(), cutoff.UTC(),
	)
	if err != nil {
		return 0, mapError(err)
	}
	return res.RowsAffected()
}

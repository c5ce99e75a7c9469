package postgres

import (
	"context"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/jackc/pgx/v5"
)

type membersRepo struct{ db dbtx }

func (r *membersRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO organization_members (id, organization_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, m.ID, m.OrganizationID, m.UserID, m.Role, m.CreatedAt.UTC())
	return mapPostgresError(err)
}

func (r *membersRepo) GetMembership(ctx context.Context, orgID, userID string) (domain.Membership, error) {
	var m domain.Membership
	err := r.db.QueryRow(ctx, `
		SELECT id, organization_id, user_id, role, created_at
		FROM organization_members
		WHERE organization_id = $1 AND user_id = $2
	`, orgID, userID).Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt)
	if err != nil {
		return domain.Membership{}, mapPostgresError(err)
	}
	return m, nil
}

func (r *membersRepo) ListMemberships(ctx context.Context, orgID string) ([]domain.Membership, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, organization_id, user_id, role, created_at
		FROM organization_members
		WHERE organization_id = $1
		ORDER BY id
	`, orgID)
	if err != nil {
		return nil, mapPostgresError(err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Membership, error) {
		var m domain.Membership
		err := row.Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt)
		return m, err
	})
	return out, mapPostgresError(err)
}

package sqlite

import (
	"context"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
)

type membersRepo struct{ db dbtx }

func (r *membersRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO organization_members (id, organization_id, user_id, role, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.OrganizationID, m.UserID, m.Role, m.CreatedAt.UTC(),
	)
	return mapError(err)
}

func (r *membersRepo) GetMembership(ctx context.Context, orgID, userID string) (domain.Membership, error) {
	var m domain.Membership
	err := r.db.QueryRowContext(ctx,
		`SELECT id, organization_id, user_id, role, created_at FROM organization_members
		 WHERE organization_id = ? AND user_id = ?`, orgID, userID,
	).Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt)
	if err != nil {
		return domain.Membership{}, mapError(err)
	}
	return m, nil
}

func (r *membersRepo) ListMemberships(ctx context.Context, orgID string) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, organization_id, user_id, role, created_at FROM organization_members
		 WHERE organization_id = ? ORDER BY id`, orgID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []domain.Membership
	for rows.Next() {
		var m domain.Membership
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

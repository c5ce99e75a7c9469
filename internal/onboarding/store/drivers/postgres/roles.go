package postgres

import (
	"context"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/jackc/pgx/v5"
)

type rolesRepo struct{ db dbtx }

func (r *rolesRepo) ListUserRoles(ctx context.Context, userID string) ([]domain.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT role FROM user_roles WHERE user_id = $1`, userID)
	if err != nil {
		return nil, mapPostgresError(err)
	}

	labels, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapPostgresError(err)
	}

	roles := make([]domain.Role, 0, len(labels))
	for _, l := range labels {
		roles = append(roles, domain.Role(l))
	}
	return roles, nil
}

func (r *rolesRepo) AssignRole(ctx context.Context, userID string, role domain.Role) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_roles (user_id, role, created_at) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, role) DO NOTHING
	`, userID, string(role), now())
	return mapPostgresError(err)
}

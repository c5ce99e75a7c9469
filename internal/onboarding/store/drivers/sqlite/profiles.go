package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
)

type profilesRepo struct{ db dbtx }

func (r *profilesRepo) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	var (
		p     domain.Profile
		orgID sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, organization_id, updated_at FROM profiles WHERE id = ?`, userID,
	).Scan(&p.ID, &orgID, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, mapError(err)
	}
	p.OrganizationID = orgID.String
	return p, nil
}

func (r *profilesRepo) SetProfileOrganization(ctx context.Context, userID, orgID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (id, organization_id, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET organization_id = excluded.organization_id, updated_at = excluded.updated_at`,
		userID, nullString(orgID), now(),
	)
	return mapError(err)
}

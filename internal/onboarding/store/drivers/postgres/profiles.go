package postgres

import (
	"context"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
)

type profilesRepo struct{ db dbtx }

func (r *profilesRepo) GetProfile(ctx context.Context, userID string) (domain.Profile, error) {
	var (
		p     domain.Profile
		orgID *string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, organization_id, updated_at FROM profiles WHERE id = $1`, userID,
	).Scan(&p.ID, &orgID, &p.UpdatedAt)
	if err != nil {
		return domain.Profile{}, mapPostgresError(err)
	}
	p.OrganizationID = deref(orgID)
	return p, nil
}

func (r *profilesRepo) SetProfileOrganization(ctx context.Context, userID, orgID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO profiles (id, organization_id, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET organization_id = EXCLUDED.organization_id, updated_at = EXCLUDED.updated_at
	`, userID, nullable(orgID), now())
	return mapPostgresError(err)
}

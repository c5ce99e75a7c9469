package sqlite

import (
	"context"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
)

type organizationsRepo struct{ db dbtx }

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error) {
	var org domain.Organization
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, plan, domain, industry, size, status, created_at, updated_at
		 FROM organizations WHERE id = ?`, id,
	).Scan(&org.ID, &org.Name, &org.Plan, &org.Domain, &org.Industry, &org.Size, &org.Status, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		return domain.Organization{}, mapError(err)
	}
	return org, nil
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, org domain.Organization) error {
	ts := now()
	if org.Status == "" {
		org.Status = "active"
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO organizations (id, name, plan, domain, industry, size, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		org.ID, org.Name, org.Plan, org.Domain, org.Industry, org.Size, org.Status, ts, ts,
	)
	return mapError(err)
}

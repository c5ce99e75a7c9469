package postgres

import (
	"context"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/jackc/pgx/v5"
)

type featuresRepo struct{ db dbtx }

func (r *featuresRepo) ListPlatformFeatures(ctx context.Context) ([]domain.PlatformFeature, error) {
	rows, err := r.db.Query(ctx,
		`SELECT feature_name, description, enabled FROM platform_features ORDER BY feature_name`)
	if err != nil {
		return nil, mapPostgresError(err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlatformFeature, error) {
		var f domain.PlatformFeature
		err := row.Scan(&f.Name, &f.Description, &f.Enabled)
		return f, err
	})
	return out, mapPostgresError(err)
}

func (r *featuresRepo) ListPlanFeatures(ctx context.Context, plan string) ([]domain.PlanFeature, error) {
	rows, err := r.db.Query(ctx,
		`SELECT plan, feature_name, enabled FROM plan_features WHERE plan = $1 ORDER BY feature_name`, plan)
	if err != nil {
		return nil, mapPostgresError(err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PlanFeature, error) {
		var f domain.PlanFeature
		err := row.Scan(&f.Plan, &f.FeatureName, &f.Enabled)
		return f, err
	})
	return out, mapPostgresError(err)
}

func (r *featuresRepo) ListOrganizationOverrides(ctx context.Context, orgID string) ([]domain.FeatureOverride, error) {
	rows, err := r.db.Query(ctx, `
		SELECT organization_id, feature_name, enabled
		FROM organization_feature_overrides
		WHERE organization_id = $1
		ORDER BY feature_name
	`, orgID)
	if err != nil {
		return nil, mapPostgresError(err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FeatureOverride, error) {
		var o domain.FeatureOverride
		err := row.Scan(&o.OrganizationID, &o.FeatureName, &o.Enabled)
		return o, err
	})
	return out, mapPostgresError(err)
}

func (r *featuresRepo) UpsertPlatformFeature(ctx context.Context, f domain.PlatformFeature) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO platform_features (feature_name, description, enabled) VALUES ($1, $2, $3)
		ON CONFLICT (feature_name) DO UPDATE SET description = EXCLUDED.description, enabled = EXCLUDED.enabled
	`, f.Name, f.Description, f.Enabled)
	return mapPostgresError(err)
}

func (r *featuresRepo) UpsertPlanFeature(ctx context.Context, f domain.PlanFeature) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO plan_features (plan, feature_name, enabled) VALUES ($1, $2, $3)
		ON CONFLICT (plan, feature_name) DO UPDATE SET enabled = EXCLUDED.enabled
	`, f.Plan, f.FeatureName, f.Enabled)
	return mapPostgresError(err)
}

func (r *featuresRepo) UpsertOrganizationOverride(ctx context.Context, o domain.FeatureOverride) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO organization_feature_overrides (organization_id, feature_name, enabled) VALUES ($1, $2, $3)
		ON CONFLICT (organization_id, feature_name) DO UPDATE SET enabled = EXCLUDED.enabled
	`, o.OrganizationID, o.FeatureName, o.Enabled)
	return mapPostgresError(err)
}

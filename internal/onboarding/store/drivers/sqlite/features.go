package sqlite

import (
	"context"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
)

type featuresRepo struct{ db dbtx }

func (r *featuresRepo) ListPlatformFeatures(ctx context.Context) ([]domain.PlatformFeature, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT feature_name, description, enabled FROM platform_features ORDER BY feature_name`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []domain.PlatformFeature
	for rows.Next() {
		var f domain.PlatformFeature
		if err := rows.Scan(&f.Name, &f.Description, &f.Enabled); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *featuresRepo) ListPlanFeatures(ctx context.Context, plan string) ([]domain.PlanFeature, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT plan, feature_name, enabled FROM plan_features WHERE plan = ? ORDER BY feature_name`, plan)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []domain.PlanFeature
	for rows.Next() {
		var f domain.PlanFeature
		if err := rows.Scan(&f.Plan, &f.FeatureName, &f.Enabled); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *featuresRepo) ListOrganizationOverrides(ctx context.Context, orgID string) ([]domain.FeatureOverride, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT organization_id, feature_name, enabled FROM organization_feature_overrides
		 WHERE organization_id = ? ORDER BY feature_name`, orgID)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var out []domain.FeatureOverride
	for rows.Next() {
		var o domain.FeatureOverride
		if err := rows.Scan(&o.OrganizationID, &o.FeatureName, &o.Enabled); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *featuresRepo) UpsertPlatformFeature(ctx context.Context, f domain.PlatformFeature) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO platform_features (feature_name, description, enabled) VALUES (?, ?, ?)
		 ON CONFLICT (feature_name) DO UPDATE SET description = excluded.description, enabled = excluded.enabled`,
		f.Name, f.Description, f.Enabled,
	)
	return mapError(err)
}

func (r *featuresRepo) UpsertPlanFeature(ctx context.Context, f domain.PlanFeature) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO plan_features (plan, feature_name, enabled) VALUES (?, ?, ?)
		 ON CONFLICT (plan, feature_name) DO UPDATE SET enabled = excluded.enabled`,
		f.Plan, f.FeatureName, f.Enabled,
	)
	return mapError(err)
}

func (r *featuresRepo) UpsertOrganizationOverride(ctx context.Context, o domain.FeatureOverride) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO organization_feature_overrides (organization_id, feature_name, enabled) VALUES (?, ?, ?)
		 ON CONFLICT (organization_id, feature_name) DO UPDATE SET enabled = excluded.enabled`,
		o.OrganizationID, o.FeatureName, o.Enabled,
	)
	return mapError(err)
}

package domain

// PlatformFeature is a registered flag key and its global default. The set
// of platform features defines which keys exist.
type PlatformFeature struct {
	Name        string
	Description string
	Enabled     bool
}

// PlanFeature is the default for a key on one subscription tier.
type PlanFeature struct {
	Plan        string
	FeatureName string
	Enabled     bool
}

// FeatureOverride supersedes plan and platform defaults for one
// organization.
type FeatureOverride struct {
	OrganizationID string
	FeatureName    string
	Enabled        bool
}

package onboardingsdk

import "time"

// ============================================================================
// Invites
// ============================================================================

// InviteTokenRequest is the body of the validate and accept endpoints.
type InviteTokenRequest struct {
	Token string `json:"token"`
}

// Organization is the organization snapshot revealed by a valid invite.
type Organization struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Plan     string `json:"plan"`
	Domain   string `json:"domain,omitempty"`
	Industry string `json:"industry,omitempty"`
	Size     string `json:"size,omitempty"`
}

// FeatureOverride is an organization-specific flag value.
type FeatureOverride struct {
	FeatureName string `json:"feature_name"`
	Enabled     bool   `json:"enabled"`
}

type ValidateInviteResponse struct {
	Email        string            `json:"email"`
	Organization Organization      `json:"organization"`
	Features     []FeatureOverride `json:"features"`
	ExpiresAt    time.Time         `json:"expires_at"`
}

type AcceptInviteResponse struct {
	OrganizationID string `json:"organization_id"`
}

// InviteEmailRequest asks the service to email an invitation link. Field
// names follow the browser client that calls this endpoint.
type InviteEmailRequest struct {
	Email            string `json:"email"`
	OrganizationName string `json:"organizationName"`
	Token            string `json:"token"`
	BaseURL          string `json:"baseUrl"`
}

type InviteEmailResponse struct {
	Sent    bool   `json:"sent"`
	Skipped bool   `json:"skipped"`
	ID      string `json:"id,omitempty"`
}

// MintInviteRequest creates an invite. ExpiresInHours of zero uses the
// service default.
type MintInviteRequest struct {
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id"`
	ExpiresInHours int    `json:"expires_in_hours,omitempty"`
}

type MintInviteResponse struct {
	Token     string    `json:"token"`
	InviteID  string    `json:"invite_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ============================================================================
// Identity and features
// ============================================================================

type MeResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	// Role is "platform_admin", "client_user" or empty.
	Role string `json:"role"`
}

type FeaturesResponse struct {
	Features map[string]bool `json:"features"`
}

type FeatureResponse struct {
	Key     string `json:"key"`
	Enabled bool   `json:"enabled"`
}

// ============================================================================
// Health
// ============================================================================

type HealthChecks struct {
	Database string `json:"database"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

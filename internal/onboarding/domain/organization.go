package domain

import "time"

type Organization struct {
	ID       string
	Name     string
	Plan     string // subscription tier, e.g. "starter", "pro", "enterprise"
	Domain   string
	Industry string
	Size     string
	Status   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemberRoleOwner is granted to whoever accepts an organization's invite.
const MemberRoleOwner = "owner"

type Membership struct {
	ID             string
	OrganizationID string
	UserID         string
	Role           string
	CreatedAt      time.Time
}

// Profile is the application-side record for an identity.
type Profile struct {
	ID             string // same as the identity's user ID
	OrganizationID string // empty until an invite is accepted
	UpdatedAt      time.Time
}

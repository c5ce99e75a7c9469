package domain

import "time"

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusExpired  InviteStatus = "expired"
)

// Terminal reports whether no further transition is possible.
func (s InviteStatus) Terminal() bool {
	return s == InviteStatusAccepted || s == InviteStatusExpired
}

// Invite is an organization setup invitation. Only the fingerprint of the
// token is stored.
type Invite struct {
	ID             string
	TokenHash      string
	Email          string
	OrganizationID string
	Status         InviteStatus
	ExpiresAt      time.Time
	AcceptedBy     string // empty until accepted
	CreatedBy      string // empty for invites provisioned outside the service
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ExpiredAt reports whether the invite's lifetime has elapsed at now. The
// expiry instant itself counts as expired.
func (i Invite) ExpiredAt(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// Acceptable reports whether the invite may be accepted at now.
func (i Invite) Acceptable(now time.Time) bool {
	return i.Status == InviteStatusPending && !i.ExpiredAt(now)
}

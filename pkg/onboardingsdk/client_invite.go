package onboardingsdk

import (
	"context"
	"net/http"
)

// ValidateInvite returns what the invite token grants. A used or expired
// invite returns an *APIError with status 410.
func (c *Client) ValidateInvite(ctx context.Context, token string) (*ValidateInviteResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/v1/invites/validate", InviteTokenRequest{Token: token})
	if err != nil {
		return nil, err
	}

	var out ValidateInviteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvite redeems token for the bearer's identity and returns the
// organization joined. Requires WithBearer.
func (c *Client) AcceptInvite(ctx context.Context, token string) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/v1/invites/accept", InviteTokenRequest{Token: token})
	if err != nil {
		return "", err
	}

	var out AcceptInviteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.OrganizationID, nil
}

// SendInviteEmail asks the service to email an invitation link.
func (c *Client) SendInviteEmail(ctx context.Context, req InviteEmailRequest) (*InviteEmailResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/v1/invites/email", req)
	if err != nil {
		return nil, err
	}

	var out InviteEmailResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// MintInvite creates an invite. Requires WithBearer and the platform_admin
// role.
func (c *Client) MintInvite(ctx context.Context, req MintInviteRequest) (*MintInviteResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/v1/invites", req)
	if err != nil {
		return nil, err
	}

	var out MintInviteResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

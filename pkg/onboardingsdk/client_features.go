package onboardingsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Me returns the bearer's identity and resolved platform role.
func (c *Client) Me(ctx context.Context) (*MeResponse, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/me", nil)
	if err != nil {
		return nil, err
	}

	var out MeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Features returns every registered flag resolved for orgID. An empty
// orgID resolves platform defaults.
func (c *Client) Features(ctx context.Context, orgID string) (map[string]bool, error) {
	path := "/v1/features"
	if orgID != "" {
		path += "?" + url.Values{"organization_id": {orgID}}.Encode()
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out FeaturesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Features, nil
}

// FeatureEnabled resolves a single flag for orgID.
func (c *Client) FeatureEnabled(ctx context.Context, key, orgID string) (bool, error) {
	path := "/v1/features/" + url.PathEscape(key)
	if orgID != "" {
		path += "?" + url.Values{"organization_id": {orgID}}.Encode()
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}

	var out FeatureResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return false, err
	}
	return out.Enabled, nil
}

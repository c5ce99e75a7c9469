package onboardingsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ValidateInvite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/invites/validate", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req InviteTokenRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		if req.Token != "abc123" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not_found","error_description":"invite not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"email":"owner@acme.test","organization":{"id":"org1","name":"Acme","plan":"pro"},"features":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")

	details, err := c.ValidateInvite(context.Background(), "abc123")
	require.NoError(t, err)
	require.Equal(t, "owner@acme.test", details.Email)
	require.Equal(t, "pro", details.Organization.Plan)

	_, err = c.ValidateInvite(context.Background(), "nope")
	require.True(t, HasCode(err, ErrorCodeNotFound))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "invite not found", apiErr.Description)
}

func TestClient_WithBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthenticated"}`))
			return
		}
		_, _ = w.Write([]byte(`{"organization_id":"org1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	_, err := c.AcceptInvite(context.Background(), "abc123")
	require.True(t, HasCode(err, ErrorCodeUnauthenticated))

	orgID, err := c.WithBearer("tok").AcceptInvite(context.Background(), "abc123")
	require.NoError(t, err)
	require.Equal(t, "org1", orgID)
}

func TestClient_InviteGone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
		_, _ = w.Write([]byte(`{"error":"invite_expired"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ValidateInvite(context.Background(), "expired1")
	require.True(t, IsInviteGone(err))
	require.True(t, HasCode(err, ErrorCodeInviteExpired))
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Livez(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}

func TestClient_FeaturesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/features":
			assert.Equal(t, "org 1", r.URL.Query().Get("organization_id"))
			_, _ = w.Write([]byte(`{"features":{"sso":true}}`))
		case "/v1/features/sso":
			assert.Empty(t, r.URL.Query().Get("organization_id"))
			_, _ = w.Write([]byte(`{"key":"sso","enabled":false}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	flags, err := c.Features(context.Background(), "org 1")
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"sso": true}, flags)

	enabled, err := c.FeatureEnabled(context.Background(), "sso", "")
	require.NoError(t, err)
	require.False(t, enabled)
}

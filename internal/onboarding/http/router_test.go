package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/mail"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/service"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/store/drivers/sqlite"
	"github.com/aussiebroadwan/hireflow/pkg/cryptox"
	"github.com/aussiebroadwan/hireflow/pkg/httpx"
	"github.com/aussiebroadwan/hireflow/pkg/idx"
	"github.com/aussiebroadwan/hireflow/pkg/jwtx"
	"github.com/aussiebroadwan/hireflow/pkg/onboardingsdk"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-with-enough-entropy"

type testEnv struct {
	router *Router
	store  *sqlite.Store
	signer *jwtx.HS256Signer
}

func generousLimits() httpx.RateLimitProfiles {
	l := httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
	return httpx.RateLimitProfiles{Strict: l, Moderate: l, Public: l}
}

func newTestEnv(t *testing.T, limits httpx.RateLimitProfiles) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	verifier, err := jwtx.NewHS256Verifier(testSecret, jwtx.HS256Options{})
	require.NoError(t, err)
	signer, err := jwtx.NewHS256Signer(testSecret)
	require.NoError(t, err)

	r := NewRouter(verifier, "test", st, limits, slogx.Discard())
	r.RoleService = &service.RoleService{Store: st}
	r.InviteService = &service.InviteService{Store: st}
	r.EmailService = &service.EmailService{Sender: mail.NewResendSender("", ""), SiteName: "Hireflow"}
	r.FeatureService = service.NewFeatureService(service.NewFlagResolver(st, time.Second), time.Second)
	r.ApplyRoutes()

	ctx := context.Background()
	require.NoError(t, st.Organizations().CreateOrganization(ctx, domain.Organization{
		ID: "org1", Name: "Acme", Plan: "pro", Domain: "acme.test", Industry: "Software", Size: "11-50",
	}))
	require.NoError(t, st.Roles().AssignRole(ctx, "admin-1", domain.RolePlatformAdmin))
	require.NoError(t, st.Roles().AssignRole(ctx, "client-1", domain.RoleClientUser))

	return &testEnv{router: r, store: st, signer: signer}
}

func (e *testEnv) token(t *testing.T, userID string) string {
	t.Helper()
	tok, err := e.signer.Sign(jwtx.NewClaims(userID, userID+"@acme.test", "", nil, time.Hour, time.Now()))
	require.NoError(t, err)
	return tok
}

func (e *testEnv) seedInvite(t *testing.T, token string, expiresAt time.Time) {
	t.Helper()
	require.NoError(t, e.store.Invites().CreateInvite(context.Background(), domain.Invite{
		ID:             idx.New().String(),
		TokenHash:      cryptox.FingerprintToken(token),
		Email:          "owner@acme.test",
		OrganizationID: "org1",
		Status:         domain.InviteStatusPending,
		ExpiresAt:      expiresAt,
	}))
}

func (e *testEnv) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = "203.0.113.7:5555"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Equal(t, code, decode[onboardingsdk.ErrorResponse](t, rec).Error)
}

func TestValidateInviteEndpoint(t *testing.T) {
	env := newTestEnv(t, generousLimits())
	env.seedInvite(t, "abc123", time.Now().Add(time.Hour))
	env.seedInvite(t, "expired1", time.Now().Add(-time.Hour))

	rec := env.do(t, http.MethodPost, "/v1/invites/validate", "", onboardingsdk.InviteTokenRequest{Token: "abc123"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	got := decode[onboardingsdk.ValidateInviteResponse](t, rec)
	require.Equal(t, "owner@acme.test", got.Email)
	require.Equal(t, "org1", got.Organization.ID)
	require.Equal(t, "pro", got.Organization.Plan)
	require.NotNil(t, got.Features)

	requireErrorCode(t, env.do(t, http.MethodPost, "/v1/invites/validate", "", onboardingsdk.InviteTokenRequest{}),
		http.StatusBadRequest, onboardingsdk.ErrorCodeInvalidRequest)
	requireErrorCode(t, env.do(t, http.MethodPost, "/v1/invites/validate", "", map[string]string{"tok": "x"}),
		http.StatusBadRequest, onboardingsdk.ErrorCodeInvalidRequest)
	requireErrorCode(t, env.do(t, http.MethodPost, "/v1/invites/validate", "", onboardingsdk.InviteTokenRequest{Token: "missing"}),
		http.StatusNotFound, onboardingsdk.ErrorCodeNotFound)

	for range 2 {
		requireErrorCode(t, env.do(t, http.MethodPost, "/v1/invites/validate", "", onboardingsdk.InviteTokenRequest{Token: "expired1"}),
			http.StatusGone, onboardingsdk.ErrorCodeInviteExpired)
	}
}

func TestAcceptInviteEndpoint(t *testing.T) {
	env := newTestEnv(t, generousLimits())
	env.seedInvite(t, "abc123", time.Now().Add(time.Hour))
	body := onboardingsdk.InviteTokenRequest{Token: "abc123"}

	rec := env.do(t, http.MethodPost, "/v1/invites/accept", "", body)
	requireErrorCode(t, rec, http.StatusUnauthorized, onboardingsdk.ErrorCodeUnauthenticated)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")

	requireErrorCode(t, env.do(t, http.MethodPost, "/v1/invites/accept", "not-a-jwt", body),
		http.StatusUnauthorized, onboardingsdk.ErrorCodeUnauthenticated)

	tok := env.token(t, "user-1")
	rec = env.do(t, http.MethodPost, "/v1/invites/accept", tok, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "org1", decode[onboardingsdk.AcceptInviteResponse](t, rec).OrganizationID)

	requireErrorCode(t, env.do(t, http.MethodPost, "/v1/invites/accept", tok, body),
		http.StatusGone, onboardingsdk.ErrorCodeInviteAlreadyUsed)

	members, err := env.store.Members().ListMemberships(context.Background(), "org1")
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestInviteEmailEndpoint(t *testing.T) {
	env := newTestEnv(t, generousLimits())

	rec := env.do(t, http.MethodPost, "/v1/invites/email", "", onboardingsdk.InviteEmailRequest{
		Email:            "owner@acme.test",
		OrganizationName: "Acme",
		Token:            "abc123",
		BaseURL:          "https://app.hireflow.test",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[onboardingsdk.InviteEmailResponse](t, rec)
	require.True(t, got.Skipped)
	require.False(t, got.Sent)

	requireErrorCode(t, env.do(t, http.MethodPost, "/v1/invites/email", "", onboardingsdk.InviteEmailRequest{Email: "owner@acme.test"}),
		http.StatusBadRequest, onboardingsdk.ErrorCodeInvalidRequest)
}

func TestMintInviteEndpoint(t *testing.T) {
	env := newTestEnv(t, generousLimits())
	req := onboardingsdk.MintInviteRequest{Email: "owner@acme.test", OrganizationID: "org1", ExpiresInHours: 48}

	requireErrorCode(t, env.do(t, http.MethodPost, "/v1/invites", "", req),
		http.StatusUnauthorized, onboardingsdk.ErrorCodeUnauthenticated)
	requireErrorCode(t, env.do(t, http.MethodPost, "/v1/invites", env.token(t, "client-1"), req),
		http.StatusForbidden, onboardingsdk.ErrorCodeForbidden)

	admin := env.token(t, "admin-1")
	requireErrorCode(t, env.do(t, http.MethodPost, "/v1/invites", admin, onboardingsdk.MintInviteRequest{Email: "x@y.test", OrganizationID: "nope"}),
		http.StatusBadRequest, onboardingsdk.ErrorCodeInvalidRequest)
	requireErrorCode(t, env.do(t, http.MethodPost, "/v1/invites", admin, onboardingsdk.MintInviteRequest{Email: "x@y.test", OrganizationID: "org1", ExpiresInHours: -1}),
		http.StatusBadRequest, onboardingsdk.ErrorCodeInvalidRequest)

	rec := env.do(t, http.MethodPost, "/v1/invites", admin, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	minted := decode[onboardingsdk.MintInviteResponse](t, rec)
	require.NotEmpty(t, minted.Token)
	require.WithinDuration(t, time.Now().Add(48*time.Hour), minted.ExpiresAt, time.Minute)

	rec = env.do(t, http.MethodPost, "/v1/invites/validate", "", onboardingsdk.InviteTokenRequest{Token: minted.Token})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestMeEndpoint(t *testing.T) {
	env := newTestEnv(t, generousLimits())

	requireErrorCode(t, env.do(t, http.MethodGet, "/v1/me", "", nil),
		http.StatusUnauthorized, onboardingsdk.ErrorCodeUnauthenticated)

	tests := []struct {
		user string
		role string
	}{
		{"admin-1", "platform_admin"},
		{"client-1", "client_user"},
		{"stranger", ""},
	}
	for _, tt := range tests {
		rec := env.do(t, http.MethodGet, "/v1/me", env.token(t, tt.user), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		me := decode[onboardingsdk.MeResponse](t, rec)
		require.Equal(t, tt.user, me.UserID)
		require.Equal(t, tt.user+"@acme.test", me.Email)
		require.Equal(t, tt.role, me.Role)
	}
}

func TestFeaturesEndpoints(t *testing.T) {
	env := newTestEnv(t, generousLimits())
	require.NoError(t, env.store.Features().UpsertOrganizationOverride(context.Background(), domain.FeatureOverride{
		OrganizationID: "org1", FeatureName: "custom_branding", Enabled: false,
	}))

	rec := env.do(t, http.MethodGet, "/v1/features?organization_id=org1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	flags := decode[onboardingsdk.FeaturesResponse](t, rec).Features
	require.True(t, flags["advanced_analytics"])
	require.False(t, flags["custom_branding"])
	require.False(t, flags["sso"])

	rec = env.do(t, http.MethodGet, "/v1/features", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, decode[onboardingsdk.FeaturesResponse](t, rec).Features["advanced_analytics"])

	rec = env.do(t, http.MethodGet, "/v1/features/bulk_invites?organization_id=org1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, onboardingsdk.FeatureResponse{Key: "bulk_invites", Enabled: true}, decode[onboardingsdk.FeatureResponse](t, rec))

	rec = env.do(t, http.MethodGet, "/v1/features/unknown_flag", "", nil)
	require.False(t, decode[onboardingsdk.FeatureResponse](t, rec).Enabled)
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t, generousLimits())

	rec := env.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "test", decode[onboardingsdk.HealthResponse](t, rec).Version)

	rec = env.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[onboardingsdk.HealthResponse](t, rec).Checks.Database)

	require.NoError(t, env.store.Close())
	rec = env.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "degraded", decode[onboardingsdk.HealthResponse](t, rec).Status)
}

func TestValidateIsRateLimited(t *testing.T) {
	limits := generousLimits()
	limits.Strict = httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Hour, Burst: 2}
	env := newTestEnv(t, limits)

	body := onboardingsdk.InviteTokenRequest{Token: "missing"}
	for range 2 {
		require.Equal(t, http.StatusNotFound, env.do(t, http.MethodPost, "/v1/invites/validate", "", body).Code)
	}
	requireErrorCode(t, env.do(t, http.MethodPost, "/v1/invites/validate", "", body),
		http.StatusTooManyRequests, onboardingsdk.ErrorCodeRateLimited)
}

func TestRequestIDIsEchoed(t *testing.T) {
	env := newTestEnv(t, generousLimits())

	req := httptest.NewRequest(http.MethodGet, "/livez", nil)
	req.Header.Set(slogx.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, "req-123", rec.Header().Get(slogx.RequestIDHeader))
}

//go:build e2e

package onboarding_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/app"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/store/drivers/postgres"
	"github.com/aussiebroadwan/hireflow/pkg/jwtx"
	"github.com/aussiebroadwan/hireflow/pkg/onboardingsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * End-to-end tests run the onboarding service in-process against a real
 * Postgres container. Tokens are minted with the shared HS256 secret the
 * way the identity provider would, and fixtures are written straight to
 * the database since the service has no admin surface for them.
 */

const (
	jwtSecret = "e2e-shared-secret"
	issuer    = "hireflow-idp"

	adminUserID = "admin-1"
	ownerUserID = "owner-1"
)

type testEnv struct {
	client *onboardingsdk.Client
	store  *postgres.Store
	signer *jwtx.HS256Signer
}

func setupPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "hireflow",
			"POSTGRES_PASSWORD": "hireflow",
			"POSTGRES_DB":       "onboarding",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://hireflow:hireflow@%s:%s/onboarding?sslmode=disable", host, port.Port())
}

// setupService boots the service with the postgres driver and generous
// rate limits, seeds a platform admin and returns a client for it.
func setupService(t *testing.T, extraEnv map[string]string) *testEnv {
	t.Helper()
	ctx := context.Background()

	dsn := setupPostgres(t)

	environ := map[string]string{
		"ENV":                         "test",
		"LOG_LEVEL":                   "warn",
		"STORE_DRIVER":                "postgres",
		"DATABASE_URL":                dsn,
		"AUTH_JWT_SECRET":             jwtSecret,
		"AUTH_ISSUER":                 issuer,
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	}
	for k, v := range extraEnv {
		environ[k] = v
	}

	cfg, err := app.LoadConfig(environ)
	require.NoError(t, err)

	application, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	st, err := postgres.NewStore(ctx, &postgres.PoolConfig{ConnString: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.Roles().AssignRole(ctx, adminUserID, domain.RolePlatformAdmin))

	signer, err := jwtx.NewHS256Signer(jwtSecret)
	require.NoError(t, err)

	return &testEnv{
		client: onboardingsdk.NewClient(srv.URL),
		store:  st,
		signer: signer,
	}
}

// as returns a client authenticated as userID.
func (e *testEnv) as(t *testing.T, userID string) *onboardingsdk.Client {
	t.Helper()

	token, err := e.signer.Sign(jwtx.NewClaims(userID, userID+"@example.com", issuer, nil, time.Hour, time.Now()))
	require.NoError(t, err)
	return e.client.WithBearer(token)
}

// seedOrganization creates an organization on plan.
func (e *testEnv) seedOrganization(t *testing.T, id, plan string) {
	t.Helper()

	require.NoError(t, e.store.Organizations().CreateOrganization(context.Background(), domain.Organization{
		ID:       id,
		Name:     "Org " + id,
		Plan:     plan,
		Domain:   id + ".example.com",
		Industry: "Software",
		Size:     "11-50",
		Status:   "onboarding",
	}))
}

// requireAPIError asserts err is an APIError with status and code.
func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()

	var apiErr *onboardingsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

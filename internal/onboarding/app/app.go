package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/hireflow/internal/onboarding/http"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/mail"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/service"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/store"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/store/drivers/postgres"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/store/drivers/sqlite"
	"github.com/aussiebroadwan/hireflow/pkg/jwtx"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"
)

// BuildVersion is overridden at build time with
// -ldflags "-X github.com/aussiebroadwan/hireflow/internal/onboarding/app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application owns the onboarding service and its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	verifier jwtx.Verifier

	inviteService       *service.InviteService
	emailService        *service.EmailService
	roleService         *service.RoleService
	featureService      *service.FeatureService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "onboarding-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	verifier, err := jwtx.NewHS256Verifier(cfg.JWTSecret, jwtx.HS256Options{
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		Leeway:   30 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token verifier: %w", err)
	}
	app.verifier = verifier

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts serving and blocks until a shutdown signal or server failure.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("onboarding service starting",
		slog.Int("port", app.cfg.Port),
		slog.String("store", app.cfg.StoreDriver),
		slog.Bool("email_enabled", app.emailService.Sender.Configured()),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops the sweeper and closes the
// store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down onboarding service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", slog.Any("error", err))
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", slog.Any("error", err))
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", slog.Any("error", err))
		return err
	}

	app.logger.Info("onboarding service stopped")
	return nil
}

func (app *Application) initDatabase(ctx context.Context) error {
	switch app.cfg.StoreDriver {
	case StoreDriverPostgres:
		db, err := postgres.NewStore(ctx, &postgres.PoolConfig{ConnString: app.cfg.DatabaseURL})
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db
	default:
		db, err := sqlite.NewStore(app.cfg.SQLiteDSN())
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db
	}

	if err := app.db.ApplyMigrations(); err != nil {
		_ = app.db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", slog.String("driver", app.cfg.StoreDriver))
	return nil
}

func (app *Application) initServices() {
	app.inviteService = &service.InviteService{
		Store:   app.db,
		Timeout: app.cfg.StoreTimeout,
	}
	app.roleService = &service.RoleService{
		Store:   app.db,
		Timeout: app.cfg.RoleResolveTimeout,
	}
	app.featureService = service.NewFeatureService(
		service.NewFlagResolver(app.db, app.cfg.StoreTimeout),
		app.cfg.FeatureCacheTTL,
	)
	app.emailService = &service.EmailService{
		Sender:   mail.NewResendSender(app.cfg.EmailAPIKey, app.cfg.EmailAPIURL),
		From:     app.cfg.EmailFrom,
		SiteName: app.cfg.SiteName,
	}
	if !app.emailService.Sender.Configured() {
		app.logger.Warn("EMAIL_API_KEY not set, invite emails will be skipped")
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
	app.housekeepingService.Timeout = app.cfg.StoreTimeout
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.db,
		app.cfg.RateLimits,
		app.logger,
	)

	router.InviteService = app.inviteService
	router.EmailService = app.emailService
	router.RoleService = app.roleService
	router.FeatureService = app.featureService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// Handler returns the fully wired HTTP handler, for serving from tests or
// an embedding process.
func (app *Application) Handler() http.Handler {
	return app.server.Handler
}

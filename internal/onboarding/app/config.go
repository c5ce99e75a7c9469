package app

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/hireflow/pkg/httpx"
	"github.com/caarlos0/env/v11"
)

const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env                 string        `env:"ENV"                   envDefault:"dev"`  // dev, staging, prod
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"` // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"` // json, text
	Port                int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	StoreDriver  string        `env:"STORE_DRIVER"  envDefault:"sqlite"`
	DatabaseFile string        `env:"DATABASE_FILE" envDefault:"onboarding.db"`
	DatabaseURL  string        `env:"DATABASE_URL"` // required for postgres
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`

	RoleResolveTimeout   time.Duration `env:"ROLE_RESOLVE_TIMEOUT"  envDefault:"3s"`
	FeatureCacheTTL      time.Duration `env:"FEATURE_CACHE_TTL"     envDefault:"30s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`

	JWTSecret string   `env:"AUTH_JWT_SECRET,required"`
	Issuer    string   `env:"AUTH_ISSUER"`
	Audience  []string `env:"AUTH_AUDIENCE" envSeparator:","`

	// Email is skipped, not failed, while EmailAPIKey is empty.
	EmailAPIKey string `env:"EMAIL_API_KEY"`
	EmailAPIURL string `env:"EMAIL_API_URL" envDefault:"https://api.resend.com"`
	EmailFrom   string `env:"EMAIL_FROM"    envDefault:"Hireflow <onboarding@hireflow.dev>"`
	SiteName    string `env:"SITE_NAME"     envDefault:"Hireflow"`

	// Filled by httpx.LoadRateLimitProfiles from RATELIMIT_*, which falls
	// back per profile.
	RateLimits httpx.RateLimitProfiles `env:"-"`
}

// LoadConfig reads the configuration from environ, or from the process
// environment when environ is nil.
func LoadConfig(environ map[string]string) (Config, error) {
	var cfg Config

	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	limits, err := httpx.LoadRateLimitProfiles(environ)
	if err != nil {
		return Config{}, err
	}
	cfg.RateLimits = limits

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDriverSQLite:
		if c.DatabaseFile == "" {
			return fmt.Errorf("%w: DATABASE_FILE is required for the sqlite driver", ErrInvalidConfig)
		}
	case StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required for the postgres driver", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown STORE_DRIVER %q", ErrInvalidConfig, c.StoreDriver)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: PORT %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.StoreTimeout <= 0 || c.RoleResolveTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidConfig)
	}
	if c.FeatureCacheTTL < 0 {
		return fmt.Errorf("%w: FEATURE_CACHE_TTL must not be negative", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("%w: AUTH_JWT_SECRET is required", ErrInvalidConfig)
	}

	if c.EmailAPIKey != "" {
		u, err := url.Parse(c.EmailAPIURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: EMAIL_API_URL must be an absolute http(s) URL", ErrInvalidConfig)
		}
	}
	return nil
}

// SQLiteDSN is the modernc.org/sqlite connection string for DatabaseFile.
func (c Config) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", c.DatabaseFile)
}

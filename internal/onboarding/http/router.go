package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/service"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/store"
	"github.com/aussiebroadwan/hireflow/pkg/httpx"
	"github.com/aussiebroadwan/hireflow/pkg/jwtx"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"

	_ "github.com/aussiebroadwan/hireflow/api/onboarding" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	limits       httpx.RateLimitProfiles

	store          store.Store
	InviteService  *service.InviteService
	EmailService   *service.EmailService
	RoleService    *service.RoleService
	FeatureService *service.FeatureService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	limits httpx.RateLimitProfiles,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		limits:       limits,
		store:        st,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvites()
	r.registerIdentity()
	r.registerFeatures()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Hireflow Onboarding Service API
//	@version		0.1.0
//	@description	Organization onboarding for Hireflow: invite validation and acceptance, invitation email,
//	@description	platform role resolution and layered feature flags.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/hireflow
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				HS256 access token from the identity provider. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) authenticate() httpx.Middleware {
	return SessionMiddleware(r.verifier, r.RoleService)
}

func (r *Router) registerInvites() {
	validateHandler := &InviteValidateHandler{InviteService: r.InviteService}
	acceptHandler := &InviteAcceptHandler{InviteService: r.InviteService}
	emailHandler := &InviteEmailHandler{EmailService: r.EmailService}
	mintHandler := &InviteMintHandler{InviteService: r.InviteService}

	// POST /invites/validate - strict rate limit by IP (token guessing)
	r.Mux.Handle("POST /v1/invites/validate",
		httpx.Chain(validateHandler,
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)

	// POST /invites/accept - strict by IP, then the caller's identity.
	// A missing credential reaches the handler and is rejected there.
	r.Mux.Handle("POST /v1/invites/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(r.limits.Strict),
			r.authenticate(),
		),
	)

	// POST /invites/email - moderate rate limit by IP (outbound email)
	r.Mux.Handle("POST /v1/invites/email",
		httpx.Chain(emailHandler,
			httpx.RateLimitByIP(r.limits.Moderate),
		),
	)

	// POST /invites - platform admins only
	r.Mux.Handle("POST /v1/invites",
		httpx.Chain(mintHandler,
			r.authenticate(),
			RequireRole(domain.RolePlatformAdmin),
			httpx.RateLimitByUser(r.limits.Moderate),
		),
	)
}

func (r *Router) registerIdentity() {
	h := &MeHandler{}

	r.Mux.Handle("GET /v1/me",
		httpx.Chain(h,
			r.authenticate(),
			RequireAuthenticated(),
			httpx.RateLimitByUser(r.limits.Public),
		),
	)
}

func (r *Router) registerFeatures() {
	h := &FeaturesHandler{FeatureService: r.FeatureService}

	r.Mux.Handle("GET /v1/features",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("GET /v1/features/{key}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}

package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/domain"
	"github.com/aussiebroadwan/hireflow/internal/onboarding/service"
	"github.com/aussiebroadwan/hireflow/pkg/httpx"
	"github.com/aussiebroadwan/hireflow/pkg/jwtx"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"
)

type sessionKey struct{}

func ContextWithSession(ctx context.Context, s *service.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the request's session. Requests that did not
// pass through SessionMiddleware get a fresh unauthenticated one.
func SessionFromContext(ctx context.Context) *service.Session {
	if s, ok := ctx.Value(sessionKey{}).(*service.Session); ok {
		return s
	}
	return service.NewSession()
}

// SessionMiddleware attaches a per-request Session. A valid bearer token
// establishes the identity and resolves its platform role; no credential
// leaves the session unauthenticated; a credential that fails verification
// is rejected with 401.
func SessionMiddleware(verifier jwtx.Verifier, roles service.RoleResolver) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)
			sess := service.NewSession()

			if r.Header.Get("Authorization") != "" {
				token, ok := httpx.BearerToken(r)
				if !ok {
					httpx.WriteBearerError(w, "malformed authorization header")
					return
				}

				claims, err := verifier.Verify(token)
				if err != nil {
					log.Warn("bearer token rejected", slog.Any("error", err))
					httpx.WriteBearerError(w, "invalid or expired access token")
					return
				}

				sess.Establish(ctx, domain.Identity{UserID: claims.Subject, Email: claims.Email}, roles)
				ctx = httpx.ContextWithUserID(ctx, claims.Subject)
				ctx = slogx.WithAttrs(ctx, slog.String("user_id", claims.Subject))
			}

			next.ServeHTTP(w, r.WithContext(ContextWithSession(ctx, sess)))
		})
	}
}

// RequireAuthenticated rejects requests whose session has no identity.
func RequireAuthenticated() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !SessionFromContext(r.Context()).Authenticated() {
				httpx.WriteBearerError(w, "authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole rejects unauthenticated requests with 401 and authenticated
// ones without role with 403.
func RequireRole(role domain.Role) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())
			identity, current := sess.Snapshot()
			if identity.IsZero() {
				httpx.WriteBearerError(w, "authentication required")
				return
			}
			if current != role {
				slogx.FromContext(r.Context()).Warn("role check failed",
					slog.String("required", string(role)),
					slog.String("role", string(current)),
				)
				httpx.WriteForbidden(w, "requires role "+string(role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

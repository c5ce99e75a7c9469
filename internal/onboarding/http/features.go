package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/service"
	"github.com/aussiebroadwan/hireflow/pkg/httpx"
	"github.com/aussiebroadwan/hireflow/pkg/onboardingsdk"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"
)

type FeaturesHandler struct {
	FeatureService *service.FeatureService
}

// HandleList godoc
//
//	@Summary		Resolve Feature Flags
//	@Description	Resolve every registered feature flag for an organization: override, then plan default, then platform default.
//	@Description	Without organization_id only platform defaults apply.
//	@Tags			Features
//	@Produce		json
//	@Param			organization_id	query		string							false	"Organization ID"
//	@Success		200				{object}	onboardingsdk.FeaturesResponse	"features"
//	@Failure		503				{object}	onboardingsdk.ErrorResponse		"flag registry unavailable"
//	@Router			/v1/features [get].
func (h *FeaturesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orgID := r.URL.Query().Get("organization_id")

	flags, err := h.FeatureService.EnabledFeatures(ctx, orgID)
	if err != nil {
		slogx.FromContext(ctx).Warn("feature flags unavailable",
			slog.String("organization_id", orgID),
			slog.Any("error", err),
		)
		httpx.WriteError(w, http.StatusServiceUnavailable, onboardingsdk.ErrorCodeFlagsUnavailable, "feature flags are temporarily unavailable")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, onboardingsdk.FeaturesResponse{Features: flags})
}

// HandleGet godoc
//
//	@Summary		Resolve Feature Flag
//	@Description	Resolve one feature flag. Unknown flags and lookup failures resolve to false.
//	@Tags			Features
//	@Produce		json
//	@Param			key				path		string							true	"Flag key"
//	@Param			organization_id	query		string							false	"Organization ID"
//	@Success		200				{object}	onboardingsdk.FeatureResponse	"key, enabled"
//	@Router			/v1/features/{key} [get].
func (h *FeaturesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	orgID := r.URL.Query().Get("organization_id")

	httpx.WriteJSON(w, http.StatusOK, onboardingsdk.FeatureResponse{
		Key:     key,
		Enabled: h.FeatureService.IsEnabled(r.Context(), key, orgID),
	})
}

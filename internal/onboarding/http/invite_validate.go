package http

import (
	"net/http"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/service"
	"github.com/aussiebroadwan/hireflow/pkg/httpx"
	"github.com/aussiebroadwan/hireflow/pkg/onboardingsdk"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"
)

type InviteValidateHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Validate Invite
//	@Description	Check an organization setup invite token and return the organization it grants, its feature overrides and the invited email.
//	@Description	A pending invite past its expiry is marked expired as a side effect.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardingsdk.InviteTokenRequest		true	"Invite token"
//	@Success		200		{object}	onboardingsdk.ValidateInviteResponse	"email, organization, features, expires_at"
//	@Failure		400		{object}	onboardingsdk.ErrorResponse				"missing token"
//	@Failure		404		{object}	onboardingsdk.ErrorResponse				"unknown token"
//	@Failure		410		{object}	onboardingsdk.ErrorResponse				"invite already used or expired"
//	@Failure		500		{object}	onboardingsdk.ErrorResponse				"error, error_description"
//	@Router			/v1/invites/validate [post].
func (h *InviteValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req onboardingsdk.InviteTokenRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	details, err := h.InviteService.ValidateInvite(ctx, req.Token)
	if err != nil {
		writeInviteError(w, log, err)
		return
	}

	features := make([]onboardingsdk.FeatureOverride, 0, len(details.Features))
	for _, f := range details.Features {
		features = append(features, onboardingsdk.FeatureOverride{FeatureName: f.FeatureName, Enabled: f.Enabled})
	}

	org := details.Organization
	httpx.WriteJSON(w, http.StatusOK, onboardingsdk.ValidateInviteResponse{
		Email: details.Email,
		Organization: onboardingsdk.Organization{
			ID:       org.ID,
			Name:     org.Name,
			Plan:     org.Plan,
			Domain:   org.Domain,
			Industry: org.Industry,
			Size:     org.Size,
		},
		Features:  features,
		ExpiresAt: details.ExpiresAt.UTC(),
	})
}

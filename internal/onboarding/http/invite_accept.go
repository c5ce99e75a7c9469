package http

import (
	"net/http"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/service"
	"github.com/aussiebroadwan/hireflow/pkg/httpx"
	"github.com/aussiebroadwan/hireflow/pkg/onboardingsdk"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"
)

type InviteAcceptHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Accept Invite
//	@Description	Redeem an invite for the authenticated user: grants owner membership of the organization and links it to the user's profile.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardingsdk.InviteTokenRequest	true	"Invite token"
//	@Success		200		{object}	onboardingsdk.AcceptInviteResponse	"organization_id"
//	@Failure		400		{object}	onboardingsdk.ErrorResponse			"missing token"
//	@Failure		401		{object}	onboardingsdk.ErrorResponse			"missing or invalid credential"
//	@Failure		404		{object}	onboardingsdk.ErrorResponse			"unknown token"
//	@Failure		410		{object}	onboardingsdk.ErrorResponse			"invite already used or expired"
//	@Failure		500		{object}	onboardingsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites/accept [post].
func (h *InviteAcceptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req onboardingsdk.InviteTokenRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	identity := SessionFromContext(ctx).Identity()
	orgID, err := h.InviteService.AcceptInvite(ctx, req.Token, identity)
	if err != nil {
		writeInviteError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, onboardingsdk.AcceptInviteResponse{OrganizationID: orgID})
}

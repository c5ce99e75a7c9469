package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/service"
	"github.com/aussiebroadwan/hireflow/pkg/httpx"
	"github.com/aussiebroadwan/hireflow/pkg/onboardingsdk"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"
)

// maxInviteHours caps how far out an invite may expire.
const maxInviteHours = 30 * 24

type InviteMintHandler struct {
	InviteService *service.InviteService
}

// ServeHTTP godoc
//
//	@Summary		Create Invite
//	@Description	Mint an organization setup invite. The raw token is returned once and never stored. Platform admins only.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardingsdk.MintInviteRequest		true	"Invite request"
//	@Success		200		{object}	onboardingsdk.MintInviteResponse	"token, invite_id, expires_at"
//	@Failure		400		{object}	onboardingsdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	onboardingsdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	onboardingsdk.ErrorResponse			"caller is not a platform admin"
//	@Failure		500		{object}	onboardingsdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InviteMintHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req onboardingsdk.MintInviteRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	if req.ExpiresInHours < 0 || req.ExpiresInHours > maxInviteHours {
		httpx.WriteError(w, http.StatusBadRequest, onboardingsdk.ErrorCodeInvalidRequest, "expires_in_hours out of range")
		return
	}

	createdBy := SessionFromContext(ctx).Identity().UserID
	token, invite, err := h.InviteService.MintInvite(ctx,
		req.Email,
		req.OrganizationID,
		time.Duration(req.ExpiresInHours)*time.Hour,
		createdBy,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInviteRequest):
			httpx.WriteError(w, http.StatusBadRequest, onboardingsdk.ErrorCodeInvalidRequest, "email and organization_id are required")
		case errors.Is(err, service.ErrOrganizationNotFound):
			httpx.WriteError(w, http.StatusBadRequest, onboardingsdk.ErrorCodeInvalidRequest, "unknown organization_id")
		default:
			log.Error("failed to mint invite", slog.Any("error", err))
			httpx.WriteError(w, http.StatusInternalServerError, onboardingsdk.ErrorCodeServerError, "failed to create invite")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, onboardingsdk.MintInviteResponse{
		Token:     token,
		InviteID:  invite.ID,
		ExpiresAt: invite.ExpiresAt.UTC(),
	})
}

package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/service"
	"github.com/aussiebroadwan/hireflow/pkg/httpx"
	"github.com/aussiebroadwan/hireflow/pkg/onboardingsdk"
	"github.com/aussiebroadwan/hireflow/pkg/slogx"
)

type InviteEmailHandler struct {
	EmailService *service.EmailService
}

// ServeHTTP godoc
//
//	@Summary		Send Invite Email
//	@Description	Email an organization setup link of the form {baseUrl}/invite?token={token}.
//	@Description	When no mail provider is configured the request succeeds with skipped=true.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardingsdk.InviteEmailRequest	true	"Email request"
//	@Success		200		{object}	onboardingsdk.InviteEmailResponse	"sent, skipped, id"
//	@Failure		400		{object}	onboardingsdk.ErrorResponse			"missing or invalid field"
//	@Failure		500		{object}	onboardingsdk.ErrorResponse			"provider failure"
//	@Router			/v1/invites/email [post].
func (h *InviteEmailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req onboardingsdk.InviteEmailRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w, err)
		return
	}

	res, err := h.EmailService.SendInvite(ctx, service.InviteEmailRequest{
		Email:            req.Email,
		OrganizationName: req.OrganizationName,
		Token:            req.Token,
		BaseURL:          req.BaseURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidEmailRequest) {
			httpx.WriteError(w, http.StatusBadRequest, onboardingsdk.ErrorCodeInvalidRequest, err.Error())
			return
		}
		log.Error("failed to send invite email", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, onboardingsdk.ErrorCodeServerError, "failed to send email")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, onboardingsdk.InviteEmailResponse{
		Sent:    res.Sent,
		Skipped: res.Skipped,
		ID:      res.MessageID,
	})
}

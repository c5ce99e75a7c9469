package http

import (
	"net/http"

	"github.com/aussiebroadwan/hireflow/pkg/httpx"
	"github.com/aussiebroadwan/hireflow/pkg/onboardingsdk"
)

type MeHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Current Identity
//	@Description	Return the authenticated user and their resolved platform role. The role is empty when none is assigned or the lookup failed.
//	@Tags			Identity
//	@Produce		json
//	@Success		200	{object}	onboardingsdk.MeResponse	"user_id, email, role"
//	@Failure		401	{object}	onboardingsdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, role := SessionFromContext(r.Context()).Snapshot()

	httpx.WriteJSON(w, http.StatusOK, onboardingsdk.MeResponse{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   string(role),
	})
}

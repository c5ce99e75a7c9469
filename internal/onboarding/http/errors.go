package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/hireflow/internal/onboarding/service"
	"github.com/aussiebroadwan/hireflow/pkg/httpx"
	"github.com/aussiebroadwan/hireflow/pkg/onboardingsdk"
)

// writeInviteError maps invite lifecycle failures onto the status codes
// clients rely on.
func writeInviteError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInviteRequest):
		httpx.WriteError(w, http.StatusBadRequest, onboardingsdk.ErrorCodeInvalidRequest, "token is required")
	case errors.Is(err, service.ErrUnauthenticated):
		httpx.WriteBearerError(w, "authentication required")
	case errors.Is(err, service.ErrInviteNotFound):
		httpx.WriteError(w, http.StatusNotFound, onboardingsdk.ErrorCodeNotFound, "invite not found")
	case errors.Is(err, service.ErrInviteAlreadyUsed):
		httpx.WriteError(w, http.StatusGone, onboardingsdk.ErrorCodeInviteAlreadyUsed, "invite has already been used")
	case errors.Is(err, service.ErrInviteExpired):
		httpx.WriteError(w, http.StatusGone, onboardingsdk.ErrorCodeInviteExpired, "invite has expired")
	default:
		log.Error("invite request failed", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, onboardingsdk.ErrorCodeServerError, "internal error")
	}
}

func writeBadBody(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, onboardingsdk.ErrorCodeInvalidRequest, err.Error())
}

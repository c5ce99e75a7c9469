package httpx

import (
	"net/http"
	"strings"
)

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(authz, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// WriteBearerError writes an RFC 6750 challenge with the JSON error body.
func WriteBearerError(w http.ResponseWriter, description string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+description+`"`)
	WriteError(w, http.StatusUnauthorized, "unauthenticated", description)
}

// WriteForbidden is the authorization counterpart of WriteBearerError.
func WriteForbidden(w http.ResponseWriter, description string) {
	WriteError(w, http.StatusForbidden, "forbidden", description)
}

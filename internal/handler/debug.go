package handler

import (
	"net/http"

	"github.com/osse101/GudGuns_Go/internal/domain"
)

// HandleDebugToken returns the raw token payload held in the session.
// Only mounted when debug routes are enabled.
// @Summary Session token payload
// @Description Raw token response held in the session. Only mounted when debug routes are enabled.
// @Tags debug
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Success 302 {string} string "Redirect to / when not signed in"
// @Router /debug/token [get]
func HandleDebugToken() CredentialedHandler {
	return func(w http.ResponseWriter, r *http.Request, creds domain.Credentials) {
		payload := creds.Token.Raw
		if payload == nil {
			payload = map[string]any{"access_token": creds.Token.AccessToken}
		}
		respondJSON(w, http.StatusOK, payload)
	}
}

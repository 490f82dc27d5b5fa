package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/GudGuns_Go/internal/domain"
	"github.com/osse101/GudGuns_Go/internal/logger"
)

// HandleMemberships passes the caller's membership listing through
// @Summary Memberships
// @Description Bungie.net memberships of the signed-in user, passed through with the upstream status
// @Tags inventory
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Success 302 {string} string "Redirect to / when not signed in"
// @Failure 500 {object} UpstreamErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /memberships [get]
func HandleMemberships(platform Platform) CredentialedHandler {
	return func(w http.ResponseWriter, r *http.Request, creds domain.Credentials) {
		log := logger.FromContext(r.Context())

		raw, err := platform.GetMemberships(r.Context(), creds.Token)
		if err != nil {
			respondUpstreamError(w, err)
			return
		}

		if _, err := raw.Decode(); err != nil {
			log.Error(LogMsgUpstreamDecodeError, "endpoint", "memberships", "status", raw.StatusCode, "error", err)
			respondUpstreamDecodeError(w, raw.StatusCode, raw.Body, err)
			return
		}

		respondRawJSON(w, raw.StatusCode, raw.Body)
	}
}

// respondUpstreamError reports a failed platform call
func respondUpstreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		respondError(w, http.StatusBadGateway, ErrMsgUpstreamUnavailable)
		return
	case errors.Is(err, domain.ErrUpstreamTooLarge):
		respondError(w, http.StatusBadGateway, ErrMsgUpstreamTooLarge)
		return
	}
	respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
}

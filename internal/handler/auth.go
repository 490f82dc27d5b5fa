package handler

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/osse101/GudGuns_Go/internal/domain"
	"github.com/osse101/GudGuns_Go/internal/logger"
	"github.com/osse101/GudGuns_Go/internal/metrics"
)

// HandleLogin starts the authorization-code flow
// @Summary Start login
// @Description Stores a fresh OAuth state in the session and redirects to the Bungie.net authorize page
// @Tags auth
// @Success 302 {string} string "Redirect"
// @Failure 500 {object} ErrorResponse
// @Router /login [get]
func HandleLogin(platform Platform, sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		s, err := sessions.Load(r)
		if err != nil {
			log.Error(LogMsgSessionLoadFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgSessionUnavailable)
			return
		}

		state, err := newState()
		if err != nil {
			log.Error("Failed to generate OAuth state", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}
		s.State = state

		if err := sessions.Save(w, r, s); err != nil {
			log.Error(LogMsgSessionSaveFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgSessionUnavailable)
			return
		}

		http.Redirect(w, r, platform.AuthCodeURL(state), http.StatusFound)
	}
}

// HandleCallback completes the authorization-code flow. The membership used
// for inventory requests is resolved here when the platform allows it, and
// otherwise falls back to the configured default.
// @Summary OAuth callback
// @Description Exchanges the authorization code for a token, resolves the Destiny membership and signs the session in
// @Tags auth
// @Produce plain
// @Param code query string true "Authorization code"
// @Param state query string true "OAuth state issued by /login"
// @Success 302 {string} string "Redirect"
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Failure 502 {string} string
// @Router /oauth_callback [get]
func HandleCallback(platform Platform, sessions Sessions, fallback domain.Membership) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)
		query := r.URL.Query()

		log.Info(LogMsgCallbackParams,
			"has_code", query.Has(QueryParamCode),
			"has_state", query.Has(QueryParamState),
			"error", query.Get(QueryParamError))

		code, err := callbackCode(query)
		if err != nil {
			log.Error(LogMsgNoAuthCode, "error", err)
			rejectCallback(w, err)
			return
		}

		s, err := sessions.Load(r)
		if err != nil {
			log.Error(LogMsgSessionLoadFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgSessionUnavailable)
			return
		}

		if err := verifyState(s.State, query.Get(QueryParamState)); err != nil {
			log.Warn(LogMsgStateMismatch, "error", err)
			rejectCallback(w, err)
			return
		}

		tok, err := platform.Exchange(ctx, code)
		if err != nil {
			rejectCallback(w, err)
			return
		}

		membership, err := platform.ResolveMembership(ctx, *tok)
		if err != nil {
			log.Warn(LogMsgMembershipFallback, "error", err,
				"membership_type", fallback.MembershipType,
				"membership_id", fallback.MembershipID)
			membership = &fallback
		}

		s.Login(tok, membership)
		if err := sessions.Save(w, r, s); err != nil {
			log.Error(LogMsgSessionSaveFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgSessionUnavailable)
			return
		}

		metrics.Logins.WithLabelValues(metrics.OutcomeSuccess).Inc()
		log.Info(LogMsgLoginSucceeded,
			"membership_type", membership.MembershipType,
			"membership_id", membership.MembershipID)
		http.Redirect(w, r, PathHome, http.StatusFound)
	}
}

// HandleLogout clears the session
// @Summary Log out
// @Description Clears the session and redirects home
// @Tags auth
// @Success 302 {string} string "Redirect"
// @Router /logout [get]
func HandleLogout(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Destroy(w, r); err != nil {
			logger.FromContext(r.Context()).Error("Failed to delete session", "error", err)
		}
		http.Redirect(w, r, PathHome, http.StatusFound)
	}
}

// callbackCode returns the authorization code, or ErrMissingAuthCode carrying
// the platform's error parameter when the user did not authorize.
func callbackCode(query url.Values) (string, error) {
	code := query.Get(QueryParamCode)
	if code != "" {
		return code, nil
	}
	if reason := query.Get(QueryParamError); reason != "" {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingAuthCode, reason)
	}
	return "", domain.ErrMissingAuthCode
}

func verifyState(expected, got string) error {
	if !stateMatches(expected, got) {
		return domain.ErrInvalidState
	}
	return nil
}

// rejectCallback answers a failed callback in plain text and records the outcome
func rejectCallback(w http.ResponseWriter, err error) {
	status, msg := mapCallbackError(err)
	outcome := metrics.OutcomeFailure
	if status == http.StatusBadRequest {
		outcome = metrics.OutcomeRejected
	}
	metrics.Logins.WithLabelValues(outcome).Inc()
	respondText(w, status, msg)
}

// mapCallbackError maps callback failures to status codes and messages
func mapCallbackError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingAuthCode):
		return http.StatusBadRequest, ErrMsgNoAuthCode
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusBadRequest, ErrMsgInvalidState
	case errors.Is(err, domain.ErrTokenDecode):
		return http.StatusInternalServerError, ErrMsgTokenDecode
	case errors.Is(err, domain.ErrAccessTokenMissing):
		return http.StatusInternalServerError, ErrMsgAccessTokenMissing
	default:
		return http.StatusBadGateway, ErrMsgUpstreamUnavailable
	}
}

func newState() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func stateMatches(expected, got string) bool {
	if expected == "" || got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}

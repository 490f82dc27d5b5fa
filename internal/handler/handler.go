package handler

import (
	"context"
	"net/http"

	"github.com/osse101/GudGuns_Go/internal/bungie"
	"github.com/osse101/GudGuns_Go/internal/domain"
	"github.com/osse101/GudGuns_Go/internal/logger"
	"github.com/osse101/GudGuns_Go/internal/session"
)

// Platform is the Bungie.net API surface used by the handlers
type Platform interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*domain.Token, error)
	ResolveMembership(ctx context.Context, tok domain.Token) (*domain.Membership, error)
	GetMemberships(ctx context.Context, tok domain.Token) (*bungie.RawResponse, error)
	GetProfile(ctx context.Context, tok domain.Token, membershipType int, membershipID string, components ...int) (*bungie.RawResponse, error)
}

// Sessions loads and persists browser sessions
type Sessions interface {
	Load(r *http.Request) (*session.Session, error)
	Save(w http.ResponseWriter, r *http.Request, s *session.Session) error
	Destroy(w http.ResponseWriter, r *http.Request) error
}

// CredentialedHandler serves a request on behalf of the signed-in user
type CredentialedHandler func(w http.ResponseWriter, r *http.Request, creds domain.Credentials)

// WithCredentials resolves the caller's credentials from their session and
// hands them to next. Anonymous callers are sent to the home page.
func WithCredentials(sessions Sessions, next CredentialedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := sessions.Load(r)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgSessionLoadFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgSessionUnavailable)
			return
		}

		creds, ok := s.Credentials()
		if !ok {
			http.Redirect(w, r, PathHome, http.StatusFound)
			return
		}
		next(w, r, creds)
	}
}

package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GudGuns_Go/internal/domain"
)

// ErrSessionNotFound is returned by stores for unknown or expired ids
var ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

// Session is the server-side state behind a browser cookie
type Session struct {
	ID         string             `json:"id"`
	Token      *domain.Token      `json:"token,omitempty"`
	Membership *domain.Membership `json:"membership,omitempty"`
	// State is the pending OAuth state, cleared once the callback consumes it
	State     string    `json:"state,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates an unsaved session with a fresh random id
func New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// Authenticated reports whether the session holds a usable token
func (s *Session) Authenticated() bool {
	return s != nil && s.Token.Valid()
}

// Credentials returns the token and membership to act with
func (s *Session) Credentials() (domain.Credentials, bool) {
	if !s.Authenticated() {
		return domain.Credentials{}, false
	}
	return domain.Credentials{Token: *s.Token, Membership: s.Membership}, true
}

// Login records a freshly exchanged token, dropping any previous identity
func (s *Session) Login(tok *domain.Token, m *domain.Membership) {
	s.Token = tok
	s.Membership = m
	s.State = ""
}

// Store persists sessions by id
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

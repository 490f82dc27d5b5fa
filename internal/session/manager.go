package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/GudGuns_Go/internal/logger"
)

// claims is the signed cookie payload. Subject is the session id.
type claims struct {
	jwt.RegisteredClaims
}

// ManagerConfig configures cookie signing
type ManagerConfig struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
	// Secure marks the cookie HTTPS-only
	Secure bool
}

// Manager maps request cookies to stored sessions
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
	issuer string
	secure bool
}

// NewManager creates a cookie manager backed by store
func NewManager(store Store, cfg ManagerConfig) (*Manager, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New(ErrMsgEmptySecret)
	}
	return &Manager{
		store:  store,
		secret: cfg.Secret,
		ttl:    cfg.TTL,
		issuer: cfg.Issuer,
		secure: cfg.Secure,
	}, nil
}

// Load returns the request's session. A missing, forged, expired or stale
// cookie yields a fresh unsaved session; only store failures are errors.
func (m *Manager) Load(r *http.Request) (*Session, error) {
	ctx := r.Context()

	id, err := m.sessionID(r)
	if err != nil {
		if !errors.Is(err, http.ErrNoCookie) {
			logger.FromContext(ctx).Warn(LogMsgInvalidCookie, "error", err)
		}
		return New(), nil
	}

	s, err := m.store.Get(ctx, id)
	if errors.Is(err, ErrSessionNotFound) {
		logger.FromContext(ctx).Debug(LogMsgStaleSession)
		return New(), nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Save persists s and (re)issues its cookie
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	if err := m.store.Save(r.Context(), s); err != nil {
		return err
	}

	signed, err := m.sign(s.ID, time.Now())
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     CookiePath,
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Destroy deletes the request's session and expires its cookie
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     CookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})

	id, err := m.sessionID(r)
	if err != nil {
		return nil
	}
	return m.store.Delete(r.Context(), id)
}

func (m *Manager) sign(id string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgSignFailed, err)
	}
	return signed, nil
}

func (m *Manager) sessionID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}
	return m.parse(cookie.Value)
}

func (m *Manager) parse(value string) (string, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(value, c,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(m.issuer),
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgInvalidCookie, err)
	}
	if !token.Valid || c.Subject == "" {
		return "", errors.New(ErrMsgInvalidCookie)
	}
	return c.Subject, nil
}

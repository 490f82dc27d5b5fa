package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GudGuns_Go/internal/bungie"
	"github.com/osse101/GudGuns_Go/internal/domain"
	"github.com/osse101/GudGuns_Go/internal/session"
)

// MockPlatform mocks the Platform interface
type MockPlatform struct {
	mock.Mock
}

func (m *MockPlatform) AuthCodeURL(state string) string {
	return m.Called(state).String(0)
}

func (m *MockPlatform) Exchange(ctx context.Context, code string) (*domain.Token, error) {
	args := m.Called(ctx, code)
	tok, _ := args.Get(0).(*domain.Token)
	return tok, args.Error(1)
}

func (m *MockPlatform) ResolveMembership(ctx context.Context, tok domain.Token) (*domain.Membership, error) {
	args := m.Called(ctx, tok)
	mem, _ := args.Get(0).(*domain.Membership)
	return mem, args.Error(1)
}

func (m *MockPlatform) GetMemberships(ctx context.Context, tok domain.Token) (*bungie.RawResponse, error) {
	args := m.Called(ctx, tok)
	raw, _ := args.Get(0).(*bungie.RawResponse)
	return raw, args.Error(1)
}

func (m *MockPlatform) GetProfile(ctx context.Context, tok domain.Token, membershipType int, membershipID string, components ...int) (*bungie.RawResponse, error) {
	args := m.Called(ctx, tok, membershipType, membershipID, components)
	raw, _ := args.Get(0).(*bungie.RawResponse)
	return raw, args.Error(1)
}

// failingSessions simulates unavailable session storage
type failingSessions struct{}

func (failingSessions) Load(*http.Request) (*session.Session, error) {
	return nil, errSessionsDown
}

func (failingSessions) Save(http.ResponseWriter, *http.Request, *session.Session) error {
	return errSessionsDown
}

func (failingSessions) Destroy(http.ResponseWriter, *http.Request) error {
	return errSessionsDown
}

var errSessionsDown = errors.New("session store down")

func newTestSessions(t *testing.T) (*session.Manager, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore(100, time.Hour)
	mgr, err := session.NewManager(store, session.ManagerConfig{Secret: []byte("test-secret"), TTL: time.Hour, Issuer: "gudguns"})
	require.NoError(t, err)
	return mgr, store
}

// withSession saves s and returns a request to target carrying its cookie
func withSession(t *testing.T, mgr *session.Manager, s *session.Session, target string) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, httptest.NewRequest(http.MethodGet, "/", nil), s))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// loggedIn returns a request from a signed-in user
func loggedIn(t *testing.T, mgr *session.Manager, target string, m *domain.Membership) *http.Request {
	t.Helper()
	s := session.New()
	s.Login(&domain.Token{AccessToken: "abc", Raw: map[string]any{"access_token": "abc", "membership_id": "987"}}, m)
	return withSession(t, mgr, s, target)
}

func rawJSON(status int, body string) *bungie.RawResponse {
	return &bungie.RawResponse{StatusCode: status, Body: []byte(body)}
}

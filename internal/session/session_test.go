package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GudGuns_Go/internal/domain"
)

const testSecret = "test-secret"

func newTestManager(t *testing.T, store Store) *Manager {
	t.Helper()
	m, err := NewManager(store, ManagerConfig{Secret: []byte(testSecret), TTL: time.Hour, Issuer: "gudguns"})
	require.NoError(t, err)
	return m
}

// roundTrip saves s and returns a request carrying the issued cookie
func roundTrip(t *testing.T, m *Manager, s *Session) *http.Request {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, httptest.NewRequest(http.MethodGet, "/", nil), s))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSession_Credentials(t *testing.T) {
	s := New()
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.Authenticated())
	_, ok := s.Credentials()
	assert.False(t, ok)

	s.State = "pending"
	s.Login(&domain.Token{AccessToken: "abc"}, &domain.Membership{MembershipType: 3, MembershipID: "1"})
	assert.Empty(t, s.State)

	creds, ok := s.Credentials()
	require.True(t, ok)
	assert.Equal(t, "abc", creds.Token.AccessToken)
	assert.Equal(t, "1", creds.Membership.MembershipID)

	var nilSession *Session
	assert.False(t, nilSession.Authenticated())
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10, time.Hour)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s := New()
	s.State = "abc"
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.State)

	// Stored value is a copy
	got.State = "changed"
	again, _ := store.Get(ctx, s.ID)
	assert.Equal(t, "abc", again.State)

	require.NoError(t, store.Delete(ctx, s.ID))
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(2, time.Hour)

	first, second, third := New(), New(), New()
	for _, s := range []*Session{first, second, third} {
		require.NoError(t, store.Save(ctx, s))
	}

	assert.Equal(t, 2, store.Len())
	_, err := store.Get(ctx, first.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_Expires(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10, 20*time.Millisecond)

	s := New()
	require.NoError(t, store.Save(ctx, s))

	assert.Eventually(t, func() bool {
		_, err := store.Get(ctx, s.ID)
		return err != nil
	}, time.Second, 10*time.Millisecond)
}

func TestNewManager_EmptySecret(t *testing.T) {
	_, err := NewManager(NewMemoryStore(1, time.Hour), ManagerConfig{})
	assert.Error(t, err)
}

func TestManager_SaveAndLoad(t *testing.T) {
	m := newTestManager(t, NewMemoryStore(10, time.Hour))

	s := New()
	s.Login(&domain.Token{AccessToken: "abc"}, nil)
	req := roundTrip(t, m, s)

	cookie, err := req.Cookie(CookieName)
	require.NoError(t, err)
	assert.NotContains(t, cookie.Value, "abc", "token must not travel in the cookie")

	loaded, err := m.Load(req)
	require.NoError(t, err)
	assert.Equal(t, s.ID, loaded.ID)
	assert.True(t, loaded.Authenticated())
}

func TestManager_SaveSetsCookieAttributes(t *testing.T) {
	m := newTestManager(t, NewMemoryStore(10, time.Hour))

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, httptest.NewRequest(http.MethodGet, "/", nil), New()))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestManager_LoadFallsBackToFreshSession(t *testing.T) {
	store := NewMemoryStore(10, time.Hour)
	m := newTestManager(t, store)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "someone-else",
		Issuer:    "gudguns",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	expired, err := m.sign("old", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	unknown, err := m.sign("not-in-store", time.Now())
	require.NoError(t, err)

	tests := map[string]string{
		"garbage": "not-a-jwt",
		"forged":  forged,
		"expired": expired,
		"unknown": unknown,
	}

	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: CookieName, Value: value})

			s, err := m.Load(req)
			require.NoError(t, err)
			assert.False(t, s.Authenticated())
			assert.NotEqual(t, "someone-else", s.ID)
			assert.NotEqual(t, "not-in-store", s.ID)
		})
	}

	t.Run("no cookie", func(t *testing.T) {
		s, err := m.Load(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, s.ID)
	})
}

func TestManager_Destroy(t *testing.T) {
	store := NewMemoryStore(10, time.Hour)
	m := newTestManager(t, store)

	s := New()
	req := roundTrip(t, m, s)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Destroy(rec, req))

	_, err := store.Get(context.Background(), s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0)

	// Without a cookie there is nothing to delete
	assert.NoError(t, m.Destroy(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)))
}

package bungie

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GudGuns_Go/internal/domain"
)

const (
	testAPIKey = "test-api-key"
	testToken  = "test-access-token"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:      srv.URL + "/",
		APIKey:       testAPIKey,
		ClientID:     "12345",
		ClientSecret: "shh",
		RedirectURI:  "https://localhost:5000/oauth_callback",
		Timeout:      5 * time.Second,
	})
}

func TestGetProfile_SendsHeadersAndComponents(t *testing.T) {
	var got *http.Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", MediaTypeJSON)
		w.Write([]byte(`{"Response":{}}`))
	})

	raw, err := c.GetProfile(context.Background(), domain.Token{AccessToken: testToken}, 3, "4611686018540653658",
		domain.ComponentProfileInventories, domain.ComponentItemStats)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, raw.StatusCode)
	assert.JSONEq(t, `{"Response":{}}`, string(raw.Body))

	require.NotNil(t, got)
	assert.Equal(t, "/Platform/Destiny2/3/Profile/4611686018540653658/", got.URL.Path)
	assert.Equal(t, "102,304", got.URL.Query().Get("components"))
	assert.Equal(t, testAPIKey, got.Header.Get(HeaderAPIKey))
	assert.Equal(t, "Bearer "+testToken, got.Header.Get(HeaderAuthorization))
	assert.Equal(t, MediaTypeJSON, got.Header.Get(HeaderAccept))
}

func TestGetProfile_NoComponents(t *testing.T) {
	var query url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	_, err := c.GetProfile(context.Background(), domain.Token{AccessToken: testToken}, 1, "42")
	require.NoError(t, err)
	assert.Empty(t, query.Get("components"))
}

func TestGetMemberships_PassesThroughErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathMemberships, r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ErrorCode":99,"Message":"Unauthorized"}`))
	})

	raw, err := c.GetMemberships(context.Background(), domain.Token{AccessToken: testToken})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, raw.StatusCode)
	assert.Contains(t, string(raw.Body), "Unauthorized")
}

func TestGet_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := NewClient(Config{BaseURL: base, Timeout: time.Second})
	_, err := c.GetMemberships(context.Background(), domain.Token{AccessToken: testToken})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestGet_BodyLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":{"padding":"0123456789"}}`))
	})

	t.Run("exactly at the limit", func(t *testing.T) {
		c.maxBody = int64(len(`{"Response":{"padding":"0123456789"}}`))
		raw, err := c.GetMemberships(context.Background(), domain.Token{AccessToken: testToken})
		require.NoError(t, err)
		assert.Len(t, raw.Body, int(c.maxBody))
	})

	t.Run("over the limit", func(t *testing.T) {
		c.maxBody = 16
		raw, err := c.GetMemberships(context.Background(), domain.Token{AccessToken: testToken})
		assert.Nil(t, raw)
		assert.ErrorIs(t, err, domain.ErrUpstreamTooLarge)
	})
}

func TestResolveMembership(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":{"destinyMemberships":[
			{"membershipType":1,"membershipId":"111","displayName":"xbox"},
			{"membershipType":3,"membershipId":"333","displayName":"steam"}
		],"primaryMembershipId":"333"}}`))
	})

	m, err := c.ResolveMembership(context.Background(), domain.Token{AccessToken: testToken})
	require.NoError(t, err)
	assert.Equal(t, domain.Membership{MembershipType: 3, MembershipID: "333", DisplayName: "steam"}, *m)
}

func TestResolveMembership_Errors(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>maintenance</html>`))
		})
		_, err := c.ResolveMembership(context.Background(), domain.Token{AccessToken: testToken})
		assert.ErrorIs(t, err, domain.ErrUpstreamDecode)
	})

	t.Run("no memberships", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Response":{"destinyMemberships":[]}}`))
		})
		_, err := c.ResolveMembership(context.Background(), domain.Token{AccessToken: testToken})
		assert.ErrorIs(t, err, domain.ErrMembershipNotFound)
	})
}

package bungie

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/osse101/GudGuns_Go/internal/domain"
	"github.com/osse101/GudGuns_Go/internal/logger"
	"github.com/osse101/GudGuns_Go/internal/metrics"
)

// tokenKeys are the token response fields copied into Token.Raw
var tokenKeys = []string{
	"access_token",
	"token_type",
	TokenKeyExpiresIn,
	"refresh_token",
	TokenKeyRefreshExpiresIn,
	TokenKeyMembershipID,
}

// AuthCodeURL returns the platform authorize URL carrying state
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for a token.
// It returns domain.ErrTokenDecode when the token endpoint does not answer
// with JSON and domain.ErrAccessTokenMissing when the payload has no access token.
func (c *Client) Exchange(ctx context.Context, code string) (*domain.Token, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	rec := &bodyRecorder{base: c.http.Transport}
	hc := &http.Client{Transport: rec, Timeout: c.http.Timeout}

	tok, err := c.oauth.Exchange(context.WithValue(ctx, oauth2.HTTPClient, hc), code)
	if err != nil {
		metrics.ObserveUpstream(EndpointToken, retrieveStatus(err), start)
		mapped := mapExchangeError(err, rec.body)
		log.Error(LogMsgTokenExchangeErr, "error", err, "mapped", mapped)
		return nil, fmt.Errorf("%w: %w", mapped, err)
	}
	metrics.ObserveUpstream(EndpointToken, http.StatusOK, start)

	// x/oauth2 also accepts form-encoded tokens; the platform only speaks JSON
	if !json.Valid(rec.body) {
		log.Error(LogMsgTokenExchangeErr, "error", ErrMsgTokenNotJSON, "mapped", domain.ErrTokenDecode)
		return nil, fmt.Errorf("%w: %s", domain.ErrTokenDecode, ErrMsgTokenNotJSON)
	}

	out := &domain.Token{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
		Raw:          make(map[string]any, len(tokenKeys)),
	}
	for _, key := range tokenKeys {
		if v := tok.Extra(key); v != nil {
			out.Raw[key] = v
		}
	}
	if id, ok := tok.Extra(TokenKeyMembershipID).(string); ok {
		out.MembershipID = id
	}

	log.Info(LogMsgTokenExchanged, "membership_id", out.MembershipID, "expiry", out.Expiry)
	return out, nil
}

// mapExchangeError sorts x/oauth2 failures into the token error taxonomy.
// body is the token endpoint response as read off the wire, nil when none arrived.
func mapExchangeError(err error, body []byte) error {
	var rErr *oauth2.RetrieveError
	switch {
	case errors.As(err, &rErr):
		// The platform rejected the code; a JSON error body simply lacks the token
		if json.Valid(rErr.Body) {
			return domain.ErrAccessTokenMissing
		}
		return domain.ErrTokenDecode
	case body != nil && !json.Valid(body):
		return domain.ErrTokenDecode
	case strings.Contains(err.Error(), "missing access_token"):
		return domain.ErrAccessTokenMissing
	case strings.Contains(err.Error(), "cannot parse json"):
		return domain.ErrTokenDecode
	default:
		return domain.ErrUpstreamUnavailable
	}
}

func retrieveStatus(err error) int {
	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) && rErr.Response != nil {
		return rErr.Response.StatusCode
	}
	return 0
}

// bodyRecorder keeps a copy of the token endpoint response so failures can be
// classified by what was actually sent rather than by the parser x/oauth2 picked.
type bodyRecorder struct {
	base http.RoundTripper
	body []byte
}

func (b *bodyRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	base := b.base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenResponseBytes))
	if err != nil {
		return nil, err
	}
	b.body = body
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}

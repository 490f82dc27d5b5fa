package bungie

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/osse101/GudGuns_Go/internal/domain"
	"github.com/osse101/GudGuns_Go/internal/logger"
	"github.com/osse101/GudGuns_Go/internal/metrics"
)

// Config holds the Bungie.net application settings
type Config struct {
	BaseURL      string
	APIKey       string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Timeout      time.Duration
}

// Client talks to the Bungie.net platform on behalf of a signed-in user.
// Calls are never retried.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	oauth   *oauth2.Config
	maxBody int64
}

// NewClient creates a new platform client
func NewClient(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		maxBody: maxResponseBytes,
		http:    &http.Client{Timeout: cfg.Timeout},
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint: oauth2.Endpoint{
				AuthURL:   base + PathAuthorize,
				TokenURL:  base + PathToken,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}
}

// RawResponse is an upstream reply kept verbatim so it can be passed through
// or reported when it fails to decode.
type RawResponse struct {
	StatusCode int
	Body       []byte
}

// GetMemberships lists the platform memberships of the token's owner
func (c *Client) GetMemberships(ctx context.Context, tok domain.Token) (*RawResponse, error) {
	return c.get(ctx, EndpointMemberships, PathMemberships, tok)
}

// GetProfile fetches a Destiny profile with the given component selectors
func (c *Client) GetProfile(ctx context.Context, tok domain.Token, membershipType int, membershipID string, components ...int) (*RawResponse, error) {
	path := fmt.Sprintf(PathProfileFmt, membershipType, membershipID)
	if len(components) > 0 {
		parts := make([]string, len(components))
		for i, comp := range components {
			parts[i] = strconv.Itoa(comp)
		}
		path += "?components=" + strings.Join(parts, ",")
	}
	return c.get(ctx, EndpointProfile, path, tok)
}

func (c *Client) get(ctx context.Context, endpoint, path string, tok domain.Token) (*RawResponse, error) {
	log := logger.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set(HeaderAuthorization, "Bearer "+tok.AccessToken)
	req.Header.Set(HeaderAccept, MediaTypeJSON)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream(endpoint, 0, start)
		log.Error(LogMsgUpstreamFailed, "endpoint", endpoint, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrUpstreamUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	// One byte past the limit tells a full body from a truncated one
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	metrics.ObserveUpstream(endpoint, resp.StatusCode, start)
	if err != nil {
		log.Error(LogMsgUpstreamFailed, "endpoint", endpoint, "status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("%w: reading %s body: %w", domain.ErrUpstreamUnavailable, endpoint, err)
	}
	if int64(len(body)) > c.maxBody {
		log.Error(LogMsgUpstreamTooLarge, "endpoint", endpoint, "status", resp.StatusCode, "limit_bytes", c.maxBody)
		return nil, fmt.Errorf("%w: %s body exceeds %d bytes", domain.ErrUpstreamTooLarge, endpoint, c.maxBody)
	}

	log.Info(LogMsgUpstreamRequest,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start))

	return &RawResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

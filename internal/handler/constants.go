package handler

import "time"

// Response headers and media types
const (
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
	ContentTypeText   = "text/plain; charset=utf-8"
	ContentTypeHTML   = "text/html; charset=utf-8"
)

// Routes referenced by redirects
const (
	PathHome = "/"
)

// Query parameters of the OAuth callback
const (
	QueryParamCode  = "code"
	QueryParamState = "state"
	QueryParamError = "error"
)

// stateBytes is the entropy of the OAuth state parameter
const stateBytes = 32

// Health endpoint values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgMemorySessions = "sessions held in memory"
	HealthMsgSessionDBDown  = "session database unreachable"
)

// maxResponseTextBytes caps the upstream body echoed in decode error payloads
const maxResponseTextBytes = 4 << 10

// readinessTimeout bounds the readiness ping
const readinessTimeout = 2 * time.Second

// User-facing messages. The callback messages are plain text.
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgNoAuthCode          = "Error: No authorization code received."
	ErrMsgInvalidState        = "Error: Invalid OAuth state."
	ErrMsgTokenDecode         = "Token JSON decoding error"
	ErrMsgAccessTokenMissing  = "Authorization failed: access token missing"
	ErrMsgUpstreamDecode      = "Failed to decode JSON from Bungie response"
	ErrMsgUpstreamUnavailable = "Bungie.net is unavailable. Please try again later."
	ErrMsgUpstreamTooLarge    = "Bungie.net response was too large"
	ErrMsgSessionUnavailable  = "Session storage is unavailable"
	ErrMsgRenderFailed        = "Failed to render page"
)

// Log messages
const (
	LogMsgCallbackParams      = "OAuth callback received"
	LogMsgNoAuthCode          = "No authorization code received"
	LogMsgStateMismatch       = "OAuth state mismatch"
	LogMsgLoginSucceeded      = "User logged in"
	LogMsgMembershipFallback  = "Could not resolve membership, using configured default"
	LogMsgSessionLoadFailed   = "Failed to load session"
	LogMsgSessionSaveFailed   = "Failed to save session"
	LogMsgUpstreamDecodeError = "Failed to decode Bungie response"
	LogMsgUpstreamStatus      = "Bungie returned an error status"
	LogMsgVaultItems          = "Found vault items"
	LogMsgWeaponsExtracted    = "Extracted weapon items"
	LogMsgRenderFailed        = "Failed to render inventory view"
	LogMsgReadinessFailed     = "Readiness check failed"
)

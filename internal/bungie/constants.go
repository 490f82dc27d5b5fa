package bungie

// Platform paths, relative to the configured base URL
const (
	PathAuthorize   = "/en/OAuth/Authorize"
	PathToken       = "/platform/app/oauth/token/"
	PathMemberships = "/Platform/User/GetMembershipsForCurrentUser/"
	PathProfileFmt  = "/Platform/Destiny2/%d/Profile/%s/"
)

// HTTP header names
const (
	HeaderAPIKey        = "X-API-Key"
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	MediaTypeJSON       = "application/json"
)

// Endpoint labels for metrics and logs
const (
	EndpointToken       = "token"
	EndpointMemberships = "memberships"
	EndpointProfile     = "profile"
)

// Token response keys that are not part of the standard OAuth payload
const (
	TokenKeyMembershipID     = "membership_id"
	TokenKeyExpiresIn        = "expires_in"
	TokenKeyRefreshExpiresIn = "refresh_expires_in"
)

// maxResponseBytes bounds how much of an upstream body is read
const maxResponseBytes = 64 << 20

// maxTokenResponseBytes mirrors the cap x/oauth2 applies to token bodies
const maxTokenResponseBytes = 1 << 20

// Log messages
const (
	LogMsgUpstreamRequest  = "Bungie request completed"
	LogMsgUpstreamFailed   = "Bungie request failed"
	LogMsgUpstreamTooLarge = "Bungie response exceeds read limit"
	LogMsgTokenExchanged   = "OAuth token exchanged"
	LogMsgTokenExchangeErr = "OAuth token exchange failed"
)

// Error messages
const (
	ErrMsgTokenNotJSON = "token response is not JSON"
)

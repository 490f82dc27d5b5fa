package domain

import "errors"

// Error message string constants
const (
	ErrMsgTokenDecode         = "token JSON decoding error"
	ErrMsgAccessTokenMissing  = "access token missing"
	ErrMsgUpstreamDecode      = "failed to decode JSON from Bungie response"
	ErrMsgUpstreamUnavailable = "upstream request failed"
	ErrMsgUpstreamTooLarge    = "upstream response too large"
	ErrMsgMissingAuthCode     = "no authorization code received"
	ErrMsgInvalidState        = "invalid oauth state"
	ErrMsgMembershipNotFound  = "no destiny membership found"
)

var (
	// ErrTokenDecode is returned when the token endpoint body is not JSON
	ErrTokenDecode = errors.New(ErrMsgTokenDecode)
	// ErrAccessTokenMissing is returned when the token payload has no access token
	ErrAccessTokenMissing = errors.New(ErrMsgAccessTokenMissing)
	// ErrUpstreamDecode is returned when a platform response body is not JSON
	ErrUpstreamDecode = errors.New(ErrMsgUpstreamDecode)
	// ErrUpstreamUnavailable is returned when the platform could not be reached
	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)

	// ErrUpstreamTooLarge is returned when a platform response exceeds the read limit
	ErrUpstreamTooLarge = errors.New(ErrMsgUpstreamTooLarge)

	ErrMissingAuthCode    = errors.New(ErrMsgMissingAuthCode)
	ErrInvalidState       = errors.New(ErrMsgInvalidState)
	ErrMembershipNotFound = errors.New(ErrMsgMembershipNotFound)
)

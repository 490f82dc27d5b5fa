package session

import "time"

// Cookie settings
const (
	CookieName = "gudguns_session"
	CookiePath = "/"
)

// DefaultCleanupInterval is how often expired rows are purged from Postgres
const DefaultCleanupInterval = 15 * time.Minute

// Error messages
const (
	ErrMsgSessionNotFound = "session not found"
	ErrMsgInvalidCookie   = "invalid session cookie"
	ErrMsgEmptySecret     = "session secret must not be empty"
	ErrMsgSaveFailed      = "failed to save session"
	ErrMsgLoadFailed      = "failed to load session"
	ErrMsgDeleteFailed    = "failed to delete session"
	ErrMsgSignFailed      = "failed to sign session cookie"
)

// Log messages
const (
	LogMsgInvalidCookie  = "Discarding invalid session cookie"
	LogMsgStaleSession   = "Session cookie refers to unknown session"
	LogMsgSessionsPruned = "Expired sessions pruned"
	LogMsgPruneFailed    = "Failed to prune expired sessions"
)

package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedLogin = "SECURITY ALERT: Repeated failed login callbacks"
	SecurityAlertHighRate    = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgLoginRejected    = "Login callback rejected"
	LogMsgDebugRoutes      = "Debug routes enabled"
)

// HTTP header names
const (
	HeaderAPIKey             = "X-API-Key"
	HeaderAuthorization      = "Authorization"
	HeaderCookie             = "Cookie"
	HeaderForwardedFor       = "X-Forwarded-For"
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderXSSProtection      = "X-XSS-Protection"
	HeaderReferrerPolicy     = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Header redaction marker
const RedactedValue = "[REDACTED]"

// QuietPaths are not logged per request
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Rate limiting
const (
	rateWindow         = 5 * time.Minute
	maxRequestsPerIP   = 1000
	failedLoginAlertAt = 5
	rateLogEvery       = 100
)

// Server limits
const (
	maxRequestBytes   = 1 << 20
	readHeaderTimeout = 5 * time.Second
)

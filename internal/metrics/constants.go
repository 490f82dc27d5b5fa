package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Upstream metric names
const (
	MetricNameUpstreamRequestsTotal   = "bungie_requests_total"
	MetricNameUpstreamRequestDuration = "bungie_request_duration_seconds"
)

// Business metric names
const (
	MetricNameWeaponsExtracted    = "weapons_extracted_total"
	MetricNameVaultItemsProcessed = "vault_items_processed_total"
	MetricNameManifestDefinitions = "manifest_definitions"
	MetricNameLogins              = "logins_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Upstream metric help text
const (
	HelpTextUpstreamRequestsTotal   = "Total number of requests made to the Bungie.net API"
	HelpTextUpstreamRequestDuration = "Bungie.net API latency in seconds"
)

// Business metric help text
const (
	HelpTextWeaponsExtracted    = "Total number of enriched weapon records returned"
	HelpTextVaultItemsProcessed = "Total number of vault items run through weapon extraction"
	HelpTextManifestDefinitions = "Number of item definitions loaded from the manifest"
	HelpTextLogins              = "Total number of OAuth callbacks by outcome"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelEndpoint = "endpoint"
	LabelOutcome  = "outcome"
)

// Label values
const (
	StatusError     = "error"
	PathUnmatched   = "unmatched"
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeRejected = "rejected"
)

// HTTPLatencyBuckets defines histogram buckets for request latency in seconds
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// UpstreamLatencyBuckets covers the slower profile calls
var UpstreamLatencyBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30}

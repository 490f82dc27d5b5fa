package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Upstream Metrics
var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpstreamRequestsTotal,
			Help: HelpTextUpstreamRequestsTotal,
		},
		[]string{LabelEndpoint, LabelStatus},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameUpstreamRequestDuration,
			Help:    HelpTextUpstreamRequestDuration,
			Buckets: UpstreamLatencyBuckets,
		},
		[]string{LabelEndpoint},
	)
)

// Business Metrics
var (
	WeaponsExtracted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWeaponsExtracted,
			Help: HelpTextWeaponsExtracted,
		},
	)

	VaultItemsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameVaultItemsProcessed,
			Help: HelpTextVaultItemsProcessed,
		},
	)

	ManifestDefinitions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameManifestDefinitions,
			Help: HelpTextManifestDefinitions,
		},
	)

	Logins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLogins,
			Help: HelpTextLogins,
		},
		[]string{LabelOutcome},
	)
)

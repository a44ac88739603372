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

// Calculator Metrics
var (
	XPPlansComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPPlansComputed,
			Help: HelpTextXPPlansComputed,
		},
		[]string{LabelTier},
	)

	CrystalEstimatesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCrystalEstimatesComputed,
			Help: HelpTextCrystalEstimatesComputed,
		},
		[]string{LabelSlot},
	)

	EstimateCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEstimateCacheHits,
			Help: HelpTextEstimateCacheHits,
		},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameValidationFailures,
			Help: HelpTextValidationFailures,
		},
		[]string{LabelKind},
	)
)

// Discord Metrics
var (
	DiscordCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDiscordCommands,
			Help: HelpTextDiscordCommands,
		},
		[]string{LabelCommand, LabelResult},
	)
)

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

// Calculator metric names
const (
	MetricNameXPPlansComputed          = "xp_plans_total"
	MetricNameCrystalEstimatesComputed = "crystal_estimates_total"
	MetricNameEstimateCacheHits        = "estimate_cache_hits_total"
	MetricNameValidationFailures       = "validation_failures_total"
)

// Discord metric names
const (
	MetricNameDiscordCommands = "discord_commands_total"
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

// Calculator metric help text
const (
	HelpTextXPPlansComputed          = "Total number of potion plans computed"
	HelpTextCrystalEstimatesComputed = "Total number of crystal estimates computed"
	HelpTextEstimateCacheHits        = "Total number of estimates served from the row cache"
	HelpTextValidationFailures       = "Total number of rejected calculator inputs"
)

// Discord metric help text
const (
	HelpTextDiscordCommands = "Total number of Discord slash commands handled"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelTier    = "tier"
	LabelSlot    = "slot"
	LabelKind    = "kind"
	LabelCommand = "command"
	LabelResult  = "result"
)

// Values for LabelResult
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

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

// Catalog metric names
const (
	MetricNameCatalogQueries      = "catalog_queries_total"
	MetricNameCatalogCacheLookups = "catalog_cache_lookups_total"
	MetricNameSearchesPerformed   = "searches_performed_total"
	MetricNamePlannerSummaries    = "planner_summaries_total"
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

// Catalog metric help text
const (
	HelpTextCatalogQueries      = "Total number of catalog queries by entity and outcome"
	HelpTextCatalogCacheLookups = "Total number of catalog cache lookups by result"
	HelpTextSearchesPerformed   = "Total number of global searches performed"
	HelpTextPlannerSummaries    = "Total number of planner summaries computed"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelEntity  = "entity"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// Catalog query outcomes
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeDecode   = "decode_error"
	OutcomeError    = "error"
)

// Cache lookup results
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// UnmatchedRoute labels requests that no route handled
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

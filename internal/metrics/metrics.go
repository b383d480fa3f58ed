package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/ValleyCompanion_Go/internal/domain"
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

// Catalog Metrics
var (
	CatalogQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogQueries,
			Help: HelpTextCatalogQueries,
		},
		[]string{LabelEntity, LabelOutcome},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheLookups,
			Help: HelpTextCatalogCacheLookups,
		},
		[]string{LabelResult},
	)

	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSearchesPerformed,
			Help: HelpTextSearchesPerformed,
		},
	)

	PlannerSummaries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlannerSummaries,
			Help: HelpTextPlannerSummaries,
		},
	)
)

// QueryOutcome classifies a catalog error into an outcome label value
func QueryOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrNPCNotFound), errors.Is(err, domain.ErrCropNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrDecode):
		return OutcomeDecode
	default:
		return OutcomeError
	}
}

// RecordCatalogQuery counts one catalog call for entity
func RecordCatalogQuery(entity string, err error) {
	CatalogQueries.WithLabelValues(entity, QueryOutcome(err)).Inc()
}

// RecordCacheLookup counts one cache lookup
func RecordCacheLookup(hit bool) {
	if hit {
		CatalogCacheLookups.WithLabelValues(CacheHit).Inc()
		return
	}
	CatalogCacheLookups.WithLabelValues(CacheMiss).Inc()
}

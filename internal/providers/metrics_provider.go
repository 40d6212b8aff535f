package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"surveyd/internal/structures"
	"surveyd/internal/survey/interfaces"
)

// Submission result labels.
const (
	ResultAccepted = "accepted"
	ResultInvalid  = "invalid"
	ResultFailed   = "failed"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncSubmissions(result string)
	IncDuplicateSubmissions()
	ObserveAppendDuration(duration time.Duration)
	IncJournalRotations()
	IncCacheHits()
	IncCacheMisses()
}

type MetricsProvider struct {
	requestsTotal        *prometheus.CounterVec
	requestDuration      *prometheus.HistogramVec
	submissionsTotal     *prometheus.CounterVec
	duplicateSubmissions prometheus.Counter
	appendDuration       prometheus.Histogram
	journalRotations     prometheus.Counter
	cacheHits            prometheus.Counter
	cacheMisses          prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncSubmissions(result string) {
	m.submissionsTotal.WithLabelValues(result).Inc()
}

func (m *MetricsProvider) IncDuplicateSubmissions() {
	m.duplicateSubmissions.Inc()
}

func (m *MetricsProvider) ObserveAppendDuration(duration time.Duration) {
	m.appendDuration.Observe(duration.Seconds())
}

func (m *MetricsProvider) IncJournalRotations() {
	m.journalRotations.Inc()
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, journal interfaces.JournalInterface) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	m := &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "surveyd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "surveyd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		submissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "surveyd_submissions_total",
			Help: "Total number of processed survey submissions by result",
		}, []string{"result"}),

		duplicateSubmissions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "surveyd_duplicate_submissions_total",
			Help: "Total number of submissions whose submission_id was already seen within the dedup window",
		}),

		appendDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "surveyd_append_duration_seconds",
			Help:    "Duration of durable journal appends in seconds",
			Buckets: prometheus.DefBuckets,
		}),

		journalRotations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "surveyd_journal_rotations_total",
			Help: "Total number of journal rotations into cold storage",
		}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "surveyd_cache_hits_total",
			Help: "Total number of seen-id cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "surveyd_cache_misses_total",
			Help: "Total number of seen-id cache misses",
		}),
	}

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "surveyd_journal_records",
		Help: "Current number of records in the active journal",
	}, func() float64 {
		return float64(journal.Count())
	})

	return m
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncSubmissions(_ string)                          {}
func (n *noopMetrics) IncDuplicateSubmissions()                         {}
func (n *noopMetrics) ObserveAppendDuration(_ time.Duration)            {}
func (n *noopMetrics) IncJournalRotations()                             {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}

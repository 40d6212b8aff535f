package providers

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"surveyd/internal/models"
	"surveyd/internal/structures"
)

// --- minimal mock for JournalInterface ---

type metricsTestJournal struct{}

func (m *metricsTestJournal) Open() error                                    { return nil }
func (m *metricsTestJournal) Append(_ *models.StoredSurveyRecord) error      { return nil }
func (m *metricsTestJournal) Records() ([]*models.StoredSurveyRecord, error) { return nil, nil }
func (m *metricsTestJournal) Count() int64                                   { return 7 }
func (m *metricsTestJournal) Sync() error                                    { return nil }
func (m *metricsTestJournal) RotateIfOversized() (bool, error)               { return false, nil }
func (m *metricsTestJournal) Close() error                                   { return nil }

func TestNoopMetrics_WhenDisabled(t *testing.T) {
	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: false},
	}
	m := NewMetricsProvider(conf, &metricsTestJournal{})
	_, ok := m.(*noopMetrics)
	assert.True(t, ok, "should return noopMetrics when disabled")

	// Ensure no-op methods don't panic
	m.IncRequestsTotal("/test", 200)
	m.ObserveRequestDuration("/test", time.Millisecond)
	m.IncSubmissions(ResultAccepted)
	m.IncDuplicateSubmissions()
	m.ObserveAppendDuration(time.Millisecond)
	m.IncJournalRotations()
	m.IncCacheHits()
	m.IncCacheMisses()
}

func TestMetricsProvider_WhenEnabled(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestJournal{})
	_, ok := m.(*MetricsProvider)
	assert.True(t, ok, "should return MetricsProvider when enabled")
}

func TestMetricsProvider_IncrementCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defer func() {
		prometheus.DefaultRegisterer = prometheus.NewRegistry()
		prometheus.DefaultGatherer = prometheus.DefaultRegisterer.(prometheus.Gatherer)
	}()

	conf := &structures.Config{
		Metrics: structures.MetricsConfig{Enabled: true},
	}
	m := NewMetricsProvider(conf, &metricsTestJournal{})

	// These should not panic
	m.IncRequestsTotal("/v1/survey", 201)
	m.IncRequestsTotal("/v1/survey", 422)
	m.ObserveRequestDuration("/v1/survey", 5*time.Millisecond)
	m.IncSubmissions(ResultAccepted)
	m.IncSubmissions(ResultInvalid)
	m.IncDuplicateSubmissions()
	m.ObserveAppendDuration(100 * time.Microsecond)
	m.IncJournalRotations()
	m.IncCacheHits()
	m.IncCacheMisses()
}

func TestHttpStatusBucket(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{301, "3xx"},
		{400, "4xx"},
		{422, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, httpStatusBucket(tt.code))
	}
}

package testutil

import (
	"sync"
	"time"

	"surveyd/internal/models"
	"surveyd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockJournal implements interfaces.JournalInterface in memory.
type MockJournal struct {
	mu       sync.Mutex
	Appended []*models.StoredSurveyRecord
	FailWith error
}

func (m *MockJournal) Open() error { return nil }

func (m *MockJournal) Append(record *models.StoredSurveyRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.Appended = append(m.Appended, record)
	return nil
}

func (m *MockJournal) Records() ([]*models.StoredSurveyRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.StoredSurveyRecord, len(m.Appended))
	copy(out, m.Appended)
	return out, nil
}

func (m *MockJournal) Count() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.Appended))
}

func (m *MockJournal) Sync() error                      { return nil }
func (m *MockJournal) RotateIfOversized() (bool, error) { return false, nil }
func (m *MockJournal) Close() error                     { return nil }

// MockCache implements providers.CacheProviderInterface on a plain map.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu          sync.Mutex
	Requests    int
	Submissions map[string]int
	Duplicates  int
	Appends     int
	Rotations   int
	CacheHits   int
	CacheMisses int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}

func (m *MockMetrics) IncSubmissions(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Submissions == nil {
		m.Submissions = make(map[string]int)
	}
	m.Submissions[result]++
}

func (m *MockMetrics) IncDuplicateSubmissions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Duplicates++
}

func (m *MockMetrics) ObserveAppendDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Appends++
}

func (m *MockMetrics) IncJournalRotations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rotations++
}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

// MockCompressor is an identity compressor.
type MockCompressor struct {
	CompressCalls   int
	DecompressCalls int
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	m.CompressCalls++
	return val, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	m.DecompressCalls++
	return val, nil
}

func (m *MockCompressor) Close() {}

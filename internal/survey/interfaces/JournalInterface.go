package interfaces

import "surveyd/internal/models"

// JournalInterface is the append-only store contract. Append must be atomic
// with respect to concurrent callers and durable before it returns nil.
type JournalInterface interface {
	Open() error
	Append(record *models.StoredSurveyRecord) error
	Records() ([]*models.StoredSurveyRecord, error)
	Count() int64
	Sync() error
	RotateIfOversized() (bool, error)
	Close() error
}

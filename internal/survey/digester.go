package survey

import (
	"crypto/sha256"

	"surveyd/internal/survey/interfaces"
)

// SHA256Digester is the default DigesterInterface implementation.
// Deliberately unsalted: identical inputs must always produce identical
// digests so repeat respondents stay correlatable without storing raw PII.
// This linkability is a documented trade-off, not a defect.
type SHA256Digester struct{}

func (d *SHA256Digester) Digest(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

func NewSHA256Digester() interfaces.DigesterInterface {
	return &SHA256Digester{}
}

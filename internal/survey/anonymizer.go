package survey

import (
	"encoding/hex"
	"strconv"

	"surveyd/internal/survey/interfaces"
)

// Anonymizer turns identifying fields into non-reversible lowercase hex
// digests. It is a pure transform; no I/O, safe for concurrent use.
type Anonymizer struct {
	digester interfaces.DigesterInterface
}

func NewAnonymizer(digester interfaces.DigesterInterface) *Anonymizer {
	return &Anonymizer{digester: digester}
}

func (a *Anonymizer) EmailDigest(email string) string {
	return a.hexDigest(email)
}

// AgeDigest hashes the canonical base-10 string form of the age, never the
// integer's binary representation.
func (a *Anonymizer) AgeDigest(age int) string {
	return a.hexDigest(strconv.Itoa(age))
}

func (a *Anonymizer) hexDigest(s string) string {
	return hex.EncodeToString(a.digester.Digest([]byte(s)))
}

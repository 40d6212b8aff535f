package survey

import (
	"encoding/hex"
	"time"

	"surveyd/internal/models"
	"surveyd/internal/survey/interfaces"
)

// dedupHourLayout is the coarse time window for derived submission ids:
// 4-digit year, month, day, hour, no separators, always UTC.
const dedupHourLayout = "2006010215"

// KeyDeriver resolves the submission_id stored with a record. A client-supplied
// id passes through verbatim; otherwise one is derived from the raw email and
// the current UTC hour, so repeat submissions from the same address within one
// hour share an id. Submissions straddling an hour boundary get different ids;
// that is accepted behavior, the key is a correlation signal and not a
// uniqueness guarantee.
type KeyDeriver struct {
	digester interfaces.DigesterInterface
	clock    func() time.Time
}

func NewKeyDeriver(digester interfaces.DigesterInterface) *KeyDeriver {
	return &KeyDeriver{
		digester: digester,
		clock:    time.Now,
	}
}

func (kd *KeyDeriver) DeriveSubmissionID(sub *models.SurveySubmission) string {
	if sub.SubmissionID != "" {
		return sub.SubmissionID
	}
	window := kd.clock().UTC().Format(dedupHourLayout)
	return hex.EncodeToString(kd.digester.Digest([]byte(sub.Email + window)))
}

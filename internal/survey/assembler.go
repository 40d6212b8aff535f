package survey

import (
	"net"
	"strings"
	"time"

	"surveyd/internal/models"
	"surveyd/internal/structures"
)

// RecordAssembler composes a storage-ready record from the validated
// submission, its digests and derived id, and the request metadata. Pure
// composition: no re-validation, no I/O.
type RecordAssembler struct {
	source string
	clock  func() time.Time
}

func NewRecordAssembler(conf *structures.Config) *RecordAssembler {
	source := conf.Survey.Source
	if source == "" {
		source = models.DefaultSource
	}
	return &RecordAssembler{
		source: source,
		clock:  time.Now,
	}
}

func (ra *RecordAssembler) Assemble(sub *models.SurveySubmission, emailDigest, ageDigest, submissionID string, meta structures.RequestMeta) *models.StoredSurveyRecord {
	return &models.StoredSurveyRecord{
		Name:         sub.Name,
		EmailDigest:  emailDigest,
		AgeDigest:    ageDigest,
		Consent:      sub.Consent,
		Rating:       sub.Rating,
		Comments:     sub.Comments,
		UserAgent:    sub.UserAgent,
		SubmissionID: submissionID,
		ReceivedAt:   ra.clock().UTC(),
		SourceIP:     clientAddr(meta),
		Source:       ra.source,
	}
}

// clientAddr resolves the best-effort origin address: forwarding header
// first, then the transport peer, then empty. A missing address never fails
// the request.
func clientAddr(meta structures.RequestMeta) string {
	if fwd := strings.TrimSpace(meta.ForwardedFor); fwd != "" {
		// X-Forwarded-For may hold a proxy chain; the first hop is the client.
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			fwd = strings.TrimSpace(fwd[:idx])
		}
		if fwd != "" {
			return fwd
		}
	}
	if meta.RemoteAddr == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(meta.RemoteAddr); err == nil {
		return host
	}
	return meta.RemoteAddr
}

package models

import "time"

// DefaultSource tags records whose origin is not configured otherwise.
const DefaultSource = "other"

// StoredSurveyRecord is the durable, output-side record. Email and age are
// present only as one-way digests; the raw values never reach the journal.
type StoredSurveyRecord struct {
	Name         string    `json:"name"`
	EmailDigest  string    `json:"email_digest"`
	AgeDigest    string    `json:"age_digest"`
	Consent      bool      `json:"consent"`
	Rating       int       `json:"rating"`
	Comments     string    `json:"comments,omitempty"`
	UserAgent    string    `json:"user_agent,omitempty"`
	SubmissionID string    `json:"submission_id"`
	ReceivedAt   time.Time `json:"received_at"`
	SourceIP     string    `json:"source_ip"`
	Source       string    `json:"source"`
}

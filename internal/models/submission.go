package models

// SurveySubmission is the transient, input-side shape of a survey payload.
// Raw email and age only ever live here; they are digested before anything
// is written to disk.
type SurveySubmission struct {
	Name         string `json:"name" validate:"required|maxLen:100"`
	Email        string `json:"email" validate:"required|email"`
	Age          int    `json:"age" validate:"required|min:13|max:120"`
	Consent      bool   `json:"consent" validate:"required"`
	Rating       int    `json:"rating" validate:"required|min:1|max:5"`
	Comments     string `json:"comments" validate:"maxLen:1000"`
	UserAgent    string `json:"user_agent" validate:"-"`
	SubmissionID string `json:"submission_id" validate:"-"`
}

// Messages customizes gookit/validate output so every failure reads as a
// client-facing reason. Consent uses "required" as its rule, but the message
// must say what the contract actually is: false and absent are the same
// violation.
func (s SurveySubmission) Messages() map[string]string {
	return map[string]string{
		"Name.required":    "name is required",
		"Name.maxLen":      "name must be at most 100 characters",
		"Email.required":   "email is required",
		"Email.email":      "email must be a valid email address",
		"Age.required":     "age is required",
		"Age.min":          "age must be between 13 and 120",
		"Age.max":          "age must be between 13 and 120",
		"Consent.required": "consent must be true",
		"Rating.required":  "rating is required",
		"Rating.min":       "rating must be between 1 and 5",
		"Rating.max":       "rating must be between 1 and 5",
		"Comments.maxLen":  "comments must be at most 1000 characters",
	}
}

package survey

import (
	"sort"
	"strings"

	"github.com/gookit/validate"

	"surveyd/internal/models"
	"surveyd/internal/structures"
)

// SubmissionValidator checks every field rule of a normalized submission and
// collects all failures instead of stopping at the first one.
type SubmissionValidator struct{}

func NewSubmissionValidator() *SubmissionValidator {
	return &SubmissionValidator{}
}

// Normalize produces the value that is actually validated and stored: name
// and comments are trimmed (so length rules apply to the trimmed value) and
// a missing user_agent is backfilled from the request header. The input is
// copied, never mutated in place.
func Normalize(sub models.SurveySubmission, meta structures.RequestMeta) models.SurveySubmission {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Comments = strings.TrimSpace(sub.Comments)
	if sub.UserAgent == "" {
		sub.UserAgent = meta.UserAgent
	}
	return sub
}

// Validate returns nil for a valid submission, or one FieldError per failed
// field. Rules are evaluated independently; consent == false and consent
// absent both surface as "consent must be true".
func (sv *SubmissionValidator) Validate(sub *models.SurveySubmission) models.ValidationErrors {
	v := validate.Struct(sub)
	v.StopOnError = false
	if v.Validate() {
		return nil
	}

	fields := make([]string, 0, len(v.Errors))
	for field := range v.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	errs := make(models.ValidationErrors, 0, len(fields))
	for _, field := range fields {
		errs = append(errs, models.FieldError{
			Field:   strings.ToLower(field),
			Message: v.Errors.FieldOne(field),
		})
	}
	return errs
}

package models

import "fmt"

// FieldError names a single field constraint violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the collected set of field failures for one payload.
// All independently evaluated rules are reported at once, never just the
// first.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s", ve[0].Message)
	}
	return fmt.Sprintf("validation failed for %d fields", len(ve))
}

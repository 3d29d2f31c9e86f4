package booking

import "fmt"

// ValidationError reports a required booking-form field that is missing for
// the step being advanced. It never clears any already-entered data.
type ValidationError struct {
	Step         string
	MissingField string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %s: required field %q is missing", e.Step, e.MissingField)
}

// NewValidationError builds a ValidationError for the given step and field.
func NewValidationError(step, field string) error {
	return &ValidationError{Step: step, MissingField: field}
}

// SessionError signals that a booking form session could not be loaded,
// typically because it expired or never existed.
type SessionError struct {
	SessionID string
	Reason    string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("booking session %s: %s", e.SessionID, e.Reason)
}

package domain

import "strings"

// Violation is one field-level or domain-level validation failure.
type Violation struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// NewViolation builds a violation for the given field. Field may be empty for
// violations that concern the draft as a whole.
func NewViolation(field, message string) Violation {
	return Violation{Field: field, Message: message}
}

// Violations is the aggregate validation error: every failure found in one
// pass, never only the first.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, 0, len(v))
	for _, viol := range v {
		if viol.Field != "" {
			msgs = append(msgs, viol.Field+": "+viol.Message)
			continue
		}
		msgs = append(msgs, viol.Message)
	}
	return strings.Join(msgs, "; ")
}

// EventValidator performs the field-level checks on an event draft. The
// service adds its own domain rules (date window, meeting URL format) to the
// returned set before deciding pass or fail.
type EventValidator interface {
	Validate(e *Event) Violations
}

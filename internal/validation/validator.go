// Package validation provides the default field-level validator for event
// drafts. It is injected into the lifecycle service so deployments can swap in
// a different implementation.
package validation

import (
	"fmt"
	"strings"

	"eventdesk/internal/domain"
)

const (
	maxTitleLength       = 255
	maxDescriptionLength = 4000
)

// DraftValidator checks the caller-supplied fields of an event draft. Domain
// rules such as the date window are applied by the service on top of these.
type DraftValidator struct{}

// New returns the default draft validator.
func New() *DraftValidator {
	return &DraftValidator{}
}

// Validate implements domain.EventValidator. It collects every failure rather
// than stopping at the first.
func (v *DraftValidator) Validate(e *domain.Event) domain.Violations {
	var violations domain.Violations

	title := strings.TrimSpace(e.Title)
	if title == "" {
		violations = append(violations, domain.NewViolation("title", "is required"))
	} else if len(e.Title) > maxTitleLength {
		violations = append(violations, domain.NewViolation("title",
			fmt.Sprintf("must be at most %d characters", maxTitleLength)))
	}

	if strings.TrimSpace(e.Description) == "" {
		violations = append(violations, domain.NewViolation("description", "is required"))
	} else if len(e.Description) > maxDescriptionLength {
		violations = append(violations, domain.NewViolation("description",
			fmt.Sprintf("must be at most %d characters", maxDescriptionLength)))
	}

	if e.EventDate.IsZero() {
		violations = append(violations, domain.NewViolation("event_date", "is required"))
	}

	return violations
}

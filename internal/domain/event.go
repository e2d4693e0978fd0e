package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when an event does not exist or does not belong to
// the caller. The two cases are deliberately indistinguishable so that callers
// cannot probe for events owned by someone else.
var ErrNotFound = errors.New("event not found")

// ErrInvalidInput is returned for operation arguments that are not usable,
// such as an empty category filter.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotReadyToStart is returned when a meeting start is attempted outside the
// allowed window around the event date.
var ErrNotReadyToStart = errors.New("event not ready to start")

// MaxDaysInAdvance is how far ahead an event date may lie on create or update.
const MaxDaysInAdvance = 20

// StartWindow is the tolerance around the event date within which a meeting
// may be started.
const StartWindow = 10 * time.Minute

// Event represents a scheduled event. Title and description are the canonical
// values; when a row is read with a locale the overlay values are already
// merged in. MeetingURL is populated from the started meeting, if any, and is
// nil in any copy returned to a non-owner.
// swagger:model Event
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	EventDate   time.Time  `json:"event_date"`
	MeetingURL  *string    `json:"meeting_url"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedBy  *string    `json:"modified_by,omitempty"`
	ModifiedAt  *time.Time `json:"modified_at,omitempty"`
}

// NewEvent returns a draft Event carrying the caller-supplied fields. ID,
// ownership and timestamps are set by the service on create.
func NewEvent(title, description string, eventDate time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		EventDate:   eventDate,
	}
}

// Masked returns a copy of the event with the meeting URL hidden unless the
// caller is the owner. The receiver is never mutated.
func (e *Event) Masked(caller string) *Event {
	masked := *e
	if e.CreatedBy != caller {
		masked.MeetingURL = nil
	}
	return &masked
}

// WithinStartWindow reports whether a meeting may be started at now for an
// event scheduled at eventDate. Both bounds are exclusive.
func WithinStartWindow(now, eventDate time.Time) bool {
	return eventDate.After(now.Add(-StartWindow)) && eventDate.Before(now.Add(StartWindow))
}

// EventRepository defines storage operations on the canonical events table.
// Reads resolve the meeting URL; locale-aware reads additionally merge the
// locale overlay per field. Owner-scoped writes return ErrNotFound when no row
// matched the id and owner together.
type EventRepository interface {
	Insert(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetByIDLocalized(ctx context.Context, id, locale string) (*Event, error)
	// Update rewrites title, description, event date and modified_by on the
	// row matching id and owner.
	Update(ctx context.Context, id, owner string, draft *Event) error
	// TouchModified updates only modified_by on the row matching id and
	// owner. Used as the ownership check before localized updates.
	TouchModified(ctx context.Context, id, owner string) error
	// ListAccessible returns future events the user owns or is registered
	// for.
	ListAccessible(ctx context.Context, user, locale string) ([]*Event, error)
	// ListByCategories returns future events tagged with every one of the
	// given categories.
	ListByCategories(ctx context.Context, locale string, categories []string) ([]*Event, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// EventService defines the event lifecycle operations. Every operation takes
// the caller's already-authenticated user handle; locale is a BCP-47 language
// subtag such as "de", or empty for the canonical values.
type EventService interface {
	Create(ctx context.Context, categories []string, user, locale string, draft *Event) (*Event, error)
	Read(ctx context.Context, user, id, locale string) (*Event, error)
	Update(ctx context.Context, id, user, locale string, draft *Event) (*Event, error)
	List(ctx context.Context, user, locale string) ([]*Event, error)
	ListByCategories(ctx context.Context, user, locale string, categories []string) ([]*Event, error)
	Delete(ctx context.Context, user, id string) (bool, error)
	Register(ctx context.Context, user, id string) (bool, error)
	IsRegistered(ctx context.Context, user, id string) (bool, error)
	Start(ctx context.Context, user, id, meetingURL string) (bool, error)
	// Join returns the meeting URL unmasked; it is the authorization-gated
	// accessor for owners and registered learners.
	Join(ctx context.Context, user, id string) (string, error)
	// Reset removes every row across all event tables. Test and
	// administration support only.
	Reset(ctx context.Context) error
}

package domain

import "context"

// EventLocalized is a per-locale overlay of the canonical title and
// description. At most one row exists per (event, locale); a nil field falls
// back to the canonical value for that field alone.
type EventLocalized struct {
	EventID     string  `json:"event_id"`
	Locale      string  `json:"locale"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// NewEventLocalized returns an overlay carrying both fields of the event for
// the given locale.
func NewEventLocalized(eventID, locale string, e *Event) *EventLocalized {
	title := e.Title
	description := e.Description
	return &EventLocalized{
		EventID:     eventID,
		Locale:      locale,
		Title:       &title,
		Description: &description,
	}
}

// EventLocalizedRepository defines storage operations for locale overlays.
// Update returns ErrNotFound when no overlay exists for the (event, locale)
// pair, which signals the caller to insert one instead.
type EventLocalizedRepository interface {
	Insert(ctx context.Context, l *EventLocalized) error
	Update(ctx context.Context, eventID, locale, title, description string) error
	DeleteByEventID(ctx context.Context, eventID string) error
	DeleteAll(ctx context.Context) error
}

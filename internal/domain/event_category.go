package domain

import "context"

// EventCategory links an event to one category label. Rows are written on
// event creation and removed only by the event's cascade delete.
type EventCategory struct {
	EventID    string `json:"event_id"`
	CategoryID string `json:"category_id"`
}

// NewEventCategory returns the join row for one category label.
func NewEventCategory(eventID, categoryID string) *EventCategory {
	return &EventCategory{EventID: eventID, CategoryID: categoryID}
}

// EventCategoryRepository defines storage operations for category membership.
type EventCategoryRepository interface {
	Attach(ctx context.Context, c *EventCategory) error
	DeleteByEventID(ctx context.Context, eventID string) error
	DeleteAll(ctx context.Context) error
}

// EventTagRepository covers the reserved events_tag join table. Tag attachment
// is not implemented yet; the table only participates in the cascade delete.
type EventTagRepository interface {
	DeleteByEventID(ctx context.Context, eventID string) error
	DeleteAll(ctx context.Context) error
}

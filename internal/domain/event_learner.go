package domain

import (
	"context"
	"errors"
)

// ErrAlreadyRegistered is returned when the (event, user) registration pair
// already exists. The storage uniqueness constraint is the source of truth;
// the service never pre-checks.
var ErrAlreadyRegistered = errors.New("already registered for this event")

// ErrOwnEvent is returned when an owner tries to register for their own event.
var ErrOwnEvent = errors.New("owners cannot register for their own event")

// EventLearner records one attendee registration, unique per (event, user).
type EventLearner struct {
	EventID    string `json:"event_id"`
	UserHandle string `json:"user_handle"`
}

// NewEventLearner returns the registration row for the given user.
func NewEventLearner(eventID, userHandle string) *EventLearner {
	return &EventLearner{EventID: eventID, UserHandle: userHandle}
}

// EventLearnerRepository defines storage operations for registrations.
// Insert returns ErrAlreadyRegistered on a duplicate pair.
type EventLearnerRepository interface {
	Insert(ctx context.Context, l *EventLearner) error
	Exists(ctx context.Context, eventID, userHandle string) (bool, error)
	DeleteByEventID(ctx context.Context, eventID string) error
	DeleteAll(ctx context.Context) error
}

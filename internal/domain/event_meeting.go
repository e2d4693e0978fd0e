package domain

import (
	"context"
	"errors"
)

// ErrMeetingExists is returned when a meeting has already been started for the
// event. A meeting can be started at most once.
var ErrMeetingExists = errors.New("meeting already started for this event")

// ErrMeetingNotStarted is returned by join when no meeting exists yet.
var ErrMeetingNotStarted = errors.New("meeting not started")

// ErrJoinNotAllowed is returned by join when the caller is neither the owner
// nor a registered learner.
var ErrJoinNotAllowed = errors.New("join allowed only for the owner or registered learners")

// EventMeeting holds the online meeting URL for an event, at most one row per
// event.
type EventMeeting struct {
	EventID    string `json:"event_id"`
	MeetingURL string `json:"meeting_url"`
}

// NewEventMeeting returns the meeting row for the given event.
func NewEventMeeting(eventID, meetingURL string) *EventMeeting {
	return &EventMeeting{EventID: eventID, MeetingURL: meetingURL}
}

// EventMeetingRepository defines storage operations for started meetings.
// Insert returns ErrMeetingExists on a duplicate event id; GetByEventID
// returns ErrNotFound when no meeting was started.
type EventMeetingRepository interface {
	Insert(ctx context.Context, m *EventMeeting) error
	GetByEventID(ctx context.Context, eventID string) (*EventMeeting, error)
	DeleteByEventID(ctx context.Context, eventID string) error
	DeleteAll(ctx context.Context) error
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventdesk/internal/domain"

	"github.com/lib/pq"
)

type eventMeetingRepository struct {
	DB *sql.DB
}

// NewEventMeetingRepository returns a domain.EventMeetingRepository
// implemented with Postgres.
func NewEventMeetingRepository(db *sql.DB) domain.EventMeetingRepository {
	return &eventMeetingRepository{DB: db}
}

func (r *eventMeetingRepository) Insert(ctx context.Context, m *domain.EventMeeting) error {
	query := `INSERT INTO events_meeting (event_id, meeting_url) VALUES ($1, $2)`
	_, err := r.DB.ExecContext(ctx, query, m.EventID, m.MeetingURL)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return domain.ErrMeetingExists
		}
		return err
	}
	return nil
}

func (r *eventMeetingRepository) GetByEventID(ctx context.Context, eventID string) (*domain.EventMeeting, error) {
	query := `SELECT event_id, meeting_url FROM events_meeting WHERE event_id = $1`
	m := &domain.EventMeeting{}
	err := r.DB.QueryRowContext(ctx, query, eventID).Scan(&m.EventID, &m.MeetingURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *eventMeetingRepository) DeleteByEventID(ctx context.Context, eventID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events_meeting WHERE event_id = $1`, eventID)
	return err
}

func (r *eventMeetingRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events_meeting`)
	return err
}

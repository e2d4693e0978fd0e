package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventdesk/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

type eventLearnerRepository struct {
	DB *sql.DB
}

// NewEventLearnerRepository returns a domain.EventLearnerRepository
// implemented with Postgres.
func NewEventLearnerRepository(db *sql.DB) domain.EventLearnerRepository {
	return &eventLearnerRepository{DB: db}
}

func (r *eventLearnerRepository) Insert(ctx context.Context, l *domain.EventLearner) error {
	query := `INSERT INTO events_learner (event_id, user_handle) VALUES ($1, $2)`
	_, err := r.DB.ExecContext(ctx, query, l.EventID, l.UserHandle)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return domain.ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

func (r *eventLearnerRepository) Exists(ctx context.Context, eventID, userHandle string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM events_learner WHERE event_id = $1 AND user_handle = $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, eventID, userHandle).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *eventLearnerRepository) DeleteByEventID(ctx context.Context, eventID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events_learner WHERE event_id = $1`, eventID)
	return err
}

func (r *eventLearnerRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events_learner`)
	return err
}

package postgres

import (
	"context"
	"database/sql"

	"eventdesk/internal/domain"
)

type eventLocalizedRepository struct {
	DB *sql.DB
}

// NewEventLocalizedRepository returns a domain.EventLocalizedRepository
// implemented with Postgres.
func NewEventLocalizedRepository(db *sql.DB) domain.EventLocalizedRepository {
	return &eventLocalizedRepository{DB: db}
}

func (r *eventLocalizedRepository) Insert(ctx context.Context, l *domain.EventLocalized) error {
	query := `
		INSERT INTO events_localized (event_id, locale, title, description)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, l.EventID, l.Locale, l.Title, l.Description)
	return err
}

func (r *eventLocalizedRepository) Update(ctx context.Context, eventID, locale, title, description string) error {
	query := `
		UPDATE events_localized
		SET title = $1, description = $2
		WHERE event_id = $3 AND locale = $4
	`
	result, err := r.DB.ExecContext(ctx, query, title, description, eventID, locale)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventLocalizedRepository) DeleteByEventID(ctx context.Context, eventID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events_localized WHERE event_id = $1`, eventID)
	return err
}

func (r *eventLocalizedRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events_localized`)
	return err
}

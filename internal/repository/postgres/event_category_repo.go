package postgres

import (
	"context"
	"database/sql"

	"eventdesk/internal/domain"
)

type eventCategoryRepository struct {
	DB *sql.DB
}

// NewEventCategoryRepository returns a domain.EventCategoryRepository
// implemented with Postgres.
func NewEventCategoryRepository(db *sql.DB) domain.EventCategoryRepository {
	return &eventCategoryRepository{DB: db}
}

func (r *eventCategoryRepository) Attach(ctx context.Context, c *domain.EventCategory) error {
	query := `INSERT INTO events_category (event_id, category_id) VALUES ($1, $2)`
	_, err := r.DB.ExecContext(ctx, query, c.EventID, c.CategoryID)
	return err
}

func (r *eventCategoryRepository) DeleteByEventID(ctx context.Context, eventID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events_category WHERE event_id = $1`, eventID)
	return err
}

func (r *eventCategoryRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events_category`)
	return err
}

type eventTagRepository struct {
	DB *sql.DB
}

// NewEventTagRepository returns a domain.EventTagRepository implemented with
// Postgres. The events_tag table is reserved; only the cascade delete touches
// it.
func NewEventTagRepository(db *sql.DB) domain.EventTagRepository {
	return &eventTagRepository{DB: db}
}

func (r *eventTagRepository) DeleteByEventID(ctx context.Context, eventID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events_tag WHERE event_id = $1`, eventID)
	return err
}

func (r *eventTagRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events_tag`)
	return err
}

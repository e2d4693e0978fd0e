package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventdesk/internal/domain"
)

// eventSelect is the canonical projection. The meeting URL is resolved from
// events_meeting; masking for non-owners happens in the service.
const eventSelect = `
	SELECT e.id, e.title, e.description, e.event_date,
		e.created_at, e.created_by, e.modified_at, e.modified_by,
		m.meeting_url
	FROM events e
	LEFT JOIN events_meeting m ON e.id = m.event_id
`

// localizedEventSelect is the locale-resolved projection. An overlay row for
// the requested locale overrides title and description per field; a NULL
// overlay field falls back to the canonical value for that field alone. The
// locale predicate must live in the join condition: filtering it in WHERE
// would drop events whose only overlay belongs to another locale instead of
// falling back to the canonical row.
const localizedEventSelect = `
	SELECT e.id,
		COALESCE(l.title, e.title) AS title,
		COALESCE(l.description, e.description) AS description,
		e.event_date, e.created_at, e.created_by, e.modified_at, e.modified_by,
		m.meeting_url
	FROM events e
	LEFT JOIN events_localized l ON e.id = l.event_id AND l.locale = $1
	LEFT JOIN events_meeting m ON e.id = m.event_id
`

// learnerEventIDs selects the events a user is registered for.
const learnerEventIDs = `SELECT event_id FROM events_learner WHERE user_handle = `

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns a domain.EventRepository implemented with Postgres.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Insert(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (id, title, description, event_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, e.EventDate, e.CreatedAt, e.CreatedBy)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.DB.QueryRowContext(ctx, eventSelect+` WHERE e.id = $1`, id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) GetByIDLocalized(ctx context.Context, id, locale string) (*domain.Event, error) {
	row := r.DB.QueryRowContext(ctx, localizedEventSelect+` WHERE e.id = $2`, locale, id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Update(ctx context.Context, id, owner string, draft *domain.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, event_date = $3, modified_by = $4, modified_at = now()
		WHERE id = $5 AND created_by = $6
	`
	result, err := r.DB.ExecContext(ctx, query,
		draft.Title, draft.Description, draft.EventDate, owner, id, owner)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) TouchModified(ctx context.Context, id, owner string) error {
	query := `
		UPDATE events
		SET modified_by = $1, modified_at = now()
		WHERE id = $2 AND created_by = $1
	`
	result, err := r.DB.ExecContext(ctx, query, owner, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) ListAccessible(ctx context.Context, user, locale string) ([]*domain.Event, error) {
	var query string
	var args []interface{}
	if locale == "" {
		query = eventSelect + `
			WHERE e.event_date > now()
			AND (e.created_by = $1 OR e.id IN (` + learnerEventIDs + `$1))`
		args = []interface{}{user}
	} else {
		query = localizedEventSelect + `
			WHERE e.event_date > now()
			AND (e.created_by = $2 OR e.id IN (` + learnerEventIDs + `$2))`
		args = []interface{}{locale, user}
	}
	return r.list(ctx, query, args...)
}

func (r *eventRepository) ListByCategories(ctx context.Context, locale string, categories []string) ([]*domain.Event, error) {
	var query string
	args := make([]interface{}, 0, len(categories)+1)
	if locale == "" {
		query = eventSelect + `
			WHERE e.event_date > now()
			AND e.id IN (` + categoryFilter(len(categories), 1) + `)`
	} else {
		query = localizedEventSelect + `
			WHERE e.event_date > now()
			AND e.id IN (` + categoryFilter(len(categories), 2) + `)`
		args = append(args, locale)
	}
	for _, c := range categories {
		args = append(args, c)
	}
	return r.list(ctx, query, args...)
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM events`)
	return err
}

func (r *eventRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// categoryFilter builds the intersection subquery selecting event ids that
// carry a membership row for every one of n categories. Placeholders are
// numbered starting at firstParam; values are always bound, never inlined.
func categoryFilter(n, firstParam int) string {
	placeholders := make([]string, n)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", firstParam+i)
	}
	return fmt.Sprintf(
		"SELECT event_id FROM events_category WHERE category_id IN (%s) "+
			"GROUP BY event_id HAVING COUNT(DISTINCT category_id) = %d",
		strings.Join(placeholders, ", "), n)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var modifiedAt sql.NullTime
	var modifiedBy, meetingURL sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.EventDate,
		&e.CreatedAt, &e.CreatedBy, &modifiedAt, &modifiedBy,
		&meetingURL,
	)
	if err != nil {
		return nil, err
	}
	if modifiedAt.Valid {
		e.ModifiedAt = &modifiedAt.Time
	}
	if modifiedBy.Valid {
		e.ModifiedBy = &modifiedBy.String
	}
	if meetingURL.Valid {
		e.MeetingURL = &meetingURL.String
	}
	return e, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"agendahub/internal/domain"

	"github.com/lib/pq"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns a domain.EventRepository implemented with Postgres.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

const eventColumns = `
	e.id, e.name, e.description, e.start_time, e.end_time,
	e.category_id, c.name, e.created_at, e.updated_at`

func (r *eventRepository) Create(ctx context.Context, e *domain.AgendaEvent) error {
	query := `
		INSERT INTO events (name, description, start_time, end_time, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var desc sql.NullString
	if e.Description != nil {
		desc = sql.NullString{String: *e.Description, Valid: true}
	}
	var end sql.NullTime
	if e.EndTime != nil {
		end = sql.NullTime{Time: *e.EndTime, Valid: true}
	}
	err := r.DB.QueryRowContext(ctx, query,
		e.Name, desc, e.StartTime, end, e.CategoryID, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == pqForeignKeyViolation {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.AgendaEvent, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events e
		JOIN categories c ON c.id = e.category_id
		WHERE e.id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, offset, limit int) ([]*domain.AgendaEvent, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events e
		JOIN categories c ON c.id = e.category_id
		ORDER BY e.start_time ASC, e.id ASC
		OFFSET $1 LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *eventRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}

// ListWindow applies the overlap predicate in SQL: an event matches when it
// starts no later than the window end and ends (or is open-ended) no
// earlier than the window start.
func (r *eventRepository) ListWindow(ctx context.Context, window domain.DateRange) ([]*domain.AgendaEvent, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events e
		JOIN categories c ON c.id = e.category_id
		WHERE ($2::timestamptz IS NULL OR e.start_time <= $2)
		  AND (e.end_time IS NULL OR e.end_time >= $1)
		ORDER BY e.start_time ASC, e.id ASC
	`
	var end sql.NullTime
	if window.End != nil {
		end = sql.NullTime{Time: *window.End, Valid: true}
	}
	rows, err := r.DB.QueryContext(ctx, query, window.Start, end)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *eventRepository) CountByCategoryID(ctx context.Context, categoryID string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE category_id = $1`, categoryID).Scan(&n)
	return n, err
}

func (r *eventRepository) Update(ctx context.Context, e *domain.AgendaEvent) error {
	query := `
		UPDATE events
		SET name = $2, description = $3, start_time = $4, end_time = $5, category_id = $6, updated_at = $7
		WHERE id = $1
	`
	var desc sql.NullString
	if e.Description != nil {
		desc = sql.NullString{String: *e.Description, Valid: true}
	}
	var end sql.NullTime
	if e.EndTime != nil {
		end = sql.NullTime{Time: *e.EndTime, Valid: true}
	}
	result, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Name, desc, e.StartTime, end, e.CategoryID, e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.AgendaEvent, error) {
	e := &domain.AgendaEvent{}
	var descNull sql.NullString
	var endNull sql.NullTime
	var categoryName string
	err := row.Scan(
		&e.ID, &e.Name, &descNull, &e.StartTime, &endNull,
		&e.CategoryID, &categoryName, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if endNull.Valid {
		e.EndTime = &endNull.Time
	}
	e.Category = &domain.EventCategory{ID: e.CategoryID, Name: categoryName}
	return e, nil
}

func collectEvents(rows *sql.Rows) ([]*domain.AgendaEvent, error) {
	defer rows.Close()
	var events []*domain.AgendaEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

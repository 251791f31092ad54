package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, title, annotation, description, category_id, initiator_id,
			event_date, participant_limit, request_moderation, paid, status,
			published_on, confirmed_requests, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, annotation, description, category_id, initiator_id,
				event_date, participant_limit, request_moderation, paid, status,
				confirmed_requests, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 0, $12, $13)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Annotation, e.Description, e.CategoryID, e.InitiatorID,
		e.EventDate, e.ParticipantLimit, e.RequestModeration, e.Paid, e.Status,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// Update rewrites the mutable fields. The status guard keeps owner edits off
// published and canceled events even if the status changed after the service
// loaded it.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, annotation = $3, description = $4, category_id = $5,
				  event_date = $6, participant_limit = $7, request_moderation = $8,
				  paid = $9, updated_at = now()
			  WHERE id = $1 AND status = $10`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Annotation, e.Description, e.CategoryID,
		e.EventDate, e.ParticipantLimit, e.RequestModeration, e.Paid,
		domain.EventStatusPending,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if rows == 0 {
		return r.diagnoseTransition(ctx, e.ID, domain.ErrEventNotPending)
	}

	return nil
}

func (r *EventRepository) Publish(ctx context.Context, id string, publishedOn time.Time) (*domain.Event, error) {
	query := `UPDATE events
			  SET status = $2, published_on = $3, updated_at = now()
			  WHERE id = $1 AND status = $4
			  RETURNING ` + eventColumns
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, domain.EventStatusPublished, publishedOn, domain.EventStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("publish event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.diagnoseTransition(ctx, id, domain.ErrEventNotPending)
		}
		return nil, fmt.Errorf("scan published event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Reject(ctx context.Context, id string) (*domain.Event, error) {
	query := `UPDATE events
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status <> $3
			  RETURNING ` + eventColumns
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, domain.EventStatusCanceled, domain.EventStatusPublished,
	)
	if err != nil {
		return nil, fmt.Errorf("reject event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.diagnoseTransition(ctx, id, domain.ErrEventPublished)
		}
		return nil, fmt.Errorf("scan rejected event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Cancel(ctx context.Context, id string) (*domain.Event, error) {
	query := `UPDATE events
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING ` + eventColumns
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, domain.EventStatusCanceled, domain.EventStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, r.diagnoseTransition(ctx, id, domain.ErrEventNotPending)
		}
		return nil, fmt.Errorf("scan canceled event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) ListByInitiator(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE initiator_id = $1
			  ORDER BY event_date DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list events by initiator: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

func (r *EventRepository) ListPublished(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE status = $1
			  ORDER BY event_date DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.EventStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("list published events: %w", err)
	}
	defer rows.Close()

	return collectEvents(rows)
}

// diagnoseTransition tells a missing event apart from one in the wrong status.
func (r *EventRepository) diagnoseTransition(ctx context.Context, id string, conflict error) error {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT status FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("check event status: %w", err)
	}

	var status string
	if err := row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("scan event status: %w", err)
	}

	return conflict
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	var publishedOn sql.NullTime
	if err := scan(
		&e.ID, &e.Title, &e.Annotation, &e.Description, &e.CategoryID, &e.InitiatorID,
		&e.EventDate, &e.ParticipantLimit, &e.RequestModeration, &e.Paid, &e.Status,
		&publishedOn, &e.ConfirmedRequests, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if publishedOn.Valid {
		t := publishedOn.Time
		e.PublishedOn = &t
	}
	return &e, nil
}

func collectEvents(rows *sql.Rows) ([]*domain.Event, error) {
	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

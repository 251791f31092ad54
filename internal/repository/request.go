package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const requestColumns = `id, event_id, requester_id, status, created_at, updated_at`

type RequestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRequestRepo(db *dbpg.DB) *RequestRepository {
	return &RequestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a participation request. The event row is locked for the
// whole transaction so the capacity check, the optional auto-confirm and the
// counter increment cannot race a concurrent admission call.
func (r *RequestRepository) Create(ctx context.Context, req *domain.Request) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	eventQuery := `SELECT initiator_id, status, participant_limit, request_moderation, confirmed_requests
				   FROM events
				   WHERE id = $1
				   FOR UPDATE`
	var (
		initiatorID string
		status      string
		limit       int
		moderation  bool
		confirmed   int
	)
	if err = tx.QueryRowContext(ctx, eventQuery, req.EventID).
		Scan(&initiatorID, &status, &limit, &moderation, &confirmed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get event for request: %w", err)
	}

	if initiatorID == req.RequesterID {
		return domain.ErrSelfRequest
	}
	if status != string(domain.EventStatusPublished) {
		return domain.ErrEventNotPublished
	}
	if limit > 0 && confirmed >= limit {
		return domain.ErrParticipantLimitReached
	}

	req.Status = domain.RequestStatusPending
	if !moderation || limit == 0 {
		req.Status = domain.RequestStatusConfirmed
	}

	insertQuery := `INSERT INTO requests (id, event_id, requester_id, status, created_at, updated_at)
					VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err = tx.ExecContext(
		ctx, insertQuery,
		req.ID, req.EventID, req.RequesterID, req.Status, req.CreatedAt, req.UpdatedAt,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("insert request: %w", err)
	}

	if req.Status == domain.RequestStatusConfirmed {
		if _, err = tx.ExecContext(
			ctx,
			`UPDATE events SET confirmed_requests = confirmed_requests + 1, updated_at = now() WHERE id = $1`,
			req.EventID,
		); err != nil {
			return fmt.Errorf("increment confirmed counter: %w", err)
		}
	}

	return tx.Commit()
}

// CancelOwn cancels the requester's own request. Cancelling an already
// canceled request is a no-op; a rejected request stays rejected. The event
// row is locked first, same order as every other request writer.
func (r *RequestRepository) CancelOwn(ctx context.Context, requestID, userID string) (*domain.Request, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lookupQuery := `SELECT event_id FROM requests WHERE id = $1 AND requester_id = $2`
	var eventID string
	if err = tx.QueryRowContext(ctx, lookupQuery, requestID, userID).Scan(&eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("lookup request: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, eventID); err != nil {
		return nil, fmt.Errorf("lock event: %w", err)
	}

	// Status is stable now: all request writers lock the event row first.
	req := &domain.Request{ID: requestID, EventID: eventID, RequesterID: userID}
	statusQuery := `SELECT status, created_at, updated_at FROM requests WHERE id = $1`
	if err = tx.QueryRowContext(ctx, statusQuery, requestID).
		Scan(&req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
		return nil, fmt.Errorf("get request status: %w", err)
	}

	switch req.Status {
	case domain.RequestStatusCanceled:
		return req, nil
	case domain.RequestStatusRejected:
		return nil, domain.ErrRequestFinalized
	case domain.RequestStatusConfirmed:
		if _, err = tx.ExecContext(
			ctx,
			`UPDATE events SET confirmed_requests = confirmed_requests - 1, updated_at = now() WHERE id = $1`,
			eventID,
		); err != nil {
			return nil, fmt.Errorf("decrement confirmed counter: %w", err)
		}
	}

	updateQuery := `UPDATE requests SET status = $2, updated_at = now()
					WHERE id = $1
					RETURNING updated_at`
	if err = tx.QueryRowContext(ctx, updateQuery, requestID, domain.RequestStatusCanceled).
		Scan(&req.UpdatedAt); err != nil {
		return nil, fmt.Errorf("cancel request: %w", err)
	}
	req.Status = domain.RequestStatusCanceled

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancel: %w", err)
	}

	return req, nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	var req domain.Request
	if err = row.Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("scan request: %w", err)
	}

	return &req, nil
}

func (r *RequestRepository) ListByIDs(ctx context.Context, eventID string, ids []string) ([]*domain.Request, error) {
	query := `SELECT ` + requestColumns + `
			  FROM requests
			  WHERE event_id = $1 AND id = ANY($2)
			  ORDER BY created_at, id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list requests by ids: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

func (r *RequestRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Request, error) {
	query := `SELECT ` + requestColumns + `
			  FROM requests
			  WHERE event_id = $1
			  ORDER BY created_at, id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list requests by event: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

func (r *RequestRepository) ListByRequester(ctx context.Context, userID string) ([]*domain.Request, error) {
	query := `SELECT ` + requestColumns + `
			  FROM requests
			  WHERE requester_id = $1
			  ORDER BY created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list requests by requester: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ApplyAdmission is the engine's single write point: one transaction that
// re-verifies every listed request is still pending, keeps the confirmed
// counter within the participant limit and moves all listed requests at once.
// A failed guard rolls everything back. With cascade set, every request of
// the event still pending after the listed moves is rejected in the same
// transaction and returned, so requests racing in between the service's read
// and this call cannot stay pending on a filled event.
func (r *RequestRepository) ApplyAdmission(
	ctx context.Context,
	eventID string,
	confirmIDs, rejectIDs []string,
	cascade bool,
) ([]*domain.Request, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	eventQuery := `SELECT participant_limit, confirmed_requests FROM events WHERE id = $1 FOR UPDATE`
	var limit, confirmed int
	if err = tx.QueryRowContext(ctx, eventQuery, eventID).Scan(&limit, &confirmed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("lock event: %w", err)
	}

	if len(confirmIDs) > 0 && limit > 0 && confirmed+len(confirmIDs) > limit {
		return nil, domain.ErrParticipantLimitReached
	}

	all := make([]string, 0, len(confirmIDs)+len(rejectIDs))
	all = append(all, confirmIDs...)
	all = append(all, rejectIDs...)

	var stillPending int
	pendingQuery := `SELECT COUNT(*) FROM requests
					 WHERE event_id = $1 AND id = ANY($2) AND status = $3`
	if err = tx.QueryRowContext(ctx, pendingQuery, eventID, pq.Array(all), domain.RequestStatusPending).
		Scan(&stillPending); err != nil {
		return nil, fmt.Errorf("recheck pending: %w", err)
	}
	if stillPending != len(all) {
		return nil, domain.ErrRequestNotPending
	}

	updateQuery := `UPDATE requests SET status = $3, updated_at = now()
					WHERE event_id = $1 AND id = ANY($2)`
	if len(confirmIDs) > 0 {
		if _, err = tx.ExecContext(ctx, updateQuery, eventID, pq.Array(confirmIDs), domain.RequestStatusConfirmed); err != nil {
			return nil, fmt.Errorf("confirm requests: %w", err)
		}
		if _, err = tx.ExecContext(
			ctx,
			`UPDATE events SET confirmed_requests = confirmed_requests + $2, updated_at = now() WHERE id = $1`,
			eventID, len(confirmIDs),
		); err != nil {
			return nil, fmt.Errorf("increment confirmed counter: %w", err)
		}
	}
	if len(rejectIDs) > 0 {
		if _, err = tx.ExecContext(ctx, updateQuery, eventID, pq.Array(rejectIDs), domain.RequestStatusRejected); err != nil {
			return nil, fmt.Errorf("reject requests: %w", err)
		}
	}

	var cascaded []*domain.Request
	if cascade {
		cascadeQuery := `WITH moved AS (
							UPDATE requests SET status = $2, updated_at = now()
							WHERE event_id = $1 AND status = $3
							RETURNING ` + requestColumns + `
						 )
						 SELECT ` + requestColumns + ` FROM moved ORDER BY created_at, id`
		rows, err := tx.QueryContext(ctx, cascadeQuery, eventID, domain.RequestStatusRejected, domain.RequestStatusPending)
		if err != nil {
			return nil, fmt.Errorf("cascade reject: %w", err)
		}
		cascaded, err = collectRequests(rows)
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("collect cascaded: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit admission: %w", err)
	}

	return cascaded, nil
}

func collectRequests(rows *sql.Rows) ([]*domain.Request, error) {
	var res []*domain.Request
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(&req.ID, &req.EventID, &req.RequesterID, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, &req)
	}

	return res, rows.Err()
}

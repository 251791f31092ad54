package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newRequestRepo(t *testing.T) (*RequestRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRequestRepo(&dbpg.DB{Master: db}), mock
}

func requestRows(reqs ...*domain.Request) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "event_id", "requester_id", "status", "created_at", "updated_at"})
	for _, r := range reqs {
		rows.AddRow(r.ID, r.EventID, r.RequesterID, string(r.Status), r.CreatedAt, r.UpdatedAt)
	}
	return rows
}

func TestRequestRepository_CancelOwn_ConfirmedDecrementsCounter(t *testing.T) {
	repo, mock := newRequestRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT event_id FROM requests WHERE id = \$1 AND requester_id = \$2`).
		WithArgs("r1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow("e1"))
	mock.ExpectExec(`SELECT id FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT status, created_at, updated_at FROM requests WHERE id = \$1`).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"status", "created_at", "updated_at"}).
			AddRow("confirmed", now, now))
	mock.ExpectExec(`UPDATE events SET confirmed_requests = confirmed_requests - 1`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE requests SET status = \$2`).
		WithArgs("r1", "canceled").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
	mock.ExpectCommit()

	req, err := repo.CancelOwn(context.Background(), "r1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCanceled, req.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_CancelOwn_PendingLeavesCounterAlone(t *testing.T) {
	repo, mock := newRequestRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT event_id FROM requests`).
		WithArgs("r1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow("e1"))
	mock.ExpectExec(`SELECT id FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT status, created_at, updated_at FROM requests`).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"status", "created_at", "updated_at"}).
			AddRow("pending", now, now))
	mock.ExpectQuery(`UPDATE requests SET status = \$2`).
		WithArgs("r1", "canceled").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
	mock.ExpectCommit()

	req, err := repo.CancelOwn(context.Background(), "r1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCanceled, req.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_CancelOwn_CanceledIsNoOp(t *testing.T) {
	repo, mock := newRequestRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT event_id FROM requests`).
		WithArgs("r1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow("e1"))
	mock.ExpectExec(`SELECT id FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT status, created_at, updated_at FROM requests`).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"status", "created_at", "updated_at"}).
			AddRow("canceled", now, now))
	mock.ExpectRollback()

	req, err := repo.CancelOwn(context.Background(), "r1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusCanceled, req.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_CancelOwn_RejectedIsFinal(t *testing.T) {
	repo, mock := newRequestRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT event_id FROM requests`).
		WithArgs("r1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow("e1"))
	mock.ExpectExec(`SELECT id FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT status, created_at, updated_at FROM requests`).
		WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"status", "created_at", "updated_at"}).
			AddRow("rejected", now, now))
	mock.ExpectRollback()

	_, err := repo.CancelOwn(context.Background(), "r1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestFinalized)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_ApplyAdmission_IncrementsByConfirmedCount(t *testing.T) {
	repo, mock := newRequestRepo(t)

	confirm := []string{"r1", "r2"}
	reject := []string{"r3"}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT participant_limit, confirmed_requests FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"participant_limit", "confirmed_requests"}).AddRow(10, 3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM requests`).
		WithArgs("e1", pq.Array([]string{"r1", "r2", "r3"}), "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectExec(`UPDATE requests SET status = \$3`).
		WithArgs("e1", pq.Array(confirm), "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE events SET confirmed_requests = confirmed_requests \+ \$2`).
		WithArgs("e1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE requests SET status = \$3`).
		WithArgs("e1", pq.Array(reject), "rejected").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	cascaded, err := repo.ApplyAdmission(context.Background(), "e1", confirm, reject, false)

	require.NoError(t, err)
	assert.Empty(t, cascaded)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_ApplyAdmission_CascadeSweepsRemainingPending(t *testing.T) {
	repo, mock := newRequestRepo(t)
	now := time.Now()

	straggler := &domain.Request{
		ID:          "r9",
		EventID:     "e1",
		RequesterID: "u9",
		Status:      domain.RequestStatusRejected,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT participant_limit, confirmed_requests FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"participant_limit", "confirmed_requests"}).AddRow(2, 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM requests`).
		WithArgs("e1", pq.Array([]string{"r1"}), "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectExec(`UPDATE requests SET status = \$3`).
		WithArgs("e1", pq.Array([]string{"r1"}), "confirmed").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE events SET confirmed_requests = confirmed_requests \+ \$2`).
		WithArgs("e1", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`WITH moved AS`).
		WithArgs("e1", "rejected", "pending").
		WillReturnRows(requestRows(straggler))
	mock.ExpectCommit()

	cascaded, err := repo.ApplyAdmission(context.Background(), "e1", []string{"r1"}, nil, true)

	require.NoError(t, err)
	require.Len(t, cascaded, 1)
	assert.Equal(t, "r9", cascaded[0].ID)
	assert.Equal(t, domain.RequestStatusRejected, cascaded[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_ApplyAdmission_LimitGuard(t *testing.T) {
	repo, mock := newRequestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT participant_limit, confirmed_requests FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"participant_limit", "confirmed_requests"}).AddRow(2, 2))
	mock.ExpectRollback()

	_, err := repo.ApplyAdmission(context.Background(), "e1", []string{"r1"}, nil, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParticipantLimitReached)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_ApplyAdmission_NotPendingRollsBack(t *testing.T) {
	repo, mock := newRequestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT participant_limit, confirmed_requests FROM events WHERE id = \$1 FOR UPDATE`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"participant_limit", "confirmed_requests"}).AddRow(10, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM requests`).
		WithArgs("e1", pq.Array([]string{"r1", "r2"}), "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.ApplyAdmission(context.Background(), "e1", []string{"r1", "r2"}, nil, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_Create_AutoConfirmIncrementsCounter(t *testing.T) {
	repo, mock := newRequestRepo(t)
	now := time.Now()

	req := &domain.Request{
		ID:          "r1",
		EventID:     "e1",
		RequesterID: "u1",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT initiator_id, status, participant_limit, request_moderation, confirmed_requests`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"initiator_id", "status", "participant_limit", "request_moderation", "confirmed_requests"}).
			AddRow("owner", "published", 5, false, 0))
	mock.ExpectExec(`INSERT INTO requests`).
		WithArgs("r1", "e1", "u1", "confirmed", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE events SET confirmed_requests = confirmed_requests \+ 1`).
		WithArgs("e1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusConfirmed, req.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepository_Create_PendingSkipsCounter(t *testing.T) {
	repo, mock := newRequestRepo(t)
	now := time.Now()

	req := &domain.Request{
		ID:          "r1",
		EventID:     "e1",
		RequesterID: "u1",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT initiator_id, status, participant_limit, request_moderation, confirmed_requests`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"initiator_id", "status", "participant_limit", "request_moderation", "confirmed_requests"}).
			AddRow("owner", "published", 5, true, 0))
	mock.ExpectExec(`INSERT INTO requests`).
		WithArgs("r1", "e1", "u1", "pending", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, req.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

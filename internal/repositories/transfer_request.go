package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/maschat/internal/models"
)

const transferRequestColumns = `id, sender_id, recipient_id, amount, message, context_type,
	context_id, status, created_at, expires_at`

// TransferRequestRepository handles mass_coin_transfer_requests.
type TransferRequestRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransferRequestRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransferRequestRepository {
	return &TransferRequestRepository{db: db, txGetter: txGetter}
}

// Create inserts a PENDING request.
func (r *TransferRequestRepository) Create(ctx context.Context, req *models.TransferRequest) error {
	const query = `
		INSERT INTO mass_coin_transfer_requests (id, sender_id, recipient_id, amount, message,
			context_type, context_id, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), $9)
		RETURNING created_at
	`
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	req.Status = models.TransferRequestPending
	args := []any{req.ID, req.SenderID, req.RecipientID, req.Amount, req.Message,
		req.ContextType, req.ContextID, req.Status, req.ExpiresAt}

	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &req.CreatedAt, query, args...)
	logQuery(query, args, req.CreatedAt, err)
	return err
}

// GetForUpdate locks and returns a request or ErrNotFound.
func (r *TransferRequestRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*models.TransferRequest, error) {
	const query = `SELECT ` + transferRequestColumns + ` FROM mass_coin_transfer_requests WHERE id = $1 FOR UPDATE`

	var req models.TransferRequest
	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &req, query, id)
	logQuery(query, []any{id}, req.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatus moves a request from one status to another or fails with ErrStatusConflict.
func (r *TransferRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.TransferRequestStatus) error {
	const query = `UPDATE mass_coin_transfer_requests SET status = $3 WHERE id = $1 AND status = $2`
	args := []any{id, from, to}

	res, err := getExecutor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

// ListByUser returns requests the user sent or received, newest first.
func (r *TransferRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.TransferRequest, error) {
	const query = `
		SELECT ` + transferRequestColumns + `
		FROM mass_coin_transfer_requests
		WHERE sender_id = $1 OR recipient_id = $1
		ORDER BY created_at DESC, id DESC
	`

	requests := []models.TransferRequest{}
	err := sqlx.SelectContext(ctx, getExecutor(ctx, r.db, r.txGetter), &requests, query, userID)
	logQuery(query, []any{userID}, len(requests), err)
	return requests, err
}

// CountPending counts live PENDING requests addressed to the user.
func (r *TransferRequestRepository) CountPending(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM mass_coin_transfer_requests
		WHERE recipient_id = $1 AND status = 'PENDING' AND expires_at > NOW()
	`

	var count int64
	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &count, query, recipientID)
	logQuery(query, []any{recipientID}, count, err)
	return count, err
}

// ExpireOverdue marks PENDING requests past their deadline EXPIRED.
func (r *TransferRequestRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	const query = `
		UPDATE mass_coin_transfer_requests
		SET status = 'EXPIRED'
		WHERE status = 'PENDING' AND expires_at <= $1
	`

	res, err := getExecutor(ctx, r.db, r.txGetter).ExecContext(ctx, query, now)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{now}, rowsAffected, err)
	return rowsAffected, err
}

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

const withdrawalColumns = `id, user_id, amount, method, destination, status, metadata,
	idempotency_key, failure_reason, payout_reference, chain_nonce, chain_tx_hash, created_at, updated_at`

// WithdrawalRepository handles mass_coin_withdrawals.
type WithdrawalRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWithdrawalRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WithdrawalRepository {
	return &WithdrawalRepository{db: db, txGetter: txGetter}
}

// Create inserts w with status PENDING. A reused idempotency key yields ErrDuplicate.
func (r *WithdrawalRepository) Create(ctx context.Context, w *models.Withdrawal) error {
	const query = `
		INSERT INTO mass_coin_withdrawals (id, user_id, amount, method, destination, status,
			metadata, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING created_at
	`
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	w.Status = models.WithdrawalPending
	args := []any{w.ID, w.UserID, w.Amount, w.Method, w.Destination, w.Status, w.Metadata, w.IdempotencyKey}

	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &w.CreatedAt, query, args...)
	logQuery(query, args, w.CreatedAt, err)
	return mapError(err)
}

// GetByID returns a withdrawal or ErrNotFound.
func (r *WithdrawalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Withdrawal, error) {
	const query = `SELECT ` + withdrawalColumns + ` FROM mass_coin_withdrawals WHERE id = $1`

	var w models.Withdrawal
	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &w, query, id)
	logQuery(query, []any{id}, w.Status, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// GetByIdempotencyKey returns the user's withdrawal created with key, or nil.
func (r *WithdrawalRepository) GetByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*models.Withdrawal, error) {
	const query = `
		SELECT ` + withdrawalColumns + `
		FROM mass_coin_withdrawals
		WHERE user_id = $1 AND idempotency_key = $2
	`

	var w models.Withdrawal
	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &w, query, userID, key)
	logQuery(query, []any{userID, key}, w.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListByUser returns the user's withdrawals, newest first.
func (r *WithdrawalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Withdrawal, error) {
	const query = `
		SELECT ` + withdrawalColumns + `
		FROM mass_coin_withdrawals
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	withdrawals := []models.Withdrawal{}
	err := sqlx.SelectContext(ctx, getExecutor(ctx, r.db, r.txGetter), &withdrawals, query, userID)
	logQuery(query, []any{userID}, len(withdrawals), err)
	return withdrawals, err
}

// ClaimPending locks up to limit PENDING withdrawals, oldest first,
// skipping rows locked by other workers.
func (r *WithdrawalRepository) ClaimPending(ctx context.Context, limit int) ([]models.Withdrawal, error) {
	const query = `
		SELECT ` + withdrawalColumns + `
		FROM mass_coin_withdrawals
		WHERE status = 'PENDING'
		ORDER BY created_at, id
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`

	var withdrawals []models.Withdrawal
	err := sqlx.SelectContext(ctx, getExecutor(ctx, r.db, r.txGetter), &withdrawals, query, limit)
	logQuery(query, []any{limit}, len(withdrawals), err)
	return withdrawals, err
}

// ClaimStale picks up to limit withdrawals left in PROCESSING for longer
// than olderThan, oldest first, and touches updated_at so that other
// workers leave them alone for another olderThan.
func (r *WithdrawalRepository) ClaimStale(ctx context.Context, olderThan time.Duration, limit int) ([]models.Withdrawal, error) {
	const query = `
		UPDATE mass_coin_withdrawals
		SET updated_at = NOW()
		WHERE id IN (
			SELECT id
			FROM mass_coin_withdrawals
			WHERE status = 'PROCESSING'
			  AND COALESCE(updated_at, created_at) < NOW() - make_interval(secs => $1)
			ORDER BY updated_at, id
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + withdrawalColumns

	args := []any{olderThan.Seconds(), limit}
	var withdrawals []models.Withdrawal
	err := sqlx.SelectContext(ctx, getExecutor(ctx, r.db, r.txGetter), &withdrawals, query, args...)
	logQuery(query, args, len(withdrawals), err)
	return withdrawals, err
}

// UpdateStatus moves a withdrawal from one status to another. It fails
// with ErrStatusConflict when the row is not in status from.
func (r *WithdrawalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.WithdrawalStatus, reason *string) error {
	const query = `
		UPDATE mass_coin_withdrawals
		SET status = $3, failure_reason = COALESCE($4, failure_reason), updated_at = NOW()
		WHERE id = $1 AND status = $2
	`
	return r.execGuarded(ctx, query, id, from, to, reason)
}

// SavePayoutReference stores the provider reference or transaction hash
// of a paid withdrawal that is still PROCESSING.
func (r *WithdrawalRepository) SavePayoutReference(ctx context.Context, id uuid.UUID, reference string) error {
	const query = `
		UPDATE mass_coin_withdrawals
		SET payout_reference = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'PROCESSING'
	`
	return r.execGuarded(ctx, query, id, reference)
}

// SaveChainSubmission stores the nonce and hash of the last signed P2P
// transaction.
func (r *WithdrawalRepository) SaveChainSubmission(ctx context.Context, id uuid.UUID, nonce uint64, txHash string) error {
	const query = `
		UPDATE mass_coin_withdrawals
		SET chain_nonce = $2, chain_tx_hash = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'PROCESSING'
	`
	return r.execGuarded(ctx, query, id, int64(nonce), txHash)
}

// RecordAttemptError keeps a PROCESSING withdrawal as is and stores the
// error of its last payout attempt.
func (r *WithdrawalRepository) RecordAttemptError(ctx context.Context, id uuid.UUID, reason string) error {
	const query = `
		UPDATE mass_coin_withdrawals
		SET failure_reason = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'PROCESSING'
	`
	return r.execGuarded(ctx, query, id, reason)
}

func (r *WithdrawalRepository) execGuarded(ctx context.Context, query string, args ...any) error {
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

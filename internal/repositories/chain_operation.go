package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/maschat/internal/models"
)

const chainOperationColumns = `id, user_id, kind, from_address, to_address, amount, period,
	transaction_id, status, attempts, nonce, tx_hash, last_error, claimed_until, created_at, updated_at`

// ChainOperationRepository is the chain outbox.
type ChainOperationRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewChainOperationRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ChainOperationRepository {
	return &ChainOperationRepository{db: db, txGetter: txGetter}
}

// Enqueue inserts a PENDING operation.
func (r *ChainOperationRepository) Enqueue(ctx context.Context, op *models.ChainOperation) error {
	const query = `
		INSERT INTO chain_operations (id, user_id, kind, from_address, to_address, amount, period,
			transaction_id, status, attempts, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, clock_timestamp(), clock_timestamp())
		RETURNING created_at
	`
	if op.ID == uuid.Nil {
		op.ID = uuid.New()
	}
	op.Status = models.ChainOperationPending
	args := []any{op.ID, op.UserID, op.Kind, op.FromAddress, op.ToAddress, op.Amount, op.Period,
		op.TransactionID, op.Status}

	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &op.CreatedAt, query, args...)
	logQuery(query, args, op.CreatedAt, err)
	return err
}

// TryLock takes a transaction scoped advisory lock so that only one
// dispatcher in the cluster works the outbox at a time.
func (r *ChainOperationRepository) TryLock(ctx context.Context, key int64) (bool, error) {
	const query = `SELECT pg_try_advisory_xact_lock($1)`

	var locked bool
	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &locked, query, key)
	logQuery(query, []any{key}, locked, err)
	return locked, err
}

// ClaimPending leases up to limit PENDING operations for lease, in
// creation order. Users with an operation still under a live lease are
// skipped so that a user's operations never run out of order.
func (r *ChainOperationRepository) ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]models.ChainOperation, error) {
	const query = `
		WITH claimed AS (
			UPDATE chain_operations
			SET claimed_until = NOW() + make_interval(secs => $2)
			WHERE id IN (
				SELECT o.id
				FROM chain_operations o
				WHERE o.status = 'PENDING'
				  AND (o.claimed_until IS NULL OR o.claimed_until < NOW())
				  AND NOT EXISTS (
					SELECT 1 FROM chain_operations b
					WHERE b.user_id = o.user_id AND b.status = 'PENDING' AND b.claimed_until >= NOW()
				  )
				ORDER BY o.created_at, o.id
				LIMIT $1
				FOR UPDATE SKIP LOCKED
			)
			RETURNING ` + chainOperationColumns + `
		)
		SELECT ` + chainOperationColumns + ` FROM claimed ORDER BY created_at, id
	`

	args := []any{limit, lease.Seconds()}
	var ops []models.ChainOperation
	err := sqlx.SelectContext(ctx, getExecutor(ctx, r.db, r.txGetter), &ops, query, args...)
	logQuery(query, args, len(ops), err)
	return ops, err
}

// SaveSubmission stores the nonce and hash of the transaction signed for
// a leased operation, before it is broadcast.
func (r *ChainOperationRepository) SaveSubmission(ctx context.Context, id uuid.UUID, nonce uint64, txHash string) error {
	const query = `
		UPDATE chain_operations
		SET nonce = $2, tx_hash = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`
	return r.exec(ctx, query, id, int64(nonce), txHash)
}

// MarkSubmitted records a successful submission.
func (r *ChainOperationRepository) MarkSubmitted(ctx context.Context, id uuid.UUID, txHash string) error {
	const query = `
		UPDATE chain_operations
		SET status = 'SUBMITTED', tx_hash = $2, attempts = attempts + 1, last_error = NULL,
			claimed_until = NULL, updated_at = NOW()
		WHERE id = $1
	`
	return r.exec(ctx, query, id, txHash)
}

// MarkRetry records a transient failure; the operation stays PENDING with
// its nonce so that the next attempt replaces the same transaction.
func (r *ChainOperationRepository) MarkRetry(ctx context.Context, id uuid.UUID, lastError string) error {
	const query = `
		UPDATE chain_operations
		SET attempts = attempts + 1, last_error = $2, claimed_until = NULL, updated_at = NOW()
		WHERE id = $1
	`
	return r.exec(ctx, query, id, lastError)
}

// MarkFailed records a permanent failure.
func (r *ChainOperationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error {
	const query = `
		UPDATE chain_operations
		SET status = 'FAILED', attempts = attempts + 1, last_error = $2, claimed_until = NULL, updated_at = NOW()
		WHERE id = $1
	`
	return r.exec(ctx, query, id, lastError)
}

// ReleaseClaim drops the lease of an operation that was claimed but not
// attempted.
func (r *ChainOperationRepository) ReleaseClaim(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE chain_operations SET claimed_until = NULL WHERE id = $1 AND status = 'PENDING'`
	return r.exec(ctx, query, id)
}

func (r *ChainOperationRepository) exec(ctx context.Context, query string, args ...any) error {
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
		return ErrNotFound
	}
	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/maschat/internal/models"
)

const transactionColumns = `id, sender_id, recipient_id, amount, transaction_type, status,
	transaction_hash, usd_value, description, context_type, context_id, created_at`

// TransactionRepository handles mass_coin_transactions.
type TransactionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionRepository {
	return &TransactionRepository{db: db, txGetter: txGetter}
}

// Save inserts txn. ID and CreatedAt are filled in when empty.
func (r *TransactionRepository) Save(ctx context.Context, txn *models.Transaction) error {
	const query = `
		INSERT INTO mass_coin_transactions (id, sender_id, recipient_id, amount, transaction_type,
			status, transaction_hash, usd_value, description, context_type, context_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING created_at
	`
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	args := []any{txn.ID, txn.SenderID, txn.RecipientID, txn.Amount, txn.Type, txn.Status,
		txn.TransactionHash, txn.USDValue, txn.Description, txn.ContextType, txn.ContextID}

	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &txn.CreatedAt, query, args...)
	logQuery(query, args, txn.CreatedAt, err)
	return err
}

// ListByUser returns one page of transactions the user sent or received,
// newest first, together with the total count.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Transaction, int64, error) {
	const countQuery = `
		SELECT COUNT(*) FROM mass_coin_transactions
		WHERE sender_id = $1 OR recipient_id = $1
	`
	const query = `
		SELECT ` + transactionColumns + `
		FROM mass_coin_transactions
		WHERE sender_id = $1 OR recipient_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	executor := getExecutor(ctx, r.db, r.txGetter)

	var total int64
	err := sqlx.GetContext(ctx, executor, &total, countQuery, userID)
	logQuery(countQuery, []any{userID}, total, err)
	if err != nil {
		return nil, 0, err
	}

	txns := []models.Transaction{}
	err = sqlx.SelectContext(ctx, executor, &txns, query, userID, limit, offset)
	logQuery(query, []any{userID, limit, offset}, len(txns), err)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

// SetStatusByContext settles the transactions attached to a context,
// e.g. the WITHDRAWAL record of a withdrawal.
func (r *TransactionRepository) SetStatusByContext(ctx context.Context, contextType, contextID string, status models.TransactionStatus, hash *string) error {
	const query = `
		UPDATE mass_coin_transactions
		SET status = $3, transaction_hash = COALESCE($4, transaction_hash)
		WHERE context_type = $1 AND context_id = $2
	`
	args := []any{contextType, contextID, status, hash}

	res, err := getExecutor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	return err
}

// SetHash stores the on-chain hash of a transaction.
func (r *TransactionRepository) SetHash(ctx context.Context, id uuid.UUID, hash string) error {
	const query = `UPDATE mass_coin_transactions SET transaction_hash = $2, status = $3 WHERE id = $1`
	args := []any{id, hash, models.TransactionConfirmed}

	res, err := getExecutor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	return err
}

// Stats aggregates the user's activity.
func (r *TransactionRepository) Stats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error) {
	const query = `
		SELECT
			COUNT(*) AS total_transactions,
			COALESCE(SUM(amount), 0) AS total_volume,
			COALESCE(ROUND(AVG(amount), 6), 0) AS average_transaction,
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'CONTENT_TIP' AND recipient_id = $1), 0) AS tips_received,
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'CONTENT_TIP' AND sender_id = $1), 0) AS tips_sent,
			COALESCE(SUM(amount) FILTER (WHERE transaction_type IN ('REWARD_DISTRIBUTION', 'STAKING_REWARD') AND recipient_id = $1), 0) AS rewards_earned
		FROM mass_coin_transactions
		WHERE (sender_id = $1 OR recipient_id = $1) AND status <> 'FAILED'
	`

	var stats models.UserStats
	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &stats, query, userID)
	logQuery(query, []any{userID}, stats.TotalTransactions, err)

	if errors.Is(err, sql.ErrNoRows) {
		return &models.UserStats{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

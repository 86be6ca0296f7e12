package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var withdrawalColumnNames = []string{
	"id", "user_id", "amount", "method", "destination", "status", "metadata",
	"idempotency_key", "failure_reason", "payout_reference", "chain_nonce", "chain_tx_hash",
	"created_at", "updated_at",
}

func TestWithdrawalRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWithdrawalRepository(db, nil)
	key := "key-1"
	now := time.Now()

	w := &models.Withdrawal{
		UserID:         uuid.New(),
		Amount:         decimal.NewFromInt(10),
		Method:         models.WithdrawalBank,
		Destination:    "DE89370400440532013000",
		IdempotencyKey: &key,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO mass_coin_withdrawals")).
		WithArgs(sqlmock.AnyArg(), w.UserID, w.Amount, "BANK", w.Destination, "PENDING", nil, key).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	require.NoError(t, repo.Create(context.Background(), w))
	assert.NotEqual(t, uuid.Nil, w.ID)
	assert.Equal(t, models.WithdrawalPending, w.Status)
	assert.Equal(t, now, w.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepository_Create_DuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWithdrawalRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO mass_coin_withdrawals")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "withdrawals_idempotency_key_key"})

	err := repo.Create(context.Background(), &models.Withdrawal{UserID: uuid.New(), Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestWithdrawalRepository_GetByIdempotencyKey(t *testing.T) {
	userID := uuid.New()
	query := regexp.QuoteMeta("WHERE user_id = $1 AND idempotency_key = $2")

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWithdrawalRepository(db, nil)
		id := uuid.New()
		mock.ExpectQuery(query).WithArgs(userID, "k").WillReturnRows(
			sqlmock.NewRows(withdrawalColumnNames).
				AddRow(id.String(), userID.String(), "5", "P2P", "0xabc", "PENDING", nil, "k", nil, nil, nil, nil, time.Now(), nil))

		w, err := repo.GetByIdempotencyKey(context.Background(), userID, "k")
		require.NoError(t, err)
		assert.Equal(t, id, w.ID)
		assert.Equal(t, models.WithdrawalP2P, w.Method)
		assert.Nil(t, w.UpdatedAt)
	})

	t.Run("not_found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWithdrawalRepository(db, nil)
		mock.ExpectQuery(query).WithArgs(userID, "k").WillReturnError(sql.ErrNoRows)

		w, err := repo.GetByIdempotencyKey(context.Background(), userID, "k")
		assert.NoError(t, err)
		assert.Nil(t, w)
	})
}

func TestWithdrawalRepository_ListByUser_NewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWithdrawalRepository(db, nil)
	userID := uuid.New()
	newer, older := time.Now(), time.Now().Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(withdrawalColumnNames).
			AddRow(uuid.NewString(), userID.String(), "1", "BANK", "acc", "PENDING", nil, nil, nil, nil, nil, nil, newer, nil).
			AddRow(uuid.NewString(), userID.String(), "2", "MOBILE_MONEY", "momo", "FAILED", `{"k":1}`, nil, "declined", nil, nil, nil, older, older))

	list, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))
	assert.Equal(t, "declined", *list[1].FailureReason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepository_UpdateStatus(t *testing.T) {
	id := uuid.New()
	reason := "provider declined"
	query := regexp.QuoteMeta("WHERE id = $1 AND status = $2")

	t.Run("moved", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWithdrawalRepository(db, nil)
		mock.ExpectExec(query).WithArgs(id, "PROCESSING", "FAILED", reason).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateStatus(context.Background(), id, models.WithdrawalProcessing, models.WithdrawalFailed, &reason))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWithdrawalRepository(db, nil)
		mock.ExpectExec(query).WithArgs(id, "PENDING", "PROCESSING", nil).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), id, models.WithdrawalPending, models.WithdrawalProcessing, nil)
		assert.ErrorIs(t, err, ErrStatusConflict)
	})
}

func TestWithdrawalRepository_ClaimPending(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWithdrawalRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(withdrawalColumnNames).
			AddRow(uuid.NewString(), uuid.NewString(), "3", "BANK", "acc", "PENDING", nil, nil, nil, nil, nil, nil, time.Now(), nil))

	list, err := repo.ClaimPending(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepository_ClaimStale(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWithdrawalRepository(db, nil)
	id := uuid.New()
	stuck := time.Now().Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'PROCESSING'")).
		WithArgs(float64(300), 5).
		WillReturnRows(sqlmock.NewRows(withdrawalColumnNames).
			AddRow(id.String(), uuid.NewString(), "2", "P2P", "0xabc", "PROCESSING", nil, nil, "timeout", nil, int64(12), "0xfeed", stuck, time.Now()))

	list, err := repo.ClaimStale(context.Background(), 5*time.Minute, 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, models.WithdrawalProcessing, list[0].Status)
	require.NotNil(t, list[0].ChainNonce)
	assert.Equal(t, int64(12), *list[0].ChainNonce)
	assert.Equal(t, "0xfeed", *list[0].ChainTxHash)
	assert.Nil(t, list[0].PayoutReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRepository_ProcessingUpdates(t *testing.T) {
	id := uuid.New()
	ctx := context.Background()

	t.Run("payout reference", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWithdrawalRepository(db, nil)
		mock.ExpectExec(regexp.QuoteMeta("SET payout_reference = $2")).WithArgs(id, "po_1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SavePayoutReference(ctx, id, "po_1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("chain submission", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWithdrawalRepository(db, nil)
		mock.ExpectExec(regexp.QuoteMeta("SET chain_nonce = $2, chain_tx_hash = $3")).WithArgs(id, int64(7), "0xabc").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SaveChainSubmission(ctx, id, 7, "0xabc"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("attempt error on a settled withdrawal", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWithdrawalRepository(db, nil)
		mock.ExpectExec(regexp.QuoteMeta("SET failure_reason = $2, updated_at = NOW()")).WithArgs(id, "timeout").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RecordAttemptError(ctx, id, "timeout")
		assert.ErrorIs(t, err, ErrStatusConflict)
	})
}

package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, nil)
	now := time.Now()
	sender := uuid.New()

	txn := &models.Transaction{
		SenderID:    &sender,
		RecipientID: uuid.New(),
		Amount:      decimal.NewFromInt(3),
		Type:        models.TransactionP2PTransfer,
		Status:      models.TransactionConfirmed,
		ContextType: models.ContextProfile,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO mass_coin_transactions")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	require.NoError(t, repo.Save(context.Background(), txn))
	assert.NotEqual(t, uuid.Nil, txn.ID)
	assert.Equal(t, now, txn.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, nil)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM mass_coin_transactions")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
		WithArgs(userID, 2, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "sender_id", "recipient_id", "amount", "transaction_type", "status",
			"transaction_hash", "usd_value", "description", "context_type", "context_id", "created_at",
		}).
			AddRow(uuid.NewString(), nil, userID.String(), "10", "REWARD_DISTRIBUTION", "CONFIRMED", nil, nil, "reward", "REWARD", nil, time.Now()).
			AddRow(uuid.NewString(), userID.String(), uuid.NewString(), "1", "CONTENT_TIP", "CONFIRMED", "0xabc", "0.01", "tip", "POST", "42", time.Now()))

	txns, total, err := repo.ListByUser(context.Background(), userID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, txns, 2)
	assert.Nil(t, txns[0].SenderID)
	assert.Equal(t, userID, *txns[1].SenderID)
	assert.True(t, txns[1].USDValue.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_SetStatusByContext(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, nil)
	hash := "0xfeed"

	mock.ExpectExec(regexp.QuoteMeta("WHERE context_type = $1 AND context_id = $2")).
		WithArgs("WITHDRAWAL", "w-1", "CONFIRMED", hash).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetStatusByContext(context.Background(), models.ContextWithdrawal, "w-1", models.TransactionConfirmed, &hash))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Stats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, nil)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("AS total_transactions")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{
			"total_transactions", "total_volume", "average_transaction", "tips_received", "tips_sent", "rewards_earned",
		}).AddRow(4, "40", "10", "5", "2", "20"))

	stats, err := repo.Stats(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalTransactions)
	assert.True(t, decimal.NewFromInt(10).Equal(stats.AverageTransaction))
	assert.True(t, decimal.NewFromInt(20).Equal(stats.RewardsEarned))
}

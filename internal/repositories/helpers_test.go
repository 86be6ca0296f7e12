package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func walletRows(userID uuid.UUID, balance, staked string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"wallet_id", "user_id", "wallet_address", "balance", "staked_amount", "total_earned",
		"total_spent", "chain_balance", "is_active", "last_sync_at", "created_at", "updated_at",
	}).AddRow(uuid.New().String(), userID.String(), nil, balance, staked, "0", "0", nil, true, nil, now, now)
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
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

func TestTransactor_WithinTx(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
			assert.NotNil(t, TxFromContext(ctx))
			return nil
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()
		boom := errors.New("boom")

		err := NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("joins_outer_tx", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()
		transactor := NewTransactor(db)

		err := transactor.WithinTx(context.Background(), func(outer context.Context) error {
			return transactor.WithinTx(outer, func(inner context.Context) error {
				assert.Same(t, TxFromContext(outer), TxFromContext(inner))
				return nil
			})
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback_on_panic", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error { panic("boom") })
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	username := "alice"
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WithArgs(&username, nil).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(userID.String(), "alice", "alice@example.com", "hash", time.Now(), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users")).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByUsernameOrEmail(context.Background(), &username, nil)
	require.NoError(t, err)
	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "hash", user.PasswordHash)

	user, err = repo.GetByUsernameOrEmail(context.Background(), &username, nil)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "bob", "bob@example.com", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(userID.String()))

	id, err := repo.Save(context.Background(), "bob", "hash", "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, id)
}

func TestTransferRequestRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransferRequestRepository(db, nil)
	now := time.Now()
	req := &models.TransferRequest{
		SenderID:    uuid.New(),
		RecipientID: uuid.New(),
		Amount:      decimal.NewFromInt(5),
		ExpiresAt:   now.Add(24 * time.Hour),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO mass_coin_transfer_requests")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE mass_coin_transfer_requests SET status = $3")).
		WithArgs(sqlmock.AnyArg(), "PENDING", "APPROVED").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM mass_coin_transfer_requests")).
		WithArgs(req.RecipientID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'EXPIRED'")).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, req))
	assert.Equal(t, models.TransferRequestPending, req.Status)

	err := repo.UpdateStatus(ctx, req.ID, models.TransferRequestPending, models.TransferRequestApproved)
	assert.ErrorIs(t, err, ErrStatusConflict)

	count, err := repo.CountPending(ctx, req.RecipientID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	expired, err := repo.ExpireOverdue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), expired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChainOperationRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChainOperationRepository(db, nil)
	ctx := context.Background()
	addr := "0x00000000000000000000000000000000000000aa"
	op := &models.ChainOperation{UserID: uuid.New(), Kind: models.ChainRegister, FromAddress: &addr}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO chain_operations")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT pg_try_advisory_xact_lock($1)")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"locked"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'SUBMITTED'")).
		WithArgs(op.ID, "0xhash").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'FAILED'")).
		WithArgs(op.ID, "reverted").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Enqueue(ctx, op))
	assert.Equal(t, models.ChainOperationPending, op.Status)

	locked, err := repo.TryLock(ctx, 7)
	require.NoError(t, err)
	assert.True(t, locked)

	assert.NoError(t, repo.MarkSubmitted(ctx, op.ID, "0xhash"))
	assert.ErrorIs(t, repo.MarkFailed(ctx, op.ID, "reverted"), ErrNotFound)
}

var chainOperationColumnNames = []string{
	"id", "user_id", "kind", "from_address", "to_address", "amount", "period",
	"transaction_id", "status", "attempts", "nonce", "tx_hash", "last_error", "claimed_until", "created_at", "updated_at",
}

func TestChainOperationRepository_Leases(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewChainOperationRepository(db, nil)
	ctx := context.Background()
	id := uuid.New()
	lease := time.Now().Add(time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("SET claimed_until = NOW() + make_interval(secs => $2)")).
		WithArgs(10, float64(120)).
		WillReturnRows(sqlmock.NewRows(chainOperationColumnNames).
			AddRow(id.String(), uuid.NewString(), "TRANSFER", "0xaa", "0xbb", "1", 0, nil, "PENDING", 1, int64(3), "0xold", "timeout", lease, time.Now(), time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("SET nonce = $2, tx_hash = $3")).
		WithArgs(id, int64(3), "0xnew").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET attempts = attempts + 1, last_error = $2, claimed_until = NULL")).
		WithArgs(id, "timeout").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE chain_operations SET claimed_until = NULL WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ops, err := repo.ClaimPending(ctx, 10, 2*time.Minute)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.NotNil(t, ops[0].Nonce)
	assert.Equal(t, int64(3), *ops[0].Nonce)
	assert.Equal(t, "0xold", *ops[0].TxHash)
	assert.NotNil(t, ops[0].ClaimedUntil)

	assert.NoError(t, repo.SaveSubmission(ctx, id, 3, "0xnew"))
	assert.NoError(t, repo.MarkRetry(ctx, id, "timeout"))
	assert.NoError(t, repo.ReleaseClaim(ctx, id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db, nil)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO messages")).
		WithArgs(sqlmock.AnyArg(), alice, bob, "hi").
		WillReturnRows(sqlmock.NewRows([]string{"sent_at"}).AddRow(time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY sent_at, id")).
		WithArgs(alice, bob, 50).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "sender_id", "recipient_id", "content", "sent_at", "read_at", "deleted_by_sender", "deleted_by_recipient",
		}).AddRow(uuid.NewString(), alice.String(), bob.String(), "hi", time.Now(), nil, false, false))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE messages SET read_at = NOW()")).
		WithArgs(bob, alice).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("deleted_by_sender = deleted_by_sender OR sender_id = $2")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	msg := &models.Message{SenderID: alice, RecipientID: bob, Content: "hi"}
	require.NoError(t, repo.Save(ctx, msg))
	assert.NotEqual(t, uuid.Nil, msg.ID)

	msgs, err := repo.Conversation(ctx, alice, bob, 50)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	n, err := repo.MarkRead(ctx, bob, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.ErrorIs(t, repo.SoftDelete(ctx, uuid.New(), alice), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

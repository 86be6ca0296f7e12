package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/shopspring/decimal"
)

const walletColumns = `wallet_id, user_id, wallet_address, balance, staked_amount, total_earned,
	total_spent, chain_balance, is_active, last_sync_at, created_at, updated_at`

// WalletRepository handles mass_coin_wallets reads and writes.
// Balance changes are single conditional UPDATE statements so that a
// balance can never be driven below zero.
type WalletRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletRepository {
	return &WalletRepository{db: db, txGetter: txGetter}
}

// GetOrCreate returns the user's wallet, creating an empty one if needed.
func (r *WalletRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	const query = `
		INSERT INTO mass_coin_wallets (wallet_id, user_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING ` + walletColumns

	var w models.Wallet
	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &w, query, uuid.New(), userID)
	logQuery(query, []any{userID}, w.WalletID, err)

	if err != nil {
		return nil, err
	}
	return &w, nil
}

// GetForUpdate locks and returns the user's wallet.
func (r *WalletRepository) GetForUpdate(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	const query = `SELECT ` + walletColumns + ` FROM mass_coin_wallets WHERE user_id = $1 FOR UPDATE`
	return r.getOne(ctx, query, userID)
}

// LockPair locks two wallets in ascending user id order and returns them
// in argument order.
func (r *WalletRepository) LockPair(ctx context.Context, first, second uuid.UUID) (*models.Wallet, *models.Wallet, error) {
	const query = `
		SELECT ` + walletColumns + `
		FROM mass_coin_wallets
		WHERE user_id IN ($1, $2)
		ORDER BY user_id
		FOR UPDATE
	`

	var wallets []models.Wallet
	err := sqlx.SelectContext(ctx, getExecutor(ctx, r.db, r.txGetter), &wallets, query, first, second)
	logQuery(query, []any{first, second}, len(wallets), err)
	if err != nil {
		return nil, nil, err
	}

	var a, b *models.Wallet
	for i := range wallets {
		switch wallets[i].UserID {
		case first:
			a = &wallets[i]
		case second:
			b = &wallets[i]
		}
	}
	if a == nil || b == nil {
		return nil, nil, ErrNotFound
	}
	return a, b, nil
}

// Debit subtracts amount from the spendable balance.
func (r *WalletRepository) Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) {
	const query = `
		UPDATE mass_coin_wallets
		SET balance = balance - $2, total_spent = total_spent + $2, updated_at = NOW()
		WHERE user_id = $1 AND balance >= $2
		RETURNING ` + walletColumns
	return r.update(ctx, query, ErrInsufficientBalance, userID, amount)
}

// Credit adds amount to the spendable balance and lifetime earnings.
func (r *WalletRepository) Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) {
	const query = `
		UPDATE mass_coin_wallets
		SET balance = balance + $2, total_earned = total_earned + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + walletColumns
	return r.update(ctx, query, ErrNotFound, userID, amount)
}

// Refund returns a previously debited amount.
func (r *WalletRepository) Refund(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) {
	const query = `
		UPDATE mass_coin_wallets
		SET balance = balance + $2, total_spent = GREATEST(total_spent - $2, 0), updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + walletColumns
	return r.update(ctx, query, ErrNotFound, userID, amount)
}

// Stake moves amount from balance to staked_amount.
func (r *WalletRepository) Stake(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) {
	const query = `
		UPDATE mass_coin_wallets
		SET balance = balance - $2, staked_amount = staked_amount + $2, updated_at = NOW()
		WHERE user_id = $1 AND balance >= $2
		RETURNING ` + walletColumns
	return r.update(ctx, query, ErrInsufficientBalance, userID, amount)
}

// Unstake moves amount from staked_amount back to balance.
func (r *WalletRepository) Unstake(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) {
	const query = `
		UPDATE mass_coin_wallets
		SET balance = balance + $2, staked_amount = staked_amount - $2, updated_at = NOW()
		WHERE user_id = $1 AND staked_amount >= $2
		RETURNING ` + walletColumns
	return r.update(ctx, query, ErrInsufficientBalance, userID, amount)
}

// SetAddress stores the user's on-chain address. An address already bound
// to another wallet yields ErrDuplicate.
func (r *WalletRepository) SetAddress(ctx context.Context, userID uuid.UUID, address string) (*models.Wallet, error) {
	const query = `
		UPDATE mass_coin_wallets
		SET wallet_address = $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + walletColumns
	return r.update(ctx, query, ErrNotFound, userID, address)
}

// ListSyncable returns active wallets that have an on-chain address.
func (r *WalletRepository) ListSyncable(ctx context.Context) ([]models.Wallet, error) {
	const query = `
		SELECT ` + walletColumns + `
		FROM mass_coin_wallets
		WHERE is_active AND wallet_address IS NOT NULL
		ORDER BY user_id
	`

	var wallets []models.Wallet
	err := sqlx.SelectContext(ctx, getExecutor(ctx, r.db, r.txGetter), &wallets, query)
	logQuery(query, nil, len(wallets), err)
	return wallets, err
}

// SaveChainBalance records the balance observed on chain. The local
// balance is left untouched.
func (r *WalletRepository) SaveChainBalance(ctx context.Context, userID uuid.UUID, chainBalance decimal.Decimal, syncedAt time.Time) error {
	const query = `
		UPDATE mass_coin_wallets
		SET chain_balance = $2, last_sync_at = $3
		WHERE user_id = $1
	`
	args := []any{userID, chainBalance, syncedAt}

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

func (r *WalletRepository) getOne(ctx context.Context, query string, args ...any) (*models.Wallet, error) {
	var w models.Wallet
	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &w, query, args...)
	logQuery(query, args, w.Balance, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// update runs a conditional UPDATE ... RETURNING and maps a miss to noRows.
func (r *WalletRepository) update(ctx context.Context, query string, noRows error, args ...any) (*models.Wallet, error) {
	var w models.Wallet
	err := sqlx.GetContext(ctx, getExecutor(ctx, r.db, r.txGetter), &w, query, args...)
	logQuery(query, args, w.Balance, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, noRows
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &w, nil
}

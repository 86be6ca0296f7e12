package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/chain"
	"github.com/sbilibin2017/maschat/internal/logger"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/sbilibin2017/maschat/internal/repositories"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=services

var (
	// ErrInsufficientFunds is returned when a debit exceeds the spendable balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount is returned for non-positive amounts and amounts with
	// more than six decimal places or more than twelve integer digits.
	ErrInvalidAmount = errors.New("amount must be greater than zero with at most 6 decimal places")
	// ErrSelfTransfer is returned when sender and recipient are the same user.
	ErrSelfTransfer = errors.New("cannot transfer to yourself")
	// ErrWalletNotFound is returned when a wallet row is missing.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrInvalidWalletAddress is returned for malformed EVM addresses.
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
	// ErrWalletAddressTaken is returned when the address belongs to another wallet.
	ErrWalletAddressTaken = errors.New("wallet address already in use")
	// ErrInvalidTransactionType is returned for unknown transaction types.
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	// ErrInvalidStakingPeriod is returned for periods outside 1..255 months.
	ErrInvalidStakingPeriod = errors.New("invalid staking period")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// amountScale is the scale of the NUMERIC(18, 6) amount columns.
const amountScale = 6

var maxAmount = decimal.New(1, 18-amountScale)

// validAmount reports whether d is positive and stored without rounding.
func validAmount(d decimal.Decimal) bool {
	return d.IsPositive() && d.LessThan(maxAmount) && d.Equal(d.Truncate(amountScale))
}

// WalletRepository reads and changes wallet rows.
type WalletRepository interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)                     // Returns the wallet, creating an empty one
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*models.Wallet, error)                    // Locks and returns the wallet
	LockPair(ctx context.Context, first, second uuid.UUID) (*models.Wallet, *models.Wallet, error) // Locks two wallets in user id order
	Debit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error)   // Subtracts from balance
	Credit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error)  // Adds to balance
	Refund(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error)  // Returns a debited amount
	Stake(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error)   // Moves balance to staked
	Unstake(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) // Moves staked to balance
	SetAddress(ctx context.Context, userID uuid.UUID, address string) (*models.Wallet, error)      // Binds an on-chain address
}

// TransactionRepository stores the transaction history.
type TransactionRepository interface {
	Save(ctx context.Context, txn *models.Transaction) error                                                  // Inserts a transaction
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Transaction, int64, error) // Returns a page and the total count
	Stats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error)                                   // Aggregates a user's activity
}

// ChainOperationEnqueuer writes chain outbox entries.
type ChainOperationEnqueuer interface {
	Enqueue(ctx context.Context, op *models.ChainOperation) error // Inserts a PENDING operation
}

// PriceReader returns the MassCoin price.
type PriceReader interface {
	GetMassUSDPrice(ctx context.Context) (decimal.Decimal, error) // Returns the USD price of one MASS
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransferInput describes a wallet to wallet transfer.
type TransferInput struct {
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Amount      decimal.Decimal
	Type        models.TransactionType // defaults to P2P_TRANSFER
	Description string
	ContextType string // defaults to PROFILE
	ContextID   *string
}

// WalletService moves MassCoin between local wallets, mirrors the
// movements into the chain outbox and publishes them to Kafka.
type WalletService struct {
	tx          Transactor
	wallets     WalletRepository
	txns        TransactionRepository
	ops         ChainOperationEnqueuer
	prices      PriceReader
	kafkaWriter KafkaWriter
}

// NewWalletService creates a new WalletService.
func NewWalletService(
	tx Transactor,
	wallets WalletRepository,
	txns TransactionRepository,
	ops ChainOperationEnqueuer,
	prices PriceReader,
	kafkaWriter KafkaWriter,
) *WalletService {
	return &WalletService{
		tx:          tx,
		wallets:     wallets,
		txns:        txns,
		ops:         ops,
		prices:      prices,
		kafkaWriter: kafkaWriter,
	}
}

// PublishTransaction publishes a committed transaction to Kafka.
func (s *WalletService) PublishTransaction(ctx context.Context, txn *models.Transaction) {
	publishTransaction(ctx, s.kafkaWriter, txn)
}

func publishTransaction(ctx context.Context, w KafkaWriter, txn *models.Transaction) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.ID)
		return
	}

	data, err := json.Marshal(models.NewTransactionEvent(txn))
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", txn.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(txn.RecipientID.String()),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", txn.ID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", txn.ID, "amount", txn.Amount.String())
	}
}

// GetWallet returns the user's wallet, creating it on first access.
func (s *WalletService) GetWallet(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	w, err := s.wallets.GetOrCreate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return nil, err
	}
	return w, nil
}

// UpdateWalletAddress binds an EVM address to the wallet and enqueues its
// registration with the ledger.
func (s *WalletService) UpdateWalletAddress(ctx context.Context, userID uuid.UUID, address string) (*models.Wallet, error) {
	addr, err := chain.ValidateAddress(address)
	if err != nil {
		return nil, ErrInvalidWalletAddress
	}
	normalized := addr.Hex()

	var wallet *models.Wallet
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.wallets.GetOrCreate(ctx, userID)
		if err != nil {
			return err
		}
		if current.WalletAddress != nil && *current.WalletAddress == normalized {
			wallet = current
			return nil
		}

		wallet, err = s.wallets.SetAddress(ctx, userID, normalized)
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrWalletAddressTaken
		}
		if err != nil {
			return err
		}

		return s.ops.Enqueue(ctx, &models.ChainOperation{
			UserID:      userID,
			Kind:        models.ChainRegister,
			FromAddress: &normalized,
			Amount:      decimal.Zero,
		})
	})
	if err != nil {
		logger.Log.Errorw("failed to update wallet address", "userID", userID, "address", normalized, "error", err)
		return nil, err
	}

	logger.Log.Infow("wallet address updated", "userID", userID, "address", normalized)
	return wallet, nil
}

// Transfer moves in.Amount from the sender's to the recipient's wallet.
func (s *WalletService) Transfer(ctx context.Context, in TransferInput) (*models.Transaction, error) {
	txn, err := s.TransferInTx(ctx, in)
	if err != nil {
		return nil, err
	}

	s.PublishTransaction(ctx, txn)
	return txn, nil
}

// TransferInTx moves in.Amount within the transaction carried by ctx, or
// a new one. Nothing is published; a caller that owns the transaction
// calls PublishTransaction after its commit.
func (s *WalletService) TransferInTx(ctx context.Context, in TransferInput) (*models.Transaction, error) {
	var txn *models.Transaction
	err := s.tx.WithinTx(ctx, func(ctx context.Context) (err error) {
		txn, err = s.transfer(ctx, in)
		return err
	})
	if err != nil {
		logger.Log.Errorw("transfer failed", "sender", in.SenderID, "recipient", in.RecipientID, "amount", in.Amount.String(), "error", err)
		return nil, err
	}
	return txn, nil
}

// transfer runs inside a transaction. Both wallets are created and locked
// in ascending user id order so concurrent opposite transfers cannot
// deadlock.
func (s *WalletService) transfer(ctx context.Context, in TransferInput) (*models.Transaction, error) {
	if !validAmount(in.Amount) {
		return nil, ErrInvalidAmount
	}
	if in.SenderID == in.RecipientID {
		return nil, ErrSelfTransfer
	}
	if in.Type == "" {
		in.Type = models.TransactionP2PTransfer
	}
	if !in.Type.Valid() {
		return nil, ErrInvalidTransactionType
	}
	if in.ContextType == "" {
		in.ContextType = models.ContextProfile
	}

	lo, hi := in.SenderID, in.RecipientID
	if bytes.Compare(lo[:], hi[:]) > 0 {
		lo, hi = hi, lo
	}
	for _, id := range []uuid.UUID{lo, hi} {
		if _, err := s.wallets.GetOrCreate(ctx, id); err != nil {
			return nil, err
		}
	}

	sender, recipient, err := s.wallets.LockPair(ctx, in.SenderID, in.RecipientID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrWalletNotFound
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.wallets.Debit(ctx, in.SenderID, in.Amount); err != nil {
		if errors.Is(err, repositories.ErrInsufficientBalance) {
			return nil, ErrInsufficientFunds
		}
		return nil, err
	}
	if _, err := s.wallets.Credit(ctx, in.RecipientID, in.Amount); err != nil {
		return nil, err
	}

	onChain := sender.WalletAddress != nil && recipient.WalletAddress != nil
	status := models.TransactionConfirmed
	if onChain {
		status = models.TransactionPending
	}

	senderID := in.SenderID
	txn := &models.Transaction{
		SenderID:    &senderID,
		RecipientID: in.RecipientID,
		Amount:      in.Amount,
		Type:        in.Type,
		Status:      status,
		Description: in.Description,
		ContextType: in.ContextType,
		ContextID:   in.ContextID,
	}
	if err := s.txns.Save(ctx, txn); err != nil {
		return nil, err
	}

	if onChain {
		err := s.ops.Enqueue(ctx, &models.ChainOperation{
			UserID:        in.SenderID,
			Kind:          models.ChainTransfer,
			FromAddress:   sender.WalletAddress,
			ToAddress:     recipient.WalletAddress,
			Amount:        in.Amount,
			TransactionID: &txn.ID,
		})
		if err != nil {
			return nil, err
		}
	}

	return txn, nil
}

// Tip sends amount to the creator of postID.
func (s *WalletService) Tip(ctx context.Context, senderID, creatorID uuid.UUID, postID string, amount decimal.Decimal) (*models.Transaction, error) {
	return s.Transfer(ctx, TransferInput{
		SenderID:    senderID,
		RecipientID: creatorID,
		Amount:      amount,
		Type:        models.TransactionContentTip,
		Description: fmt.Sprintf("Tip for post %s", postID),
		ContextType: models.ContextPost,
		ContextID:   &postID,
	})
}

// Reward credits a platform reward to the user. Rewards have no sender.
func (s *WalletService) Reward(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, description string) (*models.Transaction, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}

	txn := &models.Transaction{
		RecipientID: userID,
		Amount:      amount,
		Type:        models.TransactionRewardDistribution,
		Status:      models.TransactionConfirmed,
		Description: description,
		ContextType: models.ContextReward,
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.wallets.GetOrCreate(ctx, userID); err != nil {
			return err
		}
		if _, err := s.wallets.Credit(ctx, userID, amount); err != nil {
			return err
		}
		return s.txns.Save(ctx, txn)
	})
	if err != nil {
		logger.Log.Errorw("reward failed", "userID", userID, "amount", amount.String(), "error", err)
		return nil, err
	}

	s.PublishTransaction(ctx, txn)
	return txn, nil
}

// Stake moves amount from the balance to the staked amount for periodMonths.
func (s *WalletService) Stake(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, periodMonths int) (*models.Wallet, error) {
	if periodMonths < 1 || periodMonths > math.MaxUint8 {
		return nil, ErrInvalidStakingPeriod
	}
	return s.stakeChange(ctx, userID, amount, periodMonths, models.TransactionStake)
}

// Unstake moves amount from the staked amount back to the balance.
func (s *WalletService) Unstake(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Wallet, error) {
	return s.stakeChange(ctx, userID, amount, 0, models.TransactionUnstake)
}

func (s *WalletService) stakeChange(ctx context.Context, userID uuid.UUID, amount decimal.Decimal, period int, typ models.TransactionType) (*models.Wallet, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}

	move, kind, description := s.wallets.Stake, models.ChainStake, fmt.Sprintf("Staked for %d months", period)
	if typ == models.TransactionUnstake {
		move, kind, description = s.wallets.Unstake, models.ChainUnstake, "Unstaked"
	}

	var (
		wallet *models.Wallet
		txn    *models.Transaction
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.wallets.GetForUpdate(ctx, userID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrWalletNotFound
			}
			return err
		}

		var err error
		wallet, err = move(ctx, userID, amount)
		if errors.Is(err, repositories.ErrInsufficientBalance) {
			return ErrInsufficientFunds
		}
		if err != nil {
			return err
		}

		status := models.TransactionConfirmed
		if wallet.WalletAddress != nil {
			status = models.TransactionPending
		}
		txn = &models.Transaction{
			SenderID:    &userID,
			RecipientID: userID,
			Amount:      amount,
			Type:        typ,
			Status:      status,
			Description: description,
			ContextType: models.ContextStaking,
		}
		if err := s.txns.Save(ctx, txn); err != nil {
			return err
		}

		if wallet.WalletAddress == nil {
			return nil
		}
		return s.ops.Enqueue(ctx, &models.ChainOperation{
			UserID:        userID,
			Kind:          kind,
			FromAddress:   wallet.WalletAddress,
			Amount:        amount,
			Period:        period,
			TransactionID: &txn.ID,
		})
	})
	if err != nil {
		logger.Log.Errorw("staking change failed", "userID", userID, "type", typ, "amount", amount.String(), "error", err)
		return nil, err
	}

	s.PublishTransaction(ctx, txn)
	return wallet, nil
}

// Transactions returns one page of the user's history, newest first, with
// usdValue filled from the current price where it was not recorded.
func (s *WalletService) Transactions(ctx context.Context, userID uuid.UUID, page, size int) (*models.TransactionPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	content, total, err := s.txns.ListByUser(ctx, userID, size, page*size)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "userID", userID, "error", err)
		return nil, err
	}
	if content == nil {
		content = []models.Transaction{}
	}

	if len(content) > 0 && s.prices != nil {
		price, err := s.prices.GetMassUSDPrice(ctx)
		if err != nil {
			logger.Log.Warnw("MASS price unavailable, usdValue left empty", "error", err)
		} else {
			for i := range content {
				if !content[i].USDValue.Valid {
					content[i].USDValue = decimal.NewNullDecimal(content[i].Amount.Mul(price).Round(6))
				}
			}
		}
	}

	return &models.TransactionPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		Last:          int64((page+1)*size) >= total,
	}, nil
}

// UserStats returns aggregated activity of the user.
func (s *WalletService) UserStats(ctx context.Context, userID uuid.UUID) (*models.UserStats, error) {
	stats, err := s.txns.Stats(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user stats", "userID", userID, "error", err)
		return nil, err
	}
	return stats, nil
}

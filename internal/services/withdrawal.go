package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/chain"
	"github.com/sbilibin2017/maschat/internal/facades"
	"github.com/sbilibin2017/maschat/internal/logger"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/sbilibin2017/maschat/internal/repositories"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=withdrawal.go -destination=mock_withdrawal.go -package=services

var (
	// ErrWithdrawalNotFound is returned for unknown withdrawals or ones owned by another user.
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	// ErrIdempotencyKeyMismatch is returned when a key is reused with a different payload.
	ErrIdempotencyKeyMismatch = errors.New("idempotency key already used with a different request")
	// ErrInvalidStatusTransition is returned when a withdrawal would move backwards.
	ErrInvalidStatusTransition = errors.New("invalid withdrawal status transition")
	// ErrInvalidWithdrawalMethod is returned for methods outside BANK, MOBILE_MONEY and P2P.
	ErrInvalidWithdrawalMethod = errors.New("invalid withdrawal method")
	// ErrInvalidDestination is returned for empty or malformed destinations.
	ErrInvalidDestination = errors.New("invalid withdrawal destination")
	// ErrInvalidMetadata is returned when metadata is not a JSON document.
	ErrInvalidMetadata = errors.New("metadata must be valid JSON")
	// ErrPayoutNotConfigured is returned when no payout provider is set up.
	ErrPayoutNotConfigured = errors.New("payout provider not configured")
)

// WithdrawalRepository persists withdrawals.
type WithdrawalRepository interface {
	Create(ctx context.Context, w *models.Withdrawal) error                                                 // Inserts a PENDING withdrawal
	GetByID(ctx context.Context, id uuid.UUID) (*models.Withdrawal, error)                                  // Returns a withdrawal by id
	GetByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*models.Withdrawal, error)      // Returns nil when the key is unused
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Withdrawal, error)                          // Returns withdrawals newest first
	ClaimPending(ctx context.Context, limit int) ([]models.Withdrawal, error)                               // Locks PENDING withdrawals
	ClaimStale(ctx context.Context, olderThan time.Duration, limit int) ([]models.Withdrawal, error)        // Picks PROCESSING withdrawals left behind
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.WithdrawalStatus, reason *string) error // Moves status when it still equals from
	SavePayoutReference(ctx context.Context, id uuid.UUID, reference string) error                          // Stores the payout reference
	SaveChainSubmission(ctx context.Context, id uuid.UUID, nonce uint64, txHash string) error               // Stores the signed P2P nonce and hash
	RecordAttemptError(ctx context.Context, id uuid.UUID, reason string) error                              // Stores the last payout error
}

// TransactionStatusWriter records and settles transaction rows.
type TransactionStatusWriter interface {
	Save(ctx context.Context, txn *models.Transaction) error                                                                    // Inserts a transaction
	SetStatusByContext(ctx context.Context, contextType, contextID string, status models.TransactionStatus, hash *string) error // Settles transactions of a context
}

// TokenTransferer sends tokens on the ledger.
type TokenTransferer interface {
	TransferTokens(ctx context.Context, from, to string, amount *big.Int) (string, error) // Returns the tx hash
}

// PayoutSender pays a withdrawal out through an external provider.
type PayoutSender interface {
	Send(ctx context.Context, w *models.Withdrawal) (string, error) // Returns the provider reference
}

// WithdrawalObserver counts processed withdrawals.
type WithdrawalObserver interface {
	ObserveWithdrawal(method, status string) // Records a final status
}

// WithdrawalRequest is a user's withdrawal order.
type WithdrawalRequest struct {
	Amount         decimal.Decimal
	Method         models.WithdrawalMethod
	Destination    string
	Metadata       *string
	IdempotencyKey string
}

// WithdrawalService accepts withdrawals and pays them out.
type WithdrawalService struct {
	tx          Transactor
	withdrawals WithdrawalRepository
	wallets     WalletRepository
	txns        TransactionStatusWriter
	chain       TokenTransferer
	payouts     PayoutSender
	hotWallet   string
	staleAfter  time.Duration
	observer    WithdrawalObserver
	kafkaWriter KafkaWriter
}

// NewWithdrawalService creates a WithdrawalService. payouts may be nil, in
// which case BANK and MOBILE_MONEY withdrawals fail during processing.
// Withdrawals left in PROCESSING for staleAfter are paid out again; the
// payout must therefore be idempotent per withdrawal.
func NewWithdrawalService(
	tx Transactor,
	withdrawals WithdrawalRepository,
	wallets WalletRepository,
	txns TransactionStatusWriter,
	ledger TokenTransferer,
	payouts PayoutSender,
	hotWallet string,
	staleAfter time.Duration,
	observer WithdrawalObserver,
	kafkaWriter KafkaWriter,
) *WithdrawalService {
	return &WithdrawalService{
		tx:          tx,
		withdrawals: withdrawals,
		wallets:     wallets,
		txns:        txns,
		chain:       ledger,
		payouts:     payouts,
		hotWallet:   hotWallet,
		staleAfter:  staleAfter,
		observer:    observer,
		kafkaWriter: kafkaWriter,
	}
}

func validateWithdrawal(req *WithdrawalRequest) error {
	if !validAmount(req.Amount) {
		return ErrInvalidAmount
	}
	if !req.Method.Valid() {
		return ErrInvalidWithdrawalMethod
	}

	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		return ErrInvalidDestination
	}
	if req.Method == models.WithdrawalP2P {
		addr, err := chain.ValidateAddress(req.Destination)
		if err != nil {
			return fmt.Errorf("%w: P2P destination must be an EVM address", ErrInvalidDestination)
		}
		req.Destination = addr.Hex()
	}

	if req.Metadata != nil {
		if strings.TrimSpace(*req.Metadata) == "" {
			req.Metadata = nil
		} else if !json.Valid([]byte(*req.Metadata)) {
			return ErrInvalidMetadata
		}
	}
	return nil
}

func sameWithdrawal(w *models.Withdrawal, req WithdrawalRequest) bool {
	if !w.Amount.Equal(req.Amount) || w.Method != req.Method || w.Destination != req.Destination {
		return false
	}
	if (w.Metadata == nil) != (req.Metadata == nil) {
		return false
	}
	return w.Metadata == nil || *w.Metadata == *req.Metadata
}

// RequestWithdrawal debits the wallet and records a PENDING withdrawal in
// one transaction. A repeated idempotency key returns the stored
// withdrawal when the payload matches.
func (s *WithdrawalService) RequestWithdrawal(ctx context.Context, userID uuid.UUID, req WithdrawalRequest) (*models.Withdrawal, error) {
	if err := validateWithdrawal(&req); err != nil {
		return nil, err
	}

	var (
		withdrawal *models.Withdrawal
		txn        *models.Transaction
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if req.IdempotencyKey != "" {
			existing, err := s.withdrawals.GetByIdempotencyKey(ctx, userID, req.IdempotencyKey)
			if err != nil {
				return err
			}
			if existing != nil {
				if !sameWithdrawal(existing, req) {
					return ErrIdempotencyKeyMismatch
				}
				withdrawal = existing
				return nil
			}
		}

		if _, err := s.wallets.GetOrCreate(ctx, userID); err != nil {
			return err
		}
		if _, err := s.wallets.GetForUpdate(ctx, userID); err != nil {
			return err
		}
		if _, err := s.wallets.Debit(ctx, userID, req.Amount); err != nil {
			if errors.Is(err, repositories.ErrInsufficientBalance) {
				return ErrInsufficientFunds
			}
			return err
		}

		withdrawal = &models.Withdrawal{
			UserID:      userID,
			Amount:      req.Amount,
			Method:      req.Method,
			Destination: req.Destination,
			Metadata:    req.Metadata,
		}
		if req.IdempotencyKey != "" {
			key := req.IdempotencyKey
			withdrawal.IdempotencyKey = &key
		}
		if err := s.withdrawals.Create(ctx, withdrawal); err != nil {
			return err
		}

		contextID := withdrawal.ID.String()
		txn = &models.Transaction{
			SenderID:    &userID,
			RecipientID: userID,
			Amount:      req.Amount,
			Type:        models.TransactionWithdrawal,
			Status:      models.TransactionPending,
			Description: fmt.Sprintf("Withdrawal via %s", req.Method),
			ContextType: models.ContextWithdrawal,
			ContextID:   &contextID,
		}
		return s.txns.Save(ctx, txn)
	})
	if errors.Is(err, repositories.ErrDuplicate) && req.IdempotencyKey != "" {
		// a concurrent request with the same key won the insert
		return s.replay(ctx, userID, req)
	}
	if err != nil {
		logger.Log.Errorw("failed to request withdrawal", "userID", userID, "amount", req.Amount.String(), "method", req.Method, "error", err)
		return nil, err
	}

	if txn != nil {
		publishTransaction(ctx, s.kafkaWriter, txn)
		logger.Log.Infow("withdrawal requested", "withdrawal_id", withdrawal.ID, "userID", userID, "amount", req.Amount.String(), "method", req.Method)
	}
	return withdrawal, nil
}

func (s *WithdrawalService) replay(ctx context.Context, userID uuid.UUID, req WithdrawalRequest) (*models.Withdrawal, error) {
	existing, err := s.withdrawals.GetByIdempotencyKey(ctx, userID, req.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing == nil || !sameWithdrawal(existing, req) {
		return nil, ErrIdempotencyKeyMismatch
	}
	return existing, nil
}

// ListWithdrawals returns the user's withdrawals, newest first.
func (s *WithdrawalService) ListWithdrawals(ctx context.Context, userID uuid.UUID) ([]models.Withdrawal, error) {
	list, err := s.withdrawals.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list withdrawals", "userID", userID, "error", err)
		return nil, err
	}
	if list == nil {
		list = []models.Withdrawal{}
	}
	return list, nil
}

// GetWithdrawal returns one of the user's withdrawals.
func (s *WithdrawalService) GetWithdrawal(ctx context.Context, userID, id uuid.UUID) (*models.Withdrawal, error) {
	w, err := s.withdrawals.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}
	if w.UserID != userID {
		return nil, ErrWithdrawalNotFound
	}
	return w, nil
}

// ProcessPending re-drives withdrawals left in PROCESSING by an earlier
// run, then claims PENDING ones up to limit in total, moves them to
// PROCESSING and pays each out. It returns how many reached a final
// status. Withdrawals it could not finish stay PROCESSING and are picked
// up again once stale.
func (s *WithdrawalService) ProcessPending(ctx context.Context, limit int) (int, error) {
	var claimed []models.Withdrawal
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		stale, err := s.withdrawals.ClaimStale(ctx, s.staleAfter, limit)
		if err != nil {
			return err
		}
		for _, w := range stale {
			logger.Log.Warnw("re-driving stuck withdrawal", "withdrawal_id", w.ID, "method", w.Method, "last_error", w.FailureReason)
		}
		claimed = stale
		if len(claimed) >= limit {
			return nil
		}

		pending, err := s.withdrawals.ClaimPending(ctx, limit-len(claimed))
		if err != nil {
			return err
		}
		for i := range pending {
			if err := s.transition(ctx, &pending[i], models.WithdrawalProcessing, nil); err != nil {
				return err
			}
		}
		claimed = append(claimed, pending...)
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to claim withdrawals", "error", err)
		return 0, err
	}

	processed := 0
	for i := range claimed {
		if ctx.Err() != nil {
			logger.Log.Warnw("withdrawal processing interrupted", "left_processing", len(claimed)-i)
			break
		}
		settled, err := s.process(ctx, &claimed[i])
		if err != nil {
			logger.Log.Errorw("failed to settle withdrawal", "withdrawal_id", claimed[i].ID, "error", err)
			continue
		}
		if settled {
			processed++
		}
	}
	return processed, nil
}

// process pays w out unless an earlier attempt already did, then settles
// it. Permanent payout errors fail and refund the withdrawal; transient
// ones leave it PROCESSING with the error recorded.
func (s *WithdrawalService) process(ctx context.Context, w *models.Withdrawal) (bool, error) {
	if w.PayoutReference == nil {
		ref, err := s.payout(ctx, w)
		if err != nil {
			if isPermanentPayoutError(err) {
				return true, s.fail(ctx, w, err)
			}
			return false, s.postpone(ctx, w, err)
		}
		// stored outside ctx: the payout happened even if we are shutting down
		if err := s.withdrawals.SavePayoutReference(context.WithoutCancel(ctx), w.ID, ref); err != nil {
			return false, fmt.Errorf("save payout reference %s: %w", ref, err)
		}
		w.PayoutReference = &ref
	}
	return true, s.complete(ctx, w)
}

func (s *WithdrawalService) complete(ctx context.Context, w *models.Withdrawal) error {
	var hash *string
	if w.Method == models.WithdrawalP2P {
		hash = w.PayoutReference
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.transition(ctx, w, models.WithdrawalCompleted, nil); err != nil {
			return err
		}
		return s.txns.SetStatusByContext(ctx, models.ContextWithdrawal, w.ID.String(), models.TransactionConfirmed, hash)
	})
	if err != nil {
		return err
	}
	s.observe(w, models.WithdrawalCompleted)
	logger.Log.Infow("withdrawal completed", "withdrawal_id", w.ID, "method", w.Method, "amount", w.Amount.String(), "reference", *w.PayoutReference)
	return nil
}

func (s *WithdrawalService) fail(ctx context.Context, w *models.Withdrawal, payErr error) error {
	reason := payErr.Error()
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.transition(ctx, w, models.WithdrawalFailed, &reason); err != nil {
			return err
		}
		if _, err := s.wallets.Refund(ctx, w.UserID, w.Amount); err != nil {
			return err
		}
		return s.txns.SetStatusByContext(ctx, models.ContextWithdrawal, w.ID.String(), models.TransactionFailed, nil)
	})
	if err != nil {
		return err
	}
	w.FailureReason = &reason
	s.observe(w, models.WithdrawalFailed)
	logger.Log.Warnw("withdrawal failed and refunded", "withdrawal_id", w.ID, "method", w.Method, "reason", reason)
	return nil
}

// postpone records a transient payout error. The withdrawal keeps its debit
// and PROCESSING status until a later run pays it out.
func (s *WithdrawalService) postpone(ctx context.Context, w *models.Withdrawal, payErr error) error {
	reason := payErr.Error()
	logger.Log.Warnw("withdrawal payout will be retried", "withdrawal_id", w.ID, "method", w.Method, "error", reason)
	if err := s.withdrawals.RecordAttemptError(context.WithoutCancel(ctx), w.ID, reason); err != nil {
		return err
	}
	w.FailureReason = &reason
	return nil
}

// isPermanentPayoutError reports whether the payout provably did not and
// will not happen. Anything else may have paid and must not be refunded.
func isPermanentPayoutError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	return chain.IsPermanent(err) ||
		errors.Is(err, facades.ErrPayoutRejected) ||
		errors.Is(err, ErrPayoutNotConfigured)
}

// payout returns the on-chain hash for P2P withdrawals and the provider
// reference otherwise. P2P transfers reuse the nonce stored by an earlier
// attempt, so a re-drive replaces rather than repeats the transfer.
func (s *WithdrawalService) payout(ctx context.Context, w *models.Withdrawal) (string, error) {
	if w.Method == models.WithdrawalP2P {
		var nonce *uint64
		if w.ChainNonce != nil {
			n := uint64(*w.ChainNonce)
			nonce = &n
		}
		var last string
		if w.ChainTxHash != nil {
			last = *w.ChainTxHash
		}
		persist := context.WithoutCancel(ctx)
		sub := chain.NewSubmission(nonce, last, func(nonce uint64, hash string) error {
			return s.withdrawals.SaveChainSubmission(persist, w.ID, nonce, hash)
		})
		return s.chain.TransferTokens(chain.WithSubmission(ctx, sub), s.hotWallet, w.Destination, chain.ToBaseUnits(w.Amount))
	}

	if s.payouts == nil {
		return "", ErrPayoutNotConfigured
	}
	ref, err := s.payouts.Send(ctx, w)
	if err != nil {
		return "", err
	}
	logger.Log.Infow("payout accepted", "withdrawal_id", w.ID, "reference", ref)
	return ref, nil
}

// transition moves w to next, refusing backward moves and moves raced by
// another worker.
func (s *WithdrawalService) transition(ctx context.Context, w *models.Withdrawal, next models.WithdrawalStatus, reason *string) error {
	if !w.Status.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, w.Status, next)
	}
	err := s.withdrawals.UpdateStatus(ctx, w.ID, w.Status, next, reason)
	if errors.Is(err, repositories.ErrStatusConflict) {
		return fmt.Errorf("%w: %s is no longer %s", ErrInvalidStatusTransition, w.ID, w.Status)
	}
	if err != nil {
		return err
	}
	w.Status = next
	return nil
}

func (s *WithdrawalService) observe(w *models.Withdrawal, status models.WithdrawalStatus) {
	if s.observer != nil {
		s.observer.ObserveWithdrawal(string(w.Method), string(status))
	}
}

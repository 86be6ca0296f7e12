package services

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/chain"
	"github.com/sbilibin2017/maschat/internal/logger"
	"github.com/sbilibin2017/maschat/internal/models"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=dispatcher.go -destination=mock_dispatcher.go -package=services

// dispatcherLockKey is the advisory lock that keeps one dispatcher active
// across instances.
const dispatcherLockKey int64 = 0x6d617373

var errUnknownOperation = errors.New("unknown chain operation kind")

// ChainOperationRepository claims and settles chain outbox entries.
type ChainOperationRepository interface {
	TryLock(ctx context.Context, key int64) (bool, error)                                              // Takes a transaction scoped advisory lock
	ClaimPending(ctx context.Context, limit int, lease time.Duration) ([]models.ChainOperation, error) // Leases PENDING operations, oldest first
	SaveSubmission(ctx context.Context, id uuid.UUID, nonce uint64, txHash string) error               // Stores a signed transaction before broadcast
	MarkSubmitted(ctx context.Context, id uuid.UUID, txHash string) error                              // Records a submission
	MarkRetry(ctx context.Context, id uuid.UUID, lastError string) error                               // Records a transient failure
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string) error                              // Records a permanent failure
	ReleaseClaim(ctx context.Context, id uuid.UUID) error                                              // Drops the lease of an unattempted operation
}

// TransactionHashWriter confirms transactions with their on-chain hash.
type TransactionHashWriter interface {
	SetHash(ctx context.Context, id uuid.UUID, hash string) error // Stores the hash and confirms the transaction
}

// ChainExecutor performs ledger mutations.
type ChainExecutor interface {
	RegisterUser(ctx context.Context, address string) (bool, error)                                   // Registers an address
	TransferTokens(ctx context.Context, from, to string, amount *big.Int) (string, error)             // Moves tokens
	StakeTokens(ctx context.Context, address string, amount *big.Int, periodMonths int) (bool, error) // Locks tokens
	UnstakeTokens(ctx context.Context, address string, amount *big.Int) (bool, error)                 // Releases tokens
}

// OutboxObserver counts dispatched operations.
type OutboxObserver interface {
	ObserveChainOperation(kind, result string) // Records one dispatch result
}

// DispatchResult summarises one dispatcher run.
type DispatchResult struct {
	Submitted int
	Retried   int
	Failed    int
	Skipped   int
}

// dispatchTally collects results from concurrent user lanes.
type dispatchTally struct {
	mu     sync.Mutex
	result DispatchResult
}

func (t *dispatchTally) add(outcome string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch outcome {
	case "submitted":
		t.result.Submitted++
	case "retried":
		t.result.Retried++
	case "failed":
		t.result.Failed++
	case "skipped":
		t.result.Skipped++
	}
}

// DispatcherService submits chain outbox entries to the ledger. Users are
// served concurrently; each user's operations run in creation order and
// stop at the first transient failure so that order is kept on retry.
type DispatcherService struct {
	tx          Transactor
	ops         ChainOperationRepository
	txns        TransactionHashWriter
	chain       ChainExecutor
	observer    OutboxObserver
	batchSize   int
	maxAttempts int
	concurrency int
	lease       time.Duration
}

// NewDispatcherService creates a DispatcherService. lease bounds how long
// a claimed operation is hidden from other dispatchers and must outlast
// one ledger call including its retries.
func NewDispatcherService(
	tx Transactor,
	ops ChainOperationRepository,
	txns TransactionHashWriter,
	executor ChainExecutor,
	observer OutboxObserver,
	batchSize, maxAttempts, concurrency int,
	lease time.Duration,
) *DispatcherService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &DispatcherService{
		tx:          tx,
		ops:         ops,
		txns:        txns,
		chain:       executor,
		observer:    observer,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
		concurrency: concurrency,
		lease:       lease,
	}
}

// Dispatch leases one batch of PENDING operations under the cluster wide
// advisory lock and submits them after that short transaction commits.
// Each outcome is recorded in its own transaction as soon as it is known.
func (s *DispatcherService) Dispatch(ctx context.Context) (DispatchResult, error) {
	var ops []models.ChainOperation
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		locked, err := s.ops.TryLock(ctx, dispatcherLockKey)
		if err != nil {
			return err
		}
		if !locked {
			logger.Log.Debugw("chain dispatcher already running elsewhere")
			return nil
		}

		ops, err = s.ops.ClaimPending(ctx, s.batchSize, s.lease)
		return err
	})
	if err != nil {
		logger.Log.Errorw("chain dispatch claim failed", "error", err)
		return DispatchResult{}, err
	}
	if len(ops) == 0 {
		return DispatchResult{}, nil
	}

	result, err := s.submit(ctx, ops)
	if err != nil {
		logger.Log.Errorw("chain dispatch failed", "error", err)
	}
	logger.Log.Infow("chain dispatch finished",
		"submitted", result.Submitted,
		"retried", result.Retried,
		"failed", result.Failed,
		"skipped", result.Skipped,
	)
	return result, err
}

// submit runs one lane per user. A lane stops at a transient failure and
// releases the leases of the operations it did not attempt.
func (s *DispatcherService) submit(ctx context.Context, ops []models.ChainOperation) (DispatchResult, error) {
	var users []uuid.UUID
	byUser := make(map[uuid.UUID][]int)
	for i, op := range ops {
		if _, ok := byUser[op.UserID]; !ok {
			users = append(users, op.UserID)
		}
		byUser[op.UserID] = append(byUser[op.UserID], i)
	}

	tally := &dispatchTally{}
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, user := range users {
		idxs := byUser[user]
		g.Go(func() error {
			for n, i := range idxs {
				if ctx.Err() != nil {
					s.release(ctx, ops, idxs[n:], tally)
					return nil
				}
				hash, callErr := s.execute(s.pinned(ctx, &ops[i]), ops[i])
				next, err := s.record(ctx, &ops[i], hash, callErr, tally)
				if err != nil || !next {
					s.release(ctx, ops, idxs[n+1:], tally)
					return err
				}
			}
			return nil
		})
	}
	err := g.Wait()
	return tally.result, err
}

// pinned attaches a submission that resumes from the nonce stored by an
// earlier attempt and stores every newly signed transaction.
func (s *DispatcherService) pinned(ctx context.Context, op *models.ChainOperation) context.Context {
	var nonce *uint64
	if op.Nonce != nil {
		n := uint64(*op.Nonce)
		nonce = &n
	}
	persist := context.WithoutCancel(ctx)
	sub := chain.NewSubmission(nonce, deref(op.TxHash), func(nonce uint64, hash string) error {
		return s.ops.SaveSubmission(persist, op.ID, nonce, hash)
	})
	return chain.WithSubmission(ctx, sub)
}

func (s *DispatcherService) execute(ctx context.Context, op models.ChainOperation) (string, error) {
	from := deref(op.FromAddress)
	units := chain.ToBaseUnits(op.Amount)

	switch op.Kind {
	case models.ChainRegister:
		ok, err := s.chain.RegisterUser(ctx, from)
		if err == nil && !ok {
			err = fmt.Errorf("%w: registration refused", chain.ErrReverted)
		}
		return "", err
	case models.ChainTransfer:
		return s.chain.TransferTokens(ctx, from, deref(op.ToAddress), units)
	case models.ChainStake:
		ok, err := s.chain.StakeTokens(ctx, from, units, op.Period)
		if err == nil && !ok {
			err = fmt.Errorf("%w: stake refused", chain.ErrReverted)
		}
		return "", err
	case models.ChainUnstake:
		ok, err := s.chain.UnstakeTokens(ctx, from, units)
		if err == nil && !ok {
			err = fmt.Errorf("%w: unstake refused", chain.ErrReverted)
		}
		return "", err
	}
	return "", fmt.Errorf("%w: %s", errUnknownOperation, op.Kind)
}

// record stores the outcome of op in its own transaction. It reports
// whether the user's next operation may run.
func (s *DispatcherService) record(ctx context.Context, op *models.ChainOperation, hash string, callErr error, tally *dispatchTally) (bool, error) {
	if errors.Is(callErr, context.Canceled) {
		s.releaseOne(ctx, op, tally)
		return false, nil
	}
	ctx = context.WithoutCancel(ctx)

	switch {
	case callErr == nil:
		err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
			if err := s.ops.MarkSubmitted(ctx, op.ID, hash); err != nil {
				return err
			}
			if op.TransactionID != nil && hash != "" {
				return s.txns.SetHash(ctx, *op.TransactionID, hash)
			}
			return nil
		})
		if err != nil {
			return false, fmt.Errorf("record submission of %s: %w", op.ID, err)
		}
		tally.add("submitted")
		s.observe(op, "submitted")
		return true, nil

	case isPermanentDispatchError(callErr) || op.Attempts+1 >= s.maxAttempts:
		logger.Log.Errorw("chain operation failed", "operation_id", op.ID, "kind", op.Kind, "attempts", op.Attempts+1, "error", callErr)
		err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
			return s.ops.MarkFailed(ctx, op.ID, callErr.Error())
		})
		if err != nil {
			return false, fmt.Errorf("record failure of %s: %w", op.ID, err)
		}
		tally.add("failed")
		s.observe(op, "failed")
		return true, nil

	default:
		logger.Log.Warnw("chain operation will be retried", "operation_id", op.ID, "kind", op.Kind, "attempts", op.Attempts+1, "error", callErr)
		err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
			return s.ops.MarkRetry(ctx, op.ID, callErr.Error())
		})
		if err != nil {
			return false, fmt.Errorf("record retry of %s: %w", op.ID, err)
		}
		tally.add("retried")
		s.observe(op, "retried")
		return false, nil
	}
}

// release hands the listed operations back to the next run.
func (s *DispatcherService) release(ctx context.Context, ops []models.ChainOperation, idxs []int, tally *dispatchTally) {
	for _, i := range idxs {
		s.releaseOne(ctx, &ops[i], tally)
	}
}

func (s *DispatcherService) releaseOne(ctx context.Context, op *models.ChainOperation, tally *dispatchTally) {
	if err := s.ops.ReleaseClaim(context.WithoutCancel(ctx), op.ID); err != nil {
		logger.Log.Warnw("failed to release chain operation", "operation_id", op.ID, "error", err)
	}
	tally.add("skipped")
}

func (s *DispatcherService) observe(op *models.ChainOperation, result string) {
	if s.observer != nil {
		s.observer.ObserveChainOperation(string(op.Kind), result)
	}
}

// isPermanentDispatchError treats cancellation as transient so that
// shutdown leaves operations PENDING.
func isPermanentDispatchError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	return chain.IsPermanent(err) || errors.Is(err, errUnknownOperation)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

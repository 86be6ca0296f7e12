package services

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sbilibin2017/maschat/internal/chain"
	"github.com/sbilibin2017/maschat/internal/logger"
)

//go:generate mockgen -source=blockchain.go -destination=mock_blockchain.go -package=services

// Ledger is the token ledger the blockchain service drives.
type Ledger interface {
	RegisterUser(ctx context.Context, address string) (bool, error)                            // Registers an address with the ledger
	Transfer(ctx context.Context, from, to string, amount *big.Int) (string, error)             // Moves tokens and returns the tx hash
	BalanceOf(ctx context.Context, address string) (*big.Int, error)                            // Returns the token balance in base units
	Stake(ctx context.Context, address string, amount *big.Int, periodMonths int) (bool, error) // Locks tokens for a period
	Unstake(ctx context.Context, address string, amount *big.Int) (bool, error)                 // Releases staked tokens
}

// ChainObserver counts ledger calls.
type ChainObserver interface {
	ObserveChainCall(operation, outcome string) // Records one call outcome
}

// BlockchainService routes ledger calls to the real ledger while enabled
// and to the simulated one otherwise. Transient failures are retried with
// exponential backoff; permanent ones are returned at once.
type BlockchainService struct {
	enabled         atomic.Bool
	ledger          Ledger
	simulated       Ledger
	maxElapsed      time.Duration
	initialInterval time.Duration
	observer        ChainObserver
}

// NewBlockchainService creates a BlockchainService. ledger may be nil when
// no chain is configured; calls made while enabled then fail with
// chain.ErrNotDeployed.
func NewBlockchainService(ledger, simulated Ledger, enabled bool, maxElapsed time.Duration, observer ChainObserver) *BlockchainService {
	svc := &BlockchainService{
		ledger:          ledger,
		simulated:       simulated,
		maxElapsed:      maxElapsed,
		initialInterval: backoff.DefaultInitialInterval,
		observer:        observer,
	}
	svc.enabled.Store(enabled)
	return svc
}

// IsEnabled reports whether calls go to the real ledger.
func (s *BlockchainService) IsEnabled() bool {
	return s.enabled.Load()
}

// Enable switches to the real ledger.
func (s *BlockchainService) Enable() {
	s.enabled.Store(true)
	logger.Log.Infow("blockchain integration enabled")
}

// Disable switches to the simulated ledger.
func (s *BlockchainService) Disable() {
	s.enabled.Store(false)
	logger.Log.Infow("blockchain integration disabled")
}

// RegisterUser registers address with the ledger.
func (s *BlockchainService) RegisterUser(ctx context.Context, address string) (bool, error) {
	var ok bool
	err := s.call(ctx, "register", func(l Ledger) (err error) {
		ok, err = l.RegisterUser(ctx, address)
		return err
	})
	return ok, err
}

// TransferTokens moves amount base units and returns the transaction hash.
func (s *BlockchainService) TransferTokens(ctx context.Context, from, to string, amount *big.Int) (string, error) {
	ctx = pinSubmission(ctx)
	var hash string
	err := s.call(ctx, "transfer", func(l Ledger) (err error) {
		hash, err = l.Transfer(ctx, from, to, amount)
		return err
	})
	return hash, err
}

// GetUserBalance returns the on-chain balance of address in base units.
func (s *BlockchainService) GetUserBalance(ctx context.Context, address string) (*big.Int, error) {
	var balance *big.Int
	err := s.call(ctx, "balance", func(l Ledger) (err error) {
		balance, err = l.BalanceOf(ctx, address)
		return err
	})
	return balance, err
}

// StakeTokens locks amount for periodMonths.
func (s *BlockchainService) StakeTokens(ctx context.Context, address string, amount *big.Int, periodMonths int) (bool, error) {
	ctx = pinSubmission(ctx)
	var ok bool
	err := s.call(ctx, "stake", func(l Ledger) (err error) {
		ok, err = l.Stake(ctx, address, amount, periodMonths)
		return err
	})
	return ok, err
}

// UnstakeTokens releases amount.
func (s *BlockchainService) UnstakeTokens(ctx context.Context, address string, amount *big.Int) (bool, error) {
	ctx = pinSubmission(ctx)
	var ok bool
	err := s.call(ctx, "unstake", func(l Ledger) (err error) {
		ok, err = l.Unstake(ctx, address, amount)
		return err
	})
	return ok, err
}

// pinSubmission makes every retry of one write reuse the nonce of its
// first signed transaction. Callers that persist the nonce attach their
// own submission first.
func pinSubmission(ctx context.Context) context.Context {
	if chain.SubmissionFromContext(ctx) != nil {
		return ctx
	}
	return chain.WithSubmission(ctx, chain.NewSubmission(nil, "", nil))
}

func (s *BlockchainService) active() Ledger {
	if s.enabled.Load() {
		return s.ledger
	}
	return s.simulated
}

func (s *BlockchainService) call(ctx context.Context, operation string, fn func(l Ledger) error) error {
	l := s.active()
	if l == nil {
		s.observe(operation, "not_deployed")
		return chain.ErrNotDeployed
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.initialInterval
	b.MaxElapsedTime = s.maxElapsed

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		err := fn(l)
		if err == nil {
			return nil
		}
		if chain.IsPermanent(err) {
			return backoff.Permanent(err)
		}
		logger.Log.Warnw("ledger call failed", "operation", operation, "attempt", attempt, "error", err)
		return err
	}, backoff.WithContext(b, ctx))

	switch {
	case err == nil:
		s.observe(operation, "ok")
	case chain.IsPermanent(err) && !errors.Is(err, context.Canceled):
		s.observe(operation, "rejected")
		logger.Log.Errorw("ledger call rejected", "operation", operation, "error", err)
	default:
		s.observe(operation, "error")
		logger.Log.Errorw("ledger call failed after retries", "operation", operation, "attempts", attempt, "error", err)
	}
	return err
}

func (s *BlockchainService) observe(operation, outcome string) {
	if s.observer != nil {
		s.observer.ObserveChainCall(operation, outcome)
	}
}

package services

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/chain"
	"github.com/sbilibin2017/maschat/internal/logger"
	"github.com/sbilibin2017/maschat/internal/models"
	"github.com/sbilibin2017/maschat/internal/repositories"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=reconcile.go -destination=mock_reconcile.go -package=services

// SyncWalletRepository lists wallets to reconcile and stores observations.
type SyncWalletRepository interface {
	ListSyncable(ctx context.Context) ([]models.Wallet, error)                                                      // Active wallets with an address
	SaveChainBalance(ctx context.Context, userID uuid.UUID, chainBalance decimal.Decimal, syncedAt time.Time) error // Stores the observed balance
}

// ChainBalanceReader reads on-chain balances.
type ChainBalanceReader interface {
	IsEnabled() bool                                                      // Reports whether the real ledger is active
	GetUserBalance(ctx context.Context, address string) (*big.Int, error) // Returns the balance in base units
}

// ChainBalanceCache caches on-chain balances.
type ChainBalanceCache interface {
	Get(ctx context.Context, address string) (*big.Int, error)       // Returns a cached balance
	Set(ctx context.Context, address string, balance *big.Int) error // Caches a balance
}

// DriftObserver counts wallets out of sync with the chain.
type DriftObserver interface {
	ObserveBalanceDrift() // Records one drifted wallet
}

// ReconcileResult summarises one reconciliation run.
type ReconcileResult struct {
	Checked int
	Drifted int
	Failed  int
}

// ReconcileService compares on-chain balances with the local ledger. The
// local ledger is authoritative: only the observation is stored.
type ReconcileService struct {
	wallets     SyncWalletRepository
	chain       ChainBalanceReader
	cache       ChainBalanceCache
	observer    DriftObserver
	concurrency int
	now         func() time.Time
}

// NewReconcileService creates a ReconcileService. cache may be nil.
func NewReconcileService(wallets SyncWalletRepository, reader ChainBalanceReader, cache ChainBalanceCache, observer DriftObserver, concurrency int) *ReconcileService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &ReconcileService{
		wallets:     wallets,
		chain:       reader,
		cache:       cache,
		observer:    observer,
		concurrency: concurrency,
		now:         time.Now,
	}
}

// Reconcile checks every syncable wallet. It does nothing while the
// blockchain is disabled.
func (s *ReconcileService) Reconcile(ctx context.Context) (ReconcileResult, error) {
	var result ReconcileResult
	if !s.chain.IsEnabled() {
		logger.Log.Debugw("blockchain disabled, skipping balance reconciliation")
		return result, nil
	}

	wallets, err := s.wallets.ListSyncable(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list wallets for reconciliation", "error", err)
		return result, err
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, w := range wallets {
		g.Go(func() error {
			drifted, err := s.syncWallet(gctx, w)

			mu.Lock()
			defer mu.Unlock()
			result.Checked++
			switch {
			case err != nil:
				result.Failed++
				logger.Log.Errorw("failed to reconcile wallet", "userID", w.UserID, "error", err)
			case drifted:
				result.Drifted++
			}
			return nil
		})
	}
	_ = g.Wait()

	logger.Log.Infow("balance reconciliation finished", "checked", result.Checked, "drifted", result.Drifted, "failed", result.Failed)
	return result, ctx.Err()
}

func (s *ReconcileService) syncWallet(ctx context.Context, w models.Wallet) (bool, error) {
	if w.WalletAddress == nil {
		return false, nil
	}
	address := *w.WalletAddress

	onChain, err := s.balance(ctx, address)
	if err != nil {
		return false, err
	}

	if err := s.wallets.SaveChainBalance(ctx, w.UserID, chain.FromBaseUnits(onChain), s.now()); err != nil {
		return false, err
	}

	expected := chain.ToBaseUnits(w.Holdings())
	if expected.Cmp(onChain) == 0 {
		return false, nil
	}

	logger.Log.Warnw("balance drift detected",
		"userID", w.UserID,
		"address", address,
		"ledger", w.Holdings().String(),
		"chain", chain.FromBaseUnits(onChain).String(),
	)
	if s.observer != nil {
		s.observer.ObserveBalanceDrift()
	}
	return true, nil
}

func (s *ReconcileService) balance(ctx context.Context, address string) (*big.Int, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, address)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("chain balance cache read failed", "address", address, "error", err)
		}
	}

	onChain, err := s.chain.GetUserBalance(ctx, address)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, address, onChain); err != nil {
			logger.Log.Warnw("chain balance cache write failed", "address", address, "error", err)
		}
	}
	return onChain, nil
}

package scheduler

import (
	"context"
	"time"

	"github.com/sbilibin2017/maschat/internal/logger"
	"github.com/sbilibin2017/maschat/internal/services"
)

//go:generate mockgen -source=jobs.go -destination=mock_jobs.go -package=scheduler

// Job names.
const (
	JobReconcile      = "reconcile_balances"
	JobDispatch       = "dispatch_chain_operations"
	JobWithdrawals    = "process_withdrawals"
	JobExpireRequests = "expire_transfer_requests"
	JobRateLimitSweep = "rate_limit_cleanup"
)

// Reconciler compares on-chain balances with the ledger.
type Reconciler interface {
	Reconcile(ctx context.Context) (services.ReconcileResult, error) // Checks every synced wallet
}

// Dispatcher submits queued chain operations.
type Dispatcher interface {
	Dispatch(ctx context.Context) (services.DispatchResult, error) // Submits one batch
}

// WithdrawalProcessor pays out pending withdrawals.
type WithdrawalProcessor interface {
	ProcessPending(ctx context.Context, limit int) (int, error) // Returns the number processed
}

// RequestExpirer expires overdue transfer requests.
type RequestExpirer interface {
	ExpireOverdue(ctx context.Context) (int64, error) // Returns the number expired
}

// LimiterSweeper drops idle rate limiter keys.
type LimiterSweeper interface {
	Cleanup(idle time.Duration) int // Returns the number removed
}

// ReconcileJob runs a balance reconciliation.
func ReconcileJob(r Reconciler) Job {
	return func(ctx context.Context) error {
		res, err := r.Reconcile(ctx)
		if err != nil {
			return err
		}
		if res.Checked > 0 {
			logger.Log.Infow("balances reconciled", "checked", res.Checked, "drifted", res.Drifted, "failed", res.Failed)
		}
		return nil
	}
}

// DispatchJob submits one batch of chain operations.
func DispatchJob(d Dispatcher) Job {
	return func(ctx context.Context) error {
		res, err := d.Dispatch(ctx)
		if err != nil {
			return err
		}
		if res != (services.DispatchResult{}) {
			logger.Log.Infow("chain operations dispatched",
				"submitted", res.Submitted, "retried", res.Retried, "failed", res.Failed, "skipped", res.Skipped)
		}
		return nil
	}
}

// WithdrawalJob processes up to batch pending withdrawals.
func WithdrawalJob(p WithdrawalProcessor, batch int) Job {
	return func(ctx context.Context) error {
		n, err := p.ProcessPending(ctx, batch)
		if n > 0 {
			logger.Log.Infow("withdrawals processed", "count", n)
		}
		return err
	}
}

// ExpiryJob expires overdue transfer requests.
func ExpiryJob(e RequestExpirer) Job {
	return func(ctx context.Context) error {
		n, err := e.ExpireOverdue(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			logger.Log.Infow("transfer requests expired", "count", n)
		}
		return nil
	}
}

// SweepJob forgets rate limiter keys idle for longer than idle.
func SweepJob(idle time.Duration, sweepers ...LimiterSweeper) Job {
	return func(context.Context) error {
		removed := 0
		for _, s := range sweepers {
			removed += s.Cleanup(idle)
		}
		if removed > 0 {
			logger.Log.Debugw("rate limiter keys removed", "count", removed)
		}
		return nil
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalMethod is the payout channel of a withdrawal.
type WithdrawalMethod string

const (
	WithdrawalBank        WithdrawalMethod = "BANK"
	WithdrawalMobileMoney WithdrawalMethod = "MOBILE_MONEY"
	WithdrawalP2P         WithdrawalMethod = "P2P"
)

// Valid reports whether m is a supported method.
func (m WithdrawalMethod) Valid() bool {
	switch m {
	case WithdrawalBank, WithdrawalMobileMoney, WithdrawalP2P:
		return true
	}
	return false
}

// WithdrawalStatus is the lifecycle state of a withdrawal.
type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "PENDING"
	WithdrawalProcessing WithdrawalStatus = "PROCESSING"
	WithdrawalCompleted  WithdrawalStatus = "COMPLETED"
	WithdrawalFailed     WithdrawalStatus = "FAILED"
)

var withdrawalTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalPending:    {WithdrawalProcessing, WithdrawalFailed},
	WithdrawalProcessing: {WithdrawalCompleted, WithdrawalFailed},
}

// CanTransition reports whether a withdrawal may move from s to next.
// Statuses only move forward; COMPLETED and FAILED are terminal.
func (s WithdrawalStatus) CanTransition(next WithdrawalStatus) bool {
	for _, allowed := range withdrawalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Withdrawal is a row of mass_coin_withdrawals.
// swagger:model Withdrawal
type Withdrawal struct {
	ID              uuid.UUID        `json:"id" db:"id"`
	UserID          uuid.UUID        `json:"userId" db:"user_id"`
	Amount          decimal.Decimal  `json:"amount" db:"amount"`
	Method          WithdrawalMethod `json:"method" db:"method"`
	Destination     string           `json:"destination" db:"destination"` // account number, momo wallet or peer address
	Status          WithdrawalStatus `json:"status" db:"status"`
	Metadata        *string          `json:"metadata,omitempty" db:"metadata"` // optional JSON document
	IdempotencyKey  *string          `json:"-" db:"idempotency_key"`
	FailureReason   *string          `json:"failureReason,omitempty" db:"failure_reason"`     // last error while PROCESSING
	PayoutReference *string          `json:"payoutReference,omitempty" db:"payout_reference"` // provider reference or tx hash
	ChainNonce      *int64           `json:"-" db:"chain_nonce"`
	ChainTxHash     *string          `json:"-" db:"chain_tx_hash"` // last signed P2P transaction
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt       *time.Time       `json:"updatedAt,omitempty" db:"updated_at"`
}

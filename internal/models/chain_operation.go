package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChainOperationKind is the ledger call an outbox entry stands for.
type ChainOperationKind string

const (
	ChainRegister ChainOperationKind = "REGISTER"
	ChainTransfer ChainOperationKind = "TRANSFER"
	ChainStake    ChainOperationKind = "STAKE"
	ChainUnstake  ChainOperationKind = "UNSTAKE"
)

// ChainOperationStatus is the dispatch state of an outbox entry.
type ChainOperationStatus string

const (
	ChainOperationPending   ChainOperationStatus = "PENDING"
	ChainOperationSubmitted ChainOperationStatus = "SUBMITTED"
	ChainOperationFailed    ChainOperationStatus = "FAILED"
)

// ChainOperation is a row of chain_operations, written in the same
// database transaction as the ledger change it mirrors.
type ChainOperation struct {
	ID            uuid.UUID            `json:"id" db:"id"`
	UserID        uuid.UUID            `json:"userId" db:"user_id"`
	Kind          ChainOperationKind   `json:"kind" db:"kind"`
	FromAddress   *string              `json:"fromAddress,omitempty" db:"from_address"`
	ToAddress     *string              `json:"toAddress,omitempty" db:"to_address"`
	Amount        decimal.Decimal      `json:"amount" db:"amount"`
	Period        int                  `json:"period" db:"period"` // staking period in months
	TransactionID *uuid.UUID           `json:"transactionId,omitempty" db:"transaction_id"`
	Status        ChainOperationStatus `json:"status" db:"status"`
	Attempts      int                  `json:"attempts" db:"attempts"`
	Nonce         *int64               `json:"nonce,omitempty" db:"nonce"`     // pinned while PENDING
	TxHash        *string              `json:"txHash,omitempty" db:"tx_hash"` // last signed transaction
	LastError     *string              `json:"lastError,omitempty" db:"last_error"`
	ClaimedUntil  *time.Time           `json:"claimedUntil,omitempty" db:"claimed_until"`
	CreatedAt     time.Time            `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time            `json:"updatedAt" db:"updated_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a MassCoin ledger movement.
type TransactionType string

const (
	TransactionP2PTransfer        TransactionType = "P2P_TRANSFER"
	TransactionContentTip         TransactionType = "CONTENT_TIP"
	TransactionRewardDistribution TransactionType = "REWARD_DISTRIBUTION"
	TransactionStakingReward      TransactionType = "STAKING_REWARD"
	TransactionStake              TransactionType = "STAKE"
	TransactionUnstake            TransactionType = "UNSTAKE"
	TransactionWithdrawal         TransactionType = "WITHDRAWAL"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionP2PTransfer, TransactionContentTip, TransactionRewardDistribution,
		TransactionStakingReward, TransactionStake, TransactionUnstake, TransactionWithdrawal:
		return true
	}
	return false
}

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionConfirmed TransactionStatus = "CONFIRMED"
	TransactionFailed    TransactionStatus = "FAILED"
)

// Context types attached to transactions and transfer requests.
const (
	ContextPost       = "POST"
	ContextProfile    = "PROFILE"
	ContextChat       = "CHAT"
	ContextWithdrawal = "WITHDRAWAL"
	ContextStaking    = "STAKING"
	ContextReward     = "REWARD"
	ContextRequest    = "TRANSFER_REQUEST"
)

// Transaction is a row of mass_coin_transactions.
// swagger:model Transaction
type Transaction struct {
	ID              uuid.UUID           `json:"id" db:"id"`
	SenderID        *uuid.UUID          `json:"senderId,omitempty" db:"sender_id"` // nil for system rewards
	RecipientID     uuid.UUID           `json:"recipientId" db:"recipient_id"`
	Amount          decimal.Decimal     `json:"amount" db:"amount"`
	Type            TransactionType     `json:"transactionType" db:"transaction_type"`
	Status          TransactionStatus   `json:"status" db:"status"`
	TransactionHash *string             `json:"transactionHash,omitempty" db:"transaction_hash"`
	USDValue        decimal.NullDecimal `json:"usdValue" db:"usd_value"`
	Description     string              `json:"description" db:"description"`
	ContextType     string              `json:"contextType" db:"context_type"`
	ContextID       *string             `json:"contextId,omitempty" db:"context_id"`
	CreatedAt       time.Time           `json:"createdAt" db:"created_at"`
}

// TransactionPage is one page of a user's transaction history.
// swagger:model TransactionPage
type TransactionPage struct {
	Content       []Transaction `json:"content"`
	Page          int           `json:"page"`
	Size          int           `json:"size"`
	TotalElements int64         `json:"totalElements"`
	Last          bool          `json:"last"`
}

// TransactionEvent is the message published to Kafka for every ledger movement.
type TransactionEvent struct {
	TransactionID string `json:"transaction_id"` // TransactionID is the ledger transaction id.
	Timestamp     int64  `json:"timestamp"`      // Timestamp is the Unix time in seconds.
	Amount        string `json:"amount"`         // Amount is the decimal MassCoin amount.
	SenderID      string `json:"sender_id,omitempty"`
	RecipientID   string `json:"recipient_id"`
	Operation     string `json:"operation"` // Operation is the transaction type.
}

// NewTransactionEvent builds the Kafka event of txn.
func NewTransactionEvent(txn *Transaction) TransactionEvent {
	ev := TransactionEvent{
		TransactionID: txn.ID.String(),
		Timestamp:     txn.CreatedAt.Unix(),
		Amount:        txn.Amount.String(),
		RecipientID:   txn.RecipientID.String(),
		Operation:     string(txn.Type),
	}
	if txn.SenderID != nil {
		ev.SenderID = txn.SenderID.String()
	}
	return ev
}

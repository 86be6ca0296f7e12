package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is the local MassCoin ledger entry of one user.
// swagger:model Wallet
type Wallet struct {
	WalletID      uuid.UUID           `json:"id" db:"wallet_id"`
	UserID        uuid.UUID           `json:"userId" db:"user_id"`
	WalletAddress *string             `json:"walletAddress,omitempty" db:"wallet_address"` // EVM address, set by the user
	Balance       decimal.Decimal     `json:"balance" db:"balance"`
	StakedAmount  decimal.Decimal     `json:"stakedAmount" db:"staked_amount"`
	TotalEarned   decimal.Decimal     `json:"totalEarned" db:"total_earned"`
	TotalSpent    decimal.Decimal     `json:"totalSpent" db:"total_spent"`
	ChainBalance  decimal.NullDecimal `json:"chainBalance" db:"chain_balance"` // last observed on-chain balance
	IsActive      bool                `json:"isActive" db:"is_active"`
	LastSyncAt    *time.Time          `json:"lastSyncAt,omitempty" db:"last_sync_at"`
	CreatedAt     time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time           `json:"updatedAt" db:"updated_at"`
}

// Holdings is the amount the chain is expected to report for this wallet.
func (w Wallet) Holdings() decimal.Decimal {
	return w.Balance.Add(w.StakedAmount)
}

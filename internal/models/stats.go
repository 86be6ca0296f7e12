package models

import "github.com/shopspring/decimal"

// UserStats aggregates a user's MassCoin activity.
// swagger:model UserStats
type UserStats struct {
	TotalTransactions  int64           `json:"totalTransactions" db:"total_transactions"`
	TotalVolume        decimal.Decimal `json:"totalVolume" db:"total_volume"`
	AverageTransaction decimal.Decimal `json:"averageTransaction" db:"average_transaction"`
	TipsReceived       decimal.Decimal `json:"tipsReceived" db:"tips_received"`
	TipsSent           decimal.Decimal `json:"tipsSent" db:"tips_sent"`
	RewardsEarned      decimal.Decimal `json:"rewardsEarned" db:"rewards_earned"`
}

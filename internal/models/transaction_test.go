package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewTransactionEvent(t *testing.T) {
	sender := uuid.New()
	txn := &Transaction{
		ID:          uuid.New(),
		SenderID:    &sender,
		RecipientID: uuid.New(),
		Amount:      decimal.RequireFromString("12.5"),
		Type:        TransactionContentTip,
		CreatedAt:   time.Unix(1700000000, 0),
	}

	ev := NewTransactionEvent(txn)
	assert.Equal(t, txn.ID.String(), ev.TransactionID)
	assert.Equal(t, int64(1700000000), ev.Timestamp)
	assert.Equal(t, "12.5", ev.Amount)
	assert.Equal(t, sender.String(), ev.SenderID)
	assert.Equal(t, txn.RecipientID.String(), ev.RecipientID)
	assert.Equal(t, "CONTENT_TIP", ev.Operation)
}

func TestNewTransactionEvent_SystemSender(t *testing.T) {
	txn := &Transaction{ID: uuid.New(), RecipientID: uuid.New(), Amount: decimal.NewFromInt(1), Type: TransactionRewardDistribution}
	assert.Empty(t, NewTransactionEvent(txn).SenderID)
}

func TestTransactionType_Valid(t *testing.T) {
	assert.True(t, TransactionP2PTransfer.Valid())
	assert.True(t, TransactionWithdrawal.Valid())
	assert.False(t, TransactionType("GIFT").Valid())
}

func TestWallet_Holdings(t *testing.T) {
	w := Wallet{Balance: decimal.RequireFromString("10.5"), StakedAmount: decimal.RequireFromString("4.25")}
	assert.True(t, decimal.RequireFromString("14.75").Equal(w.Holdings()))
}

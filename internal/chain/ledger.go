// Package chain talks to the MassCoin token ledger.
package chain

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Ledger is a MassCoin ledger: the token contract plus the staking contract.
// Amounts are base units (18 decimals).
type Ledger interface {
	RegisterUser(ctx context.Context, address string) (bool, error)                            // Registers an address with the ledger
	Transfer(ctx context.Context, from, to string, amount *big.Int) (string, error)             // Moves tokens, returns the tx hash
	BalanceOf(ctx context.Context, address string) (*big.Int, error)                            // Returns the token balance
	Stake(ctx context.Context, address string, amount *big.Int, periodMonths int) (bool, error) // Locks tokens for a period
	Unstake(ctx context.Context, address string, amount *big.Int) (bool, error)                 // Releases staked tokens
}

var (
	// ErrNotDeployed is returned when a contract address is the zero address.
	ErrNotDeployed = errors.New("contract not deployed")
	// ErrInvalidAddress is returned for malformed or unusable addresses.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidAmount is returned for non-positive amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrReverted is returned when the contract rejects a call.
	ErrReverted = errors.New("execution reverted")
	// ErrNonceConsumed is returned when a pinned nonce was used by a
	// transaction the submission never signed. The next attempt takes a
	// fresh nonce.
	ErrNonceConsumed = errors.New("nonce already used")
)

// IsPermanent reports whether retrying err cannot succeed.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, ErrNotDeployed),
		errors.Is(err, ErrInvalidAddress),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrReverted),
		errors.Is(err, context.Canceled):
		return true
	}
	return false
}

// ValidateAddress checks that s is a non-zero hex EVM address.
func ValidateAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) || !strings.HasPrefix(strings.ToLower(s), "0x") {
		return common.Address{}, ErrInvalidAddress
	}
	addr := common.HexToAddress(s)
	if addr == (common.Address{}) {
		return common.Address{}, ErrInvalidAddress
	}
	return addr, nil
}

func validateAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

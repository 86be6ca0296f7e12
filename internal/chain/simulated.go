package chain

import (
	"context"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/maschat/internal/logger"
)

// simulatedBalance is 1000 MASS in base units.
var simulatedBalance = new(big.Int).Mul(big.NewInt(1000), new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil))

// Simulated is an in-process ledger used while the blockchain is disabled.
// Every mutation succeeds; balances are a fixed 1000 MASS.
type Simulated struct{}

// NewSimulated returns a simulated ledger.
func NewSimulated() *Simulated {
	return &Simulated{}
}

func (s *Simulated) RegisterUser(ctx context.Context, address string) (bool, error) {
	if _, err := ValidateAddress(address); err != nil {
		return false, err
	}
	logger.Log.Infow("simulated ledger: register", "address", address)
	return true, nil
}

func (s *Simulated) Transfer(ctx context.Context, from, to string, amount *big.Int) (string, error) {
	if _, err := ValidateAddress(from); err != nil {
		return "", err
	}
	if _, err := ValidateAddress(to); err != nil {
		return "", err
	}
	if err := validateAmount(amount); err != nil {
		return "", err
	}
	hash := "0x" + strings.ReplaceAll(uuid.NewString(), "-", "")
	logger.Log.Infow("simulated ledger: transfer", "from", from, "to", to, "amount", amount.String(), "tx_hash", hash)
	return hash, nil
}

func (s *Simulated) BalanceOf(ctx context.Context, address string) (*big.Int, error) {
	if _, err := ValidateAddress(address); err != nil {
		return nil, err
	}
	return new(big.Int).Set(simulatedBalance), nil
}

func (s *Simulated) Stake(ctx context.Context, address string, amount *big.Int, periodMonths int) (bool, error) {
	if _, err := ValidateAddress(address); err != nil {
		return false, err
	}
	if err := validateAmount(amount); err != nil {
		return false, err
	}
	logger.Log.Infow("simulated ledger: stake", "address", address, "amount", amount.String(), "period_months", periodMonths)
	return true, nil
}

func (s *Simulated) Unstake(ctx context.Context, address string, amount *big.Int) (bool, error) {
	if _, err := ValidateAddress(address); err != nil {
		return false, err
	}
	if err := validateAmount(amount); err != nil {
		return false, err
	}
	logger.Log.Infow("simulated ledger: unstake", "address", address, "amount", amount.String())
	return true, nil
}

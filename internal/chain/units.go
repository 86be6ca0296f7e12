package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Decimals is the number of decimals of the MassCoin token.
const Decimals = 18

// ToBaseUnits converts a token amount to base units, truncating any
// precision beyond Decimals.
func ToBaseUnits(amount decimal.Decimal) *big.Int {
	return amount.Shift(Decimals).BigInt()
}

// FromBaseUnits converts base units to a token amount.
func FromBaseUnits(units *big.Int) decimal.Decimal {
	if units == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(units, -Decimals)
}

// IsZeroAddress reports whether address is empty or the zero address.
func IsZeroAddress(address string) bool {
	return address == "" || common.HexToAddress(address) == (common.Address{})
}

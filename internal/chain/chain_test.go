package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	addrA = "0x1111111111111111111111111111111111111111"
	addrB = "0x2222222222222222222222222222222222222222"
)

func TestUnits_RoundTrip(t *testing.T) {
	tests := []struct {
		amount string
		units  string
	}{
		{"1", "1000000000000000000"},
		{"0.000001", "1000000000000"},
		{"1000", "1000000000000000000000"},
		{"12.345678", "12345678000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			units := ToBaseUnits(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.units, units.String())
			assert.True(t, decimal.RequireFromString(tt.amount).Equal(FromBaseUnits(units)))
		})
	}
}

func TestToBaseUnits_Truncates(t *testing.T) {
	units := ToBaseUnits(decimal.RequireFromString("0.0000000000000000019"))
	assert.Equal(t, "1", units.String())
	assert.True(t, FromBaseUnits(nil).IsZero())
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{addrA, false},
		{strings.ToUpper(addrA[2:]), true},
		{"0x0000000000000000000000000000000000000000", true},
		{"0x123", true},
		{"not-an-address", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ValidateAddress(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsPermanent(t *testing.T) {
	assert.False(t, IsPermanent(nil))
	assert.True(t, IsPermanent(ErrNotDeployed))
	assert.True(t, IsPermanent(fmt.Errorf("wrap: %w", ErrInvalidAddress)))
	assert.True(t, IsPermanent(ErrInvalidAmount))
	assert.True(t, IsPermanent(ErrReverted))
	assert.True(t, IsPermanent(context.Canceled))
	assert.False(t, IsPermanent(errors.New("connection refused")))
	assert.False(t, IsPermanent(context.DeadlineExceeded))
}

func TestSimulated(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulated()

	ok, err := sim.RegisterUser(ctx, addrA)
	require.NoError(t, err)
	assert.True(t, ok)

	hash, err := sim.Transfer(ctx, addrA, addrB, big.NewInt(5))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "0x"))
	assert.Len(t, hash, 34)

	other, err := sim.Transfer(ctx, addrA, addrB, big.NewInt(5))
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)

	balance, err := sim.BalanceOf(ctx, addrA)
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000000", balance.String())

	// callers cannot corrupt the canned balance
	balance.SetInt64(0)
	again, _ := sim.BalanceOf(ctx, addrA)
	assert.Equal(t, "1000000000000000000000", again.String())

	ok, err = sim.Stake(ctx, addrA, big.NewInt(1), 6)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = sim.Unstake(ctx, addrA, big.NewInt(1))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSimulated_Rejects(t *testing.T) {
	ctx := context.Background()
	sim := NewSimulated()

	_, err := sim.Transfer(ctx, addrA, "bad", big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = sim.Transfer(ctx, addrA, addrB, big.NewInt(0))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = sim.Stake(ctx, addrA, big.NewInt(-1), 1)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = sim.Unstake(ctx, "", big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
